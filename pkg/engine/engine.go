package engine

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/swap/pkg/filesystem"
	"github.com/arthur-debert/swap/pkg/logging"
	"github.com/arthur-debert/swap/pkg/types"
	"github.com/rs/zerolog"

	swaperrors "github.com/arthur-debert/swap/pkg/errors"
)

// Options configures an Engine.
type Options struct {
	// FileSystem allows injecting a filesystem for testing. Defaults to
	// the OS filesystem.
	FileSystem types.FS
	// TempAttempts bounds the temporary-name collision retry loop.
	TempAttempts int
}

// Engine executes validated swap plans.
type Engine struct {
	fs           types.FS
	tempAttempts int
	logger       zerolog.Logger
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	attempts := opts.TempAttempts
	if attempts <= 0 {
		attempts = DefaultTempAttempts
	}
	return &Engine{
		fs:           fsys,
		tempAttempts: attempts,
		logger:       logging.GetLogger("engine"),
	}
}

// Execute performs the three-rename exchange described by plan.
//
// On failure the filesystem is restored to its original state whenever a
// corrective rename can achieve that. The one unrecoverable outcome is a
// PARTIAL_FAILURE: the first item is still parked under its temporary
// name, which the returned error names so the user can recover manually.
func (e *Engine) Execute(plan *types.SwapPlan) (*types.SwapResult, error) {
	parentA := filepath.Dir(plan.A.Current)
	parentB := filepath.Dir(plan.B.Current)

	// A name swap renames each item within its own directory, so only a
	// location swap can cross a device boundary.
	if plan.Mode == types.ModeLocation {
		if same, ok := sameDevice(e.fs, parentA, parentB); ok && !same {
			return nil, swaperrors.Newf(swaperrors.ErrCrossDevice,
				"Cannot swap across filesystems: '%s' and '%s' are on different devices.",
				plan.A.Current, plan.B.Current)
		}
	}

	tmp, err := tempPath(e.fs, parentA, filepath.Base(plan.A.Current), e.tempAttempts)
	if err != nil {
		return nil, err
	}

	result := &types.SwapResult{Plan: plan, TempPath: tmp}

	// Park A under the temporary name, vacating its original entry. On
	// failure nothing has changed yet.
	e.logger.Info().
		Str("from", plan.A.Current).
		Str("to", tmp).
		Msg("Parking first item under temporary name")
	if err := e.fs.Rename(plan.A.Current, tmp); err != nil {
		return nil, mapRenameError(err, plan.A.Current)
	}

	// Move B to its target, which the park step may just have vacated.
	e.logger.Info().
		Str("from", plan.B.Current).
		Str("to", plan.B.Target).
		Msg("Moving second item to target")
	if err := e.fs.Rename(plan.B.Current, plan.B.Target); err != nil {
		renameErr := mapRenameError(err, plan.B.Current)
		if rbErr := e.fs.Rename(tmp, plan.A.Current); rbErr != nil {
			e.logger.Error().
				Err(rbErr).
				Str("temp", tmp).
				Msg("Rollback rename failed, data parked under temporary name")
			return result, partialFailure(plan.A.Current, tmp, renameErr)
		}
		e.logger.Warn().
			Str("path", plan.A.Current).
			Msg("Swap aborted, original layout restored")
		return nil, renameErr
	}

	// Give the parked item its final name. B is already in place, so a
	// failure here cannot be rolled back; retry once, then report where
	// the parked data lives.
	e.logger.Info().
		Str("from", tmp).
		Str("to", plan.A.Target).
		Msg("Placing first item at target")
	if err := e.fs.Rename(tmp, plan.A.Target); err != nil {
		e.logger.Warn().Err(err).Msg("Final rename failed, retrying")
		if retryErr := e.fs.Rename(tmp, plan.A.Target); retryErr != nil {
			e.logger.Error().
				Err(retryErr).
				Str("temp", tmp).
				Msg("Final rename failed twice, data parked under temporary name")
			return result, partialFailure(plan.A.Current, tmp, mapRenameError(retryErr, tmp))
		}
	}

	e.logger.Info().
		Str("a", plan.A.Target).
		Str("b", plan.B.Target).
		Msg("Swap completed")
	return result, nil
}

func partialFailure(original, tmp string, cause error) error {
	return swaperrors.Wrapf(cause, swaperrors.ErrPartialFailure,
		"Swap partially failed: the item originally at '%s' is preserved at '%s'. Manual recovery is required.",
		original, tmp).WithDetail("temp_path", tmp)
}

// mapRenameError turns a raw rename failure into a typed error naming the
// path being moved; the platform errno never reaches the user unexplained.
func mapRenameError(err error, from string) error {
	switch {
	case os.IsPermission(err):
		return swaperrors.Wrapf(err, swaperrors.ErrPermission,
			"Permission denied while moving '%s'.", from)
	case errors.Is(err, syscall.EXDEV):
		return swaperrors.Wrapf(err, swaperrors.ErrCrossDevice,
			"Cannot move '%s' across filesystems.", from)
	case os.IsNotExist(err):
		return swaperrors.Wrapf(err, swaperrors.ErrPathNotFound,
			"Path disappeared before it could be moved: '%s'", from)
	default:
		return swaperrors.Wrapf(err, swaperrors.ErrRenameFailed,
			"Failed to move '%s'.", from)
	}
}
