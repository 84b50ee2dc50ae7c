// Package swap orchestrates one swap invocation: resolve both inputs,
// validate the pair, build the plan, and hand it to the engine.
package swap

import (
	"github.com/arthur-debert/swap/pkg/config"
	"github.com/arthur-debert/swap/pkg/engine"
	"github.com/arthur-debert/swap/pkg/errors"
	"github.com/arthur-debert/swap/pkg/filesystem"
	"github.com/arthur-debert/swap/pkg/logging"
	"github.com/arthur-debert/swap/pkg/paths"
	"github.com/arthur-debert/swap/pkg/types"
)

// Options holds options for the swap command
type Options struct {
	// Path1 and Path2 are the raw user inputs.
	Path1 string
	Path2 string
	// NameSwap selects name-swap mode; the default is location-swap.
	NameSwap bool
	// DryRun computes and returns the plan without mutating anything.
	DryRun bool
	// FileSystem allows injecting a filesystem for testing
	FileSystem types.FS
	// Config allows injecting configuration; nil loads the real one.
	Config *config.Config
}

// Run executes one swap invocation. All validation failures are returned
// before any filesystem mutation; execution failures carry the engine's
// rollback guarantees.
func Run(opts Options) (*types.SwapResult, error) {
	logger := logging.GetLogger("commands.swap")
	logger.Info().
		Str("path1", opts.Path1).
		Str("path2", opts.Path2).
		Bool("nameSwap", opts.NameSwap).
		Bool("dryRun", opts.DryRun).
		Msg("Starting swap")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Fail fast on either input before touching the other's state.
	a, err := paths.Resolve(opts.Path1)
	if err != nil {
		return nil, err
	}
	b, err := paths.Resolve(opts.Path2)
	if err != nil {
		return nil, err
	}

	if err := paths.CheckRelation(a, b); err != nil {
		return nil, err
	}

	for _, resolved := range []*types.ResolvedPath{a, b} {
		if cfg.IsProtected(resolved) {
			return nil, errors.Newf(errors.ErrProtectedPath,
				"Refusing to move protected path: '%s'", resolved.Path)
		}
	}

	mode := types.ModeLocation
	if opts.NameSwap {
		mode = types.ModeName
	}

	plan, err := engine.BuildPlan(fsys, a, b, mode)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		logger.Info().Msg("Dry run, no changes made")
		return &types.SwapResult{Plan: plan, DryRun: true}, nil
	}

	eng := engine.New(engine.Options{
		FileSystem:   fsys,
		TempAttempts: cfg.TempAttempts,
	})
	result, err := eng.Execute(plan)
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("a", plan.A.Target).
		Str("b", plan.B.Target).
		Msg("Swap finished")
	return result, nil
}
