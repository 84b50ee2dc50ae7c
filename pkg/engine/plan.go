package engine

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/swap/pkg/errors"
	"github.com/arthur-debert/swap/pkg/types"
)

// BuildPlan derives the target path for each side under the given mode.
// It rejects degenerate plans (nothing would move) and targets that would
// silently overwrite an unrelated existing entry, so that a validated plan
// can be executed without further decisions.
func BuildPlan(fsys types.FS, a, b *types.ResolvedPath, mode types.SwapMode) (*types.SwapPlan, error) {
	var targetA, targetB string
	switch mode {
	case types.ModeLocation:
		targetA = filepath.Join(b.Parent(), a.Base())
		targetB = filepath.Join(a.Parent(), b.Base())
	case types.ModeName:
		targetA = filepath.Join(a.Parent(), b.Base())
		targetB = filepath.Join(b.Parent(), a.Base())
	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown swap mode: %s", mode)
	}

	// Same parent in location mode (or same base name in name mode) means
	// both targets equal both currents and nothing would move.
	if targetA == a.Path && targetB == b.Path {
		return nil, errors.New(errors.ErrInvalidPath,
			"Both items are already in place. Nothing to swap.")
	}

	// rename overwrites an existing destination without asking. A target
	// that is neither of the two operands must therefore not exist.
	for _, target := range []string{targetA, targetB} {
		if target == a.Path || target == b.Path {
			continue
		}
		if _, err := fsys.Lstat(target); err == nil {
			return nil, errors.Newf(errors.ErrTargetExists,
				"Target already exists: '%s'", target)
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrPermission,
				"Permission denied: '%s'", target)
		}
	}

	return &types.SwapPlan{
		Mode: mode,
		A:    types.PlanSide{Current: a.Path, Target: targetA},
		B:    types.PlanSide{Current: b.Path, Target: targetB},
	}, nil
}
