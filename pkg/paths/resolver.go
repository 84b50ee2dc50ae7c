package paths

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/swap/pkg/errors"
	"github.com/arthur-debert/swap/pkg/logging"
	"github.com/arthur-debert/swap/pkg/types"
)

// Resolve turns a raw path string into a canonical, existing ResolvedPath.
// Canonicalization follows symlinks, so the tool always operates on the
// resolved target of a link, never the link entry itself.
//
// Error messages name the original input, not the canonical form, since
// that is what the user typed.
func Resolve(raw string) (*types.ResolvedPath, error) {
	logger := logging.GetLogger("paths.resolve")

	if err := ValidateInput(raw); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPath, "Invalid path: '%s'", raw)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, errors.Newf(errors.ErrPathNotFound, "Path not found: '%s'", raw)
		case os.IsPermission(err):
			return nil, errors.Wrapf(err, errors.ErrPermission, "Permission denied: '%s'", raw)
		default:
			return nil, errors.Wrapf(err, errors.ErrInvalidPath, "Invalid path: '%s'", raw)
		}
	}

	// The root has no parent to rename within; swapping it is never valid.
	if canonical == filepath.Dir(canonical) {
		return nil, errors.Newf(errors.ErrInvalidPath, "Cannot swap the filesystem root: '%s'", raw)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errors.Wrapf(err, errors.ErrPermission, "Permission denied: '%s'", raw)
		}
		return nil, errors.Wrapf(err, errors.ErrPathNotFound, "Path not found: '%s'", raw)
	}

	resolved := &types.ResolvedPath{
		Raw:  raw,
		Path: canonical,
		Kind: classify(info),
		Info: info,
	}

	logger.Debug().
		Str("raw", raw).
		Str("canonical", canonical).
		Str("kind", string(resolved.Kind)).
		Msg("Resolved path")

	return resolved, nil
}

func classify(info fs.FileInfo) types.PathKind {
	switch {
	case info.IsDir():
		return types.KindDirectory
	case info.Mode().IsRegular():
		return types.KindFile
	default:
		return types.KindOther
	}
}
