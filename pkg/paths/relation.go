package paths

import (
	"os"
	"strings"

	"github.com/arthur-debert/swap/pkg/errors"
	"github.com/arthur-debert/swap/pkg/types"
)

// CheckRelation rejects pairs of resolved paths that cannot be exchanged:
// two spellings of the same entry, or a directory paired with one of its
// own descendants. It must run before any mutation; both checks operate on
// canonical paths only.
func CheckRelation(a, b *types.ResolvedPath) error {
	if a.Path == b.Path {
		return errors.New(errors.ErrIdenticalPaths,
			"The two paths are identical. Nothing to swap.")
	}

	if a.IsDir() && IsAncestor(a.Path, b.Path) {
		return containmentError()
	}
	if b.IsDir() && IsAncestor(b.Path, a.Path) {
		return containmentError()
	}

	return nil
}

// IsAncestor reports whether ancestor strictly contains descendant. The
// separator is appended before the prefix test so that "/a/b" is not
// treated as an ancestor of "/a/bc". Both arguments must be canonical
// absolute paths.
func IsAncestor(ancestor, descendant string) bool {
	if ancestor == descendant {
		return false
	}
	sep := string(os.PathSeparator)
	prefix := ancestor
	if !strings.HasSuffix(prefix, sep) {
		prefix += sep
	}
	return strings.HasPrefix(descendant, prefix)
}

func containmentError() error {
	return errors.New(errors.ErrUnsafeContainment,
		"Cannot swap a directory with its own subdirectory. This is a safety prevention.")
}
