package paths

import (
	"strings"

	"github.com/arthur-debert/swap/pkg/errors"
)

// ValidateInput performs validation on a raw path string before any
// filesystem access. It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidateInput(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidPath, "Path cannot be empty.")
	}

	if strings.Contains(path, "\x00") {
		return errors.Newf(errors.ErrInvalidPath, "Path contains null bytes: '%s'", path)
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidPath, "Path exceeds maximum length.")
	}

	return nil
}
