package engine

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/arthur-debert/swap/pkg/errors"
	"github.com/arthur-debert/swap/pkg/types"
)

// DefaultTempAttempts bounds the collision retry loop when generating a
// temporary name.
const DefaultTempAttempts = 16

// tempPath generates a path in dir, shaped "<base>.swap.<random>", that
// does not collide with an existing entry at generation time.
func tempPath(fsys types.FS, dir, base string, attempts int) (string, error) {
	if attempts <= 0 {
		attempts = DefaultTempAttempts
	}

	for i := 0; i < attempts; i++ {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, errors.ErrInternal,
				"Could not generate a temporary name.")
		}

		candidate := filepath.Join(dir, base+".swap."+hex.EncodeToString(buf))
		if _, err := fsys.Lstat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrInternal,
		"Could not find a free temporary name in '%s'.", dir)
}
