//go:build windows

package engine

import "github.com/arthur-debert/swap/pkg/types"

// sameDevice has no cheap answer on Windows; the pre-check is skipped and
// a cross-volume rename surfaces through the rename error instead.
func sameDevice(fsys types.FS, dirA, dirB string) (same, ok bool) {
	return false, false
}
