//go:build !windows

package engine

import (
	"syscall"

	"github.com/arthur-debert/swap/pkg/types"
)

// sameDevice reports whether the two directories live on the same device.
// ok is false when the answer cannot be determined, in which case the
// caller skips the pre-check and lets the rename itself surface EXDEV.
func sameDevice(fsys types.FS, dirA, dirB string) (same, ok bool) {
	infoA, err := fsys.Stat(dirA)
	if err != nil {
		return false, false
	}
	infoB, err := fsys.Stat(dirB)
	if err != nil {
		return false, false
	}

	statA, okA := infoA.Sys().(*syscall.Stat_t)
	statB, okB := infoB.Sys().(*syscall.Stat_t)
	if !okA || !okB {
		return false, false
	}

	return statA.Dev == statB.Dev, true
}
