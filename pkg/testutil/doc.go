// Package testutil provides test helpers for swap.
//
// It contains filesystem fixture helpers (temp files, directories,
// symlinks) and a fault-injecting types.FS wrapper used to exercise the
// engine's rollback paths, which are nearly impossible to trigger
// reliably on a real filesystem.
package testutil
