package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/swap/pkg/types"
)

// RenameRule injects a failure for renames matching it. Empty From or To
// matches any value. Times is how many matching renames fail before the
// rule is exhausted; negative means fail forever.
type RenameRule struct {
	From  string
	To    string
	Err   error
	Times int
}

// RenameCall records one Rename invocation seen by a FaultyFS.
type RenameCall struct {
	From string
	To   string
}

// FaultyFS wraps a types.FS and fails selected renames. Everything else
// passes straight through to the base filesystem.
type FaultyFS struct {
	Base  types.FS
	mu    sync.Mutex
	rules []*RenameRule
	calls []RenameCall
}

// NewFaultyFS wraps base with the given rename failure rules.
func NewFaultyFS(base types.FS, rules ...*RenameRule) *FaultyFS {
	return &FaultyFS{Base: base, rules: rules}
}

// Calls returns the renames attempted so far, in order.
func (f *FaultyFS) Calls() []RenameCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RenameCall, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	f.mu.Lock()
	f.calls = append(f.calls, RenameCall{From: oldpath, To: newpath})
	for _, r := range f.rules {
		if r.Times == 0 {
			continue
		}
		if (r.From == "" || r.From == oldpath) && (r.To == "" || r.To == newpath) {
			if r.Times > 0 {
				r.Times--
			}
			f.mu.Unlock()
			return r.Err
		}
	}
	f.mu.Unlock()
	return f.Base.Rename(oldpath, newpath)
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	return f.Base.Stat(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	return f.Base.Lstat(name)
}
