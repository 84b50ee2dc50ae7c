// Package types defines the core types shared across swap packages.
package types

import (
	"io/fs"
	"path/filepath"
)

// FS abstracts the filesystem operations swap needs. The production
// implementation lives in pkg/filesystem; tests inject fakes to exercise
// failure paths that are hard to produce on a real filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	Rename(oldpath, newpath string) error
}

// PathKind classifies a resolved filesystem entry.
type PathKind string

const (
	KindFile      PathKind = "file"
	KindDirectory PathKind = "directory"
	KindOther     PathKind = "other"
)

// ResolvedPath is an absolute, canonical path confirmed to exist at
// resolution time. Canonicalization resolves ".", ".." and symlink
// components, so textual equality of two ResolvedPath.Path values implies
// identity of the underlying entries.
type ResolvedPath struct {
	// Raw is the input string as the user typed it, kept for error messages.
	Raw string
	// Path is the canonical absolute path.
	Path string
	// Kind classifies the entry the canonical path points at.
	Kind PathKind
	// Info is the stat result taken at resolution time.
	Info fs.FileInfo
}

// Base returns the final path component.
func (r *ResolvedPath) Base() string {
	return filepath.Base(r.Path)
}

// Parent returns the directory containing the entry.
func (r *ResolvedPath) Parent() string {
	return filepath.Dir(r.Path)
}

// IsDir reports whether the resolved entry is a directory.
func (r *ResolvedPath) IsDir() bool {
	return r.Kind == KindDirectory
}

// SwapMode selects how the two target paths are derived.
type SwapMode string

const (
	// ModeLocation moves each item to the other's parent directory,
	// keeping its own base name.
	ModeLocation SwapMode = "location"
	// ModeName renames each item, within its own directory, to the
	// other's base name.
	ModeName SwapMode = "name"
)

// PlanSide holds the current and target path for one side of an exchange.
type PlanSide struct {
	Current string
	Target  string
}

// SwapPlan is the fully computed exchange: both sides' current and target
// paths under a given mode. It is built, and validated, before any
// filesystem mutation happens.
type SwapPlan struct {
	Mode SwapMode
	A    PlanSide
	B    PlanSide
}

// Renames lists the three renames the engine will perform, in order, with
// a placeholder for the temporary name. Used for dry-run output; the first
// rename parks item A under the temporary name.
func (p *SwapPlan) Renames() []PlanSide {
	tmp := p.A.Current + ".swap.<random>"
	return []PlanSide{
		{Current: p.A.Current, Target: tmp},
		{Current: p.B.Current, Target: p.B.Target},
		{Current: tmp, Target: p.A.Target},
	}
}

// Steps renders the renames as plain display strings.
func (p *SwapPlan) Steps() []string {
	renames := p.Renames()
	return []string{
		renames[0].Current + " -> " + renames[0].Target + " (temporary)",
		renames[1].Current + " -> " + renames[1].Target,
		renames[2].Current + " -> " + renames[2].Target,
	}
}

// SwapResult reports a completed (or dry-run) exchange.
type SwapResult struct {
	Plan   *SwapPlan
	DryRun bool
	// TempPath is the temporary name used during the exchange. It only
	// matters to callers when a partial failure left data parked there.
	TempPath string
}
