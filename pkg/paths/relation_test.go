package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/swap/pkg/errors"
	"github.com/arthur-debert/swap/pkg/testutil"
	"github.com/arthur-debert/swap/pkg/types"
)

func TestIsAncestor(t *testing.T) {
	tests := []struct {
		name       string
		ancestor   string
		descendant string
		want       bool
	}{
		{"direct child", "/a/b", "/a/b/c", true},
		{"deep descendant", "/a", "/a/b/c/d", true},
		{"equal paths", "/a/b", "/a/b", false},
		{"sibling with shared prefix", "/a/b", "/a/bc", false},
		{"reverse relation", "/a/b/c", "/a/b", false},
		{"unrelated", "/a/b", "/x/y", false},
		{"root over anything", "/", "/a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAncestor(tt.ancestor, tt.descendant))
		})
	}
}

func TestCheckRelationIdenticalPaths(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "x", "data")

	a, err := Resolve(path)
	require.NoError(t, err)
	b, err := Resolve(path)
	require.NoError(t, err)

	err = CheckRelation(a, b)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIdenticalPaths))
}

func TestCheckRelationIdenticalViaAlias(t *testing.T) {
	// Two different spellings of the same entry must be caught: identity
	// is decided on canonical paths, never on the raw inputs.
	dir := t.TempDir()
	target := testutil.CreateFile(t, dir, "x", "data")
	link := filepath.Join(dir, "alias")
	testutil.CreateSymlink(t, target, link)

	a, err := Resolve(target)
	require.NoError(t, err)
	b, err := Resolve(link)
	require.NoError(t, err)

	err = CheckRelation(a, b)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIdenticalPaths))
}

func TestCheckRelationContainment(t *testing.T) {
	dir := t.TempDir()
	parent := testutil.CreateDir(t, dir, "my_folder")
	child := testutil.CreateDir(t, parent, "sub_folder")

	a, err := Resolve(parent)
	require.NoError(t, err)
	b, err := Resolve(child)
	require.NoError(t, err)

	// Both orders are rejected.
	err = CheckRelation(a, b)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsafeContainment))

	err = CheckRelation(b, a)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsafeContainment))
}

func TestCheckRelationSharedPrefixNotContainment(t *testing.T) {
	// "/a/b" must not be treated as an ancestor of "/a/bc".
	dir := t.TempDir()
	b := testutil.CreateDir(t, dir, "b")
	bc := testutil.CreateDir(t, dir, "bc")

	ra, err := Resolve(b)
	require.NoError(t, err)
	rb, err := Resolve(bc)
	require.NoError(t, err)

	assert.NoError(t, CheckRelation(ra, rb))
}

func TestCheckRelationUnrelatedPaths(t *testing.T) {
	dir := t.TempDir()
	fileA := testutil.CreateFile(t, dir, "project_a/report.txt", "report")
	fileB := testutil.CreateFile(t, dir, "project_b/archive.zip", "archive")

	a, err := Resolve(fileA)
	require.NoError(t, err)
	b, err := Resolve(fileB)
	require.NoError(t, err)

	assert.NoError(t, CheckRelation(a, b))
}

func TestCheckRelationFileCannotContain(t *testing.T) {
	// Containment only applies when the ancestor side is a directory. A
	// file cannot contain anything, so a nested-looking pair where the
	// shorter path is a file passes. CheckRelation only reads Path and
	// Kind, so the pair can be built directly.
	a := &types.ResolvedPath{Path: "/a/b", Kind: types.KindFile}
	b := &types.ResolvedPath{Path: "/a/b/c", Kind: types.KindFile}

	assert.NoError(t, CheckRelation(a, b))
	assert.NoError(t, CheckRelation(b, a))
}
