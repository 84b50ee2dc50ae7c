package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/swap/pkg/errors"
	"github.com/arthur-debert/swap/pkg/testutil"
	"github.com/arthur-debert/swap/pkg/types"
)

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "report.txt", "content")

	resolved, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, path, resolved.Raw)
	assert.True(t, filepath.IsAbs(resolved.Path))
	assert.Equal(t, types.KindFile, resolved.Kind)
	assert.Equal(t, "report.txt", resolved.Base())
}

func TestResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := testutil.CreateDir(t, dir, "project_a")

	resolved, err := Resolve(sub)
	require.NoError(t, err)

	assert.Equal(t, types.KindDirectory, resolved.Kind)
	assert.True(t, resolved.IsDir())
}

func TestResolveRelativePath(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "x", "data")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	resolved, err := Resolve("./x")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(resolved.Path))
	assert.Equal(t, "x", resolved.Base())
}

func TestResolveFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := testutil.CreateFile(t, dir, "real.txt", "data")
	link := filepath.Join(dir, "link.txt")
	testutil.CreateSymlink(t, target, link)

	resolved, err := Resolve(link)
	require.NoError(t, err)

	// Canonicalization resolves the link; the tool swaps the referent.
	canonical, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, canonical, resolved.Path)
	assert.Equal(t, types.KindFile, resolved.Kind)
}

func TestResolveMissingPath(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(filepath.Join(dir, "file_that_does_not_exist.txt"))
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrPathNotFound))
	// The message names the original input, not a canonical form.
	assert.Contains(t, err.Error(), "file_that_does_not_exist.txt")
}

func TestResolveMissingIntermediateComponent(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(filepath.Join(dir, "no_such_dir", "file.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathNotFound))
}

func TestResolveEmptyPath(t *testing.T) {
	_, err := Resolve("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
}

func TestResolveRoot(t *testing.T) {
	_, err := Resolve("/")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
}
