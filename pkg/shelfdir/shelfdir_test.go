package shelfdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolvesAbsolute(t *testing.T) {
	d := New("some/relative/shelf")

	assert.True(t, filepath.IsAbs(d.Root()))
}

func TestPaths(t *testing.T) {
	root := t.TempDir()
	d := New(root)

	assert.Equal(t, filepath.Join(root, "icons"), d.IconsDir())
	assert.Equal(t, filepath.Join(root, "rigging"), d.CategoryDir("rigging"))
	assert.Equal(t, filepath.Join(root, ".shelfstate", "manifest.txt"), d.ManifestPath())
}

func TestCategoryNamesSortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"rigging", "animation", "icons", ".shelfstate"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o750))
	}
	// Plain files at the root are not categories.
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0o600))

	d := New(root)

	assert.Equal(t, []string{"animation", "rigging"}, d.CategoryNames())
}

func TestCategoryNamesMissingRoot(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), "nope"))

	assert.Nil(t, d.CategoryNames())
	assert.False(t, d.Exists())
}

func TestEnsureIconsIdempotent(t *testing.T) {
	d := New(t.TempDir())

	require.NoError(t, EnsureIcons(d))
	require.NoError(t, EnsureIcons(d))

	info, err := os.Stat(d.IconsDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureState(t *testing.T) {
	d := New(t.TempDir())

	require.NoError(t, EnsureState(d))

	info, err := os.Stat(d.StateDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
