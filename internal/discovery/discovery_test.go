package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("<svg/>"), 0o644))
	}
}

func relative(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestDiscoverDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"icons/a.svg",
		"icons/nested/b.svg",
		"icons/readme.md",
		"c.svg",
	)

	files, err := Discover([]string{root}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"c.svg",
		"icons/a.svg",
		"icons/nested/b.svg",
	}, relative(t, root, files))
}

func TestDiscoverExplicitFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "logo.notsvg")

	// Explicitly named files are taken as-is, extension notwithstanding.
	target := filepath.Join(root, "logo.notsvg")
	files, err := Discover([]string{target}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{target}, files)
}

func TestDiscoverGlob(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"icons/a.svg",
		"icons/nested/b.svg",
		"other/c.svg",
	)

	files, err := Discover([]string{filepath.Join(root, "icons", "**", "*.svg")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"icons/a.svg",
		"icons/nested/b.svg",
	}, relative(t, root, files))
}

func TestDiscoverIgnore(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"icons/a.svg",
		"icons/generated/b.svg",
	)

	files, err := Discover([]string{root}, []string{"**/generated/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"icons/a.svg"}, relative(t, root, files))
}

func TestDiscoverDeduplicates(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.svg")

	target := filepath.Join(root, "a.svg")
	files, err := Discover([]string{target, target, root}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{target}, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover([]string{filepath.Join(t.TempDir(), "missing.svg")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file or directory")
}

func TestDiscoverGlobNoMatches(t *testing.T) {
	// A pattern that matches nothing is not an error; the caller decides
	// what an empty result means.
	files, err := Discover([]string{filepath.Join(t.TempDir(), "*.svg")}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
