package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover_WalksDirectories(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "con_intro.adoc", "= Intro\n")
	b := writeFile(t, dir, "modules/proc_install.adoc", "= Install\n")
	writeFile(t, dir, "notes.txt", "not asciidoc\n")
	writeFile(t, dir, ".hidden/con_secret.adoc", "= Secret\n")
	writeFile(t, dir, ".draft.adoc", "= Draft\n")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{a, b}, files)
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "con_intro.adoc", "= Intro\n")
	writeFile(t, dir, "legacy/con_old.adoc", "= Old\n")
	writeFile(t, dir, "modules/ref_skip.adoc", "= Skip\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"legacy/**", "**/ref_skip.adoc"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{keep}, files)
}

func TestDiscover_ExplicitFileBypassesExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	odd := writeFile(t, dir, "README.txt", "= Readme\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"README.txt"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{odd}, files)
}

func TestDiscover_DeduplicatesOverlappingPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "con_intro.adoc", "= Intro\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{".", "con_intro.adoc"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{a}, files)
}

func TestDiscover_MissingPathFails(t *testing.T) {
	dir := t.TempDir()

	_, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"no-such-file.adoc"},
	})

	assert.Error(t, err)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"modules/con_intro.adoc", "*.adoc", true},
		{"modules/con_intro.adoc", "modules/*.adoc", true},
		{"modules/con_intro.adoc", "docs/*.adoc", false},
		{"vendor/docs/con_x.adoc", "vendor/**", true},
		{"docs/vendor/con_x.adoc", "vendor/**", false},
		{"docs/legacy/con_x.adoc", "**/legacy", true},
		{"a/b/con_x.adoc", "**/con_x.adoc", true},
		{"a/b/con_x.adoc", "**", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" vs "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern))
		})
	}
}
