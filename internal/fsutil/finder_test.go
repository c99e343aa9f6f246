package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles materializes a set of relative paths under a temp dir and
// returns its root.
func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		full := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
	return root
}

func TestFindFilesByExtensions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := writeFiles(t, "a.hcl", "nested/b.yaml", "nested/deep/c.yml", "skip.txt")

	// --- Act ---
	files, err := FindFilesByExtensions(root, ".hcl", ".yaml", ".yml")

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(root, "a.hcl"), files[0], "walk order should be lexical")
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := writeFiles(t, "a.hcl", "b.yaml")
	single := filepath.Join(root, "a.hcl")

	// --- Act ---
	files, err := CollectFiles([]string{single, root, filepath.Join(root, "missing")}, ".hcl", ".yaml")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{single, filepath.Join(root, "b.yaml")}, files,
		"the explicit file should come first and not repeat from the directory walk")
}

func TestCollectFiles_FiltersDirectFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Several loaders may resolve the same explicit path, each with its own
	// extensions; a file belonging to another format must not leak through.
	root := writeFiles(t, "decl.hcl")
	direct := filepath.Join(root, "decl.hcl")

	// --- Act ---
	files, err := CollectFiles([]string{direct}, ".yaml", ".yml")

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, files, "a direct path with a foreign extension should be skipped")
}
