package project

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/reactkit/create-react-app/internal/errs"
	"github.com/reactkit/create-react-app/internal/output"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, fs afero.Fs, root string, files ...string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(root, f), []byte("x"), 0644))
	}
}

func TestPartition(t *testing.T) {
	conflicts, logs := Partition([]string{".git", "README.md", "app.iml", "npm-debug.log", "src", "package.json"})
	assert.Equal(t, []string{"src", "package.json"}, conflicts)
	assert.Equal(t, []string{"npm-debug.log"}, logs)
}

func TestGuard_AllowListedOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/work/my-app"
	seed(t, fs, root, ".gitignore", "README.md", "LICENSE", "project.iml", ".DS_Store")
	require.NoError(t, fs.MkdirAll(filepath.Join(root, ".git"), 0755))

	g := NewGuard(fs, output.Discard(), nil)
	require.NoError(t, g.Check(root, "my-app"))

	entries, err := List(fs, root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".git", ".gitignore", "README.md", "LICENSE", "project.iml", ".DS_Store"}, entries)
}

func TestGuard_ReportsExactlyTheConflict(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/work/my-app"
	seed(t, fs, root, "README.md", ".gitignore", "index.js")

	var buf bytes.Buffer
	g := NewGuard(fs, output.New(&buf), nil)
	err := g.Check(root, "my-app")

	require.Error(t, err)
	assert.Equal(t, errs.DirectoryNotSafe, errs.KindOf(err))
	assert.Equal(t, []string{"index.js"}, err.(*errs.Error).Details)
	assert.Contains(t, buf.String(), "contains files that could conflict")
	assert.Contains(t, buf.String(), "  index.js\n")
	assert.NotContains(t, buf.String(), "README.md")
}

func TestGuard_DeletesStaleLogs(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/work/my-app"
	seed(t, fs, root, "yarn-error.log")

	g := NewGuard(fs, output.Discard(), nil)
	require.NoError(t, g.Check(root, "my-app"))

	exists, err := afero.Exists(fs, filepath.Join(root, "yarn-error.log"))
	require.NoError(t, err)
	assert.False(t, exists, "stale log should be removed")
}

func TestGuard_KeepsStaleLogsWhenConflicting(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/work/my-app"
	seed(t, fs, root, "npm-debug.log", "main.go")

	g := NewGuard(fs, output.Discard(), nil)
	require.Error(t, g.Check(root, "my-app"))

	exists, _ := afero.Exists(fs, filepath.Join(root, "npm-debug.log"))
	assert.True(t, exists, "nothing is deleted when the directory is not safe")
}

func TestGuard_Ensure(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := NewGuard(fs, output.Discard(), nil)

	require.NoError(t, g.Ensure("/work/new-app"))
	ok, err := afero.DirExists(fs, "/work/new-app")
	require.NoError(t, err)
	assert.True(t, ok)
}
