package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(content), 0644))
}

func TestFindProjectRootInStartDir(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[tool.poetry]\n")

	adapter := NewManifestFileAdapter()
	found, err := adapter.FindProjectRoot(root, DefaultSearchLevels)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindProjectRootWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[tool.poetry]\n")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	adapter := NewManifestFileAdapter()
	found, err := adapter.FindProjectRoot(nested, DefaultSearchLevels)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindProjectRootBoundExhausted(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[tool.poetry]\n")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	adapter := NewManifestFileAdapter()
	_, err := adapter.FindProjectRoot(nested, 2)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestFindProjectRootEmptyStart(t *testing.T) {
	adapter := NewManifestFileAdapter()
	_, err := adapter.FindProjectRoot("", DefaultSearchLevels)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadText(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[tool.poetry.dependencies]\nfastapi = \"*\"\n")
	nested := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0755))

	adapter := NewManifestFileAdapter()
	text, err := adapter.LoadText(nested)
	require.NoError(t, err)
	assert.Contains(t, text, "fastapi")
}

func TestLoadTextNotAProject(t *testing.T) {
	adapter := NewManifestFileAdapter()
	_, err := adapter.LoadText(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
