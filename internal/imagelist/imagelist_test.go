package imagelist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func readList(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var list []string
	require.NoError(t, json.Unmarshal(data, &list))
	return list
}

func TestGenerate_FiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	imagesDir := filepath.Join(root, "images")
	require.NoError(t, os.Mkdir(imagesDir, 0o755))
	writeFiles(t, imagesDir, "b.png", "a.gif", "c.jpeg", "notes.txt", "clip.mp4")
	require.NoError(t, os.Mkdir(filepath.Join(imagesDir, "sub"), 0o755))
	writeFiles(t, filepath.Join(imagesDir, "sub"), "nested.png")

	out := filepath.Join(root, "images.json")
	n, err := Generate(imagesDir, out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list := readList(t, out)
	require.Len(t, list, 3)
	prefix := filepath.ToSlash(imagesDir)
	assert.Equal(t, []string{prefix + "/a.gif", prefix + "/b.png", prefix + "/c.jpeg"}, list)
}

func TestGenerate_CaseInsensitiveExtensions(t *testing.T) {
	root := t.TempDir()
	imagesDir := filepath.Join(root, "images")
	require.NoError(t, os.Mkdir(imagesDir, 0o755))
	writeFiles(t, imagesDir, "A.JPG", "b.Png")

	out := filepath.Join(root, "images.json")
	n, err := Generate(imagesDir, out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGenerate_EmptyDir(t *testing.T) {
	root := t.TempDir()
	imagesDir := filepath.Join(root, "images")
	require.NoError(t, os.Mkdir(imagesDir, 0o755))

	out := filepath.Join(root, "images.json")
	n, err := Generate(imagesDir, out)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.Empty(t, readList(t, out))
}

func TestGenerate_MissingDir(t *testing.T) {
	root := t.TempDir()
	_, err := Generate(filepath.Join(root, "absent"), filepath.Join(root, "out.json"))
	require.Error(t, err)
}
