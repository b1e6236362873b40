package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_StatAndOpen(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(p, []byte("line one\n"), 0o644))

	osfs := NewOSFileSystem()

	info, err := osfs.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, "sample.txt", info.Name())
	assert.False(t, info.IsDir())

	r, err := osfs.Open(p)
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "line one\n", string(content))
}

func TestOSFileSystem_WalkVisitsNestedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.log"), []byte("b"), 0o644))

	osfs := NewOSFileSystem()

	var files []string
	err := osfs.Walk(dir, func(path string, info FileInfo, err error) error {
		require.NoError(t, err)
		if !info.IsDir() {
			files = append(files, filepath.Base(path))
		}
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.log", "b.log"}, files)
}
