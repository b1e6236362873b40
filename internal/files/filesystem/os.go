package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements Provider using the operating system's filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS-backed filesystem provider.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file information for the given path.
func (o *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

// Open opens the file at path for reading.
func (o *OSFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Walk traverses the tree rooted at root. Access errors on individual
// entries are passed through to fn rather than aborting the walk, so a
// single unreadable directory does not hide its siblings.
func (o *OSFileSystem) Walk(root string, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, nil, err)
		}
		info, err := d.Info()
		if err != nil {
			return fn(path, nil, err)
		}
		return fn(path, info, nil)
	})
}

// Verify OSFileSystem implements the interface at compile time
var _ Provider = (*OSFileSystem)(nil)
