package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// WalkFunc is called once per file or directory reached during Walk.
// err is non-nil when the entry itself could not be accessed; the entry's
// info may then be nil. Returning a non-nil error stops the walk.
type WalkFunc func(path string, info FileInfo, err error) error

// Provider is the read-only filesystem surface the scanner depends on.
// The OS implementation backs production use; the in-memory implementation
// backs tests.
type Provider interface {
	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Open opens the file at path for reading.
	Open(path string) (io.ReadCloser, error)

	// Walk traverses the tree rooted at root, calling fn for every file and
	// directory encountered.
	Walk(root string, fn WalkFunc) error
}
