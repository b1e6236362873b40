package filesystem

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// MemoryFS implements Provider with an in-memory file tree. It exists for
// testing scan logic without touching the real filesystem. Paths use forward
// slashes; directories are implied by the files stored beneath them.
type MemoryFS struct {
	files    map[string][]byte
	openErrs map[string]error
	walkErrs map[string]error
	modTime  time.Time
}

// NewMemoryFS creates an empty in-memory filesystem.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:    make(map[string][]byte),
		openErrs: make(map[string]error),
		walkErrs: make(map[string]error),
		modTime:  time.Now(),
	}
}

// AddFile stores content at the given path, creating implied parent
// directories.
func (m *MemoryFS) AddFile(p string, content []byte) {
	m.files[path.Clean(p)] = content
}

// FailOpen makes Open return err for the given path. The file is still
// visible to Stat and Walk, mimicking an unreadable file.
func (m *MemoryFS) FailOpen(p string, err error) {
	m.openErrs[path.Clean(p)] = err
}

// FailWalk makes Walk report err for the given path instead of its info,
// mimicking an inaccessible entry during traversal.
func (m *MemoryFS) FailWalk(p string, err error) {
	m.walkErrs[path.Clean(p)] = err
}

// Stat returns file information for the given path.
func (m *MemoryFS) Stat(p string) (FileInfo, error) {
	p = path.Clean(p)
	if content, ok := m.files[p]; ok {
		return memoryInfo{name: path.Base(p), size: int64(len(content)), modTime: m.modTime}, nil
	}
	if m.isDir(p) {
		return memoryInfo{name: path.Base(p), dir: true, modTime: m.modTime}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

// Open opens the file at path for reading.
func (m *MemoryFS) Open(p string) (io.ReadCloser, error) {
	p = path.Clean(p)
	if err, ok := m.openErrs[p]; ok {
		return nil, err
	}
	content, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// Walk traverses files under root in lexical order, matching the
// deterministic ordering of filepath.WalkDir.
func (m *MemoryFS) Walk(root string, fn WalkFunc) error {
	root = path.Clean(root)
	if !m.isDir(root) {
		if _, ok := m.files[root]; !ok {
			return &fs.PathError{Op: "walk", Path: root, Err: fs.ErrNotExist}
		}
	}

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		if p == root || strings.HasPrefix(p, root+"/") {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err, ok := m.walkErrs[p]; ok {
			if werr := fn(p, nil, err); werr != nil {
				return werr
			}
			continue
		}
		info, err := m.Stat(p)
		if err != nil {
			return err
		}
		if werr := fn(p, info, nil); werr != nil {
			return werr
		}
	}
	return nil
}

func (m *MemoryFS) isDir(p string) bool {
	for f := range m.files {
		if strings.HasPrefix(f, p+"/") {
			return true
		}
	}
	return false
}

// memoryInfo is the fs.FileInfo implementation for in-memory entries.
type memoryInfo struct {
	name    string
	size    int64
	dir     bool
	modTime time.Time
}

func (i memoryInfo) Name() string { return i.name }
func (i memoryInfo) Size() int64  { return i.size }
func (i memoryInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i memoryInfo) ModTime() time.Time { return i.modTime }
func (i memoryInfo) IsDir() bool        { return i.dir }
func (i memoryInfo) Sys() interface{}   { return nil }

// Verify MemoryFS implements the interface at compile time
var _ Provider = (*MemoryFS)(nil)
