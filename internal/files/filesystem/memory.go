package filesystem

import (
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries.
type memoryFileInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem is an in-memory FileSystemProvider. Relative paths are
// resolved against root. Parent directories of added files exist implicitly.
type MemoryFileSystem struct {
	root  string
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFileSystem creates an empty filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean("/" + strings.ReplaceAll(root, "\\", "/"))
	return &MemoryFileSystem{
		root:  root,
		files: make(map[string][]byte),
		dirs:  map[string]bool{root: true, "/": true},
	}
}

// AddFile stores content at name, creating parent directories.
func (m *MemoryFileSystem) AddFile(name, content string) {
	p := m.resolve(name)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = []byte(content)
	for dir := path.Dir(p); !m.dirs[dir]; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}

// AddDir creates an empty directory.
func (m *MemoryFileSystem) AddDir(name string) {
	p := m.resolve(name)

	m.mu.Lock()
	defer m.mu.Unlock()
	for dir := p; !m.dirs[dir]; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}

func (m *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	p := m.resolve(name)

	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[p]
	if !ok {
		if m.dirs[p] {
			return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
		}
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *MemoryFileSystem) Stat(name string) (FileInfo, error) {
	p := m.resolve(name)

	m.mu.RLock()
	defer m.mu.RUnlock()
	if content, ok := m.files[p]; ok {
		return &memoryFileInfo{name: path.Base(p), size: int64(len(content)), mode: 0o644}, nil
	}
	if m.dirs[p] {
		return &memoryFileInfo{name: path.Base(p), mode: fs.ModeDir | 0o755, isDir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFileSystem) resolve(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(m.root, name)
}
