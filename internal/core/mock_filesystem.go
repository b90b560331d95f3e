package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Parent directories
// are derived from seeded file paths, so SetFile("/project/sub/a.txt", ...)
// makes both "/project" and "/project/sub" listable. Error fields, when
// non-nil, are returned by the corresponding operation; the Set*Error
// methods scope a failure to a single path instead.
type MockFileSystem struct {
	mu      sync.Mutex
	files   map[string][]byte
	dirs    map[string]bool
	special map[string]bool

	ReadErr    error
	WriteErr   error
	StatErr    error
	MkdirErr   error
	RemoveErr  error
	ReadDirErr error

	readErrs    map[string]error
	readDirErrs map[string]error

	// WriteCalls records the path of every successful WriteFile, in order.
	WriteCalls []string
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string][]byte),
		dirs:        make(map[string]bool),
		special:     make(map[string]bool),
		readErrs:    make(map[string]error),
		readDirErrs: make(map[string]error),
	}
}

// SetFile seeds a file with the given content, creating parent directories.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.files[path] = data
	m.addParents(path)
}

// SetDir seeds an (empty) directory.
func (m *MockFileSystem) SetDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.dirs[path] = true
	m.addParents(path)
}

// SetSpecial seeds an entry that is neither a regular file nor a directory,
// such as a socket or broken symlink.
func (m *MockFileSystem) SetSpecial(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.special[path] = true
	m.addParents(path)
}

// SetReadError makes ReadFile fail for one path only.
func (m *MockFileSystem) SetReadError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErrs[filepath.Clean(path)] = err
}

// SetReadDirError makes ReadDir fail for one path only.
func (m *MockFileSystem) SetReadDirError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readDirErrs[filepath.Clean(path)] = err
}

func (m *MockFileSystem) addParents(path string) {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if dir == "." || dir == string(filepath.Separator) || m.dirs[dir] {
			break
		}
		m.dirs[dir] = true
	}
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if err, ok := m.readErrs[path]; ok {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	path = filepath.Clean(path)
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[path] = stored
	m.addParents(path)
	m.WriteCalls = append(m.WriteCalls, path)
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StatErr != nil {
		return nil, m.StatErr
	}
	path = filepath.Clean(path)
	if data, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(data)), mode: 0o600}, nil
	}
	if m.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: fs.ModeDir | 0o755}, nil
	}
	if m.special[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: fs.ModeSocket}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (m *MockFileSystem) MkdirAll(ctx context.Context, path string, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MkdirErr != nil {
		return m.MkdirErr
	}
	path = filepath.Clean(path)
	m.dirs[path] = true
	m.addParents(path)
	return nil
}

func (m *MockFileSystem) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	path = filepath.Clean(path)
	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		return nil
	}
	if m.dirs[path] {
		delete(m.dirs, path)
		return nil
	}
	if m.special[path] {
		delete(m.special, path)
		return nil
	}
	return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
}

func (m *MockFileSystem) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	path = filepath.Clean(path)
	prefix := path + string(filepath.Separator)
	for p := range m.files {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.files, p)
		}
	}
	for p := range m.dirs {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.dirs, p)
		}
	}
	for p := range m.special {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.special, p)
		}
	}
	return nil
}

func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadDirErr != nil {
		return nil, m.ReadDirErr
	}
	path = filepath.Clean(path)
	if err, ok := m.readDirErrs[path]; ok {
		return nil, err
	}
	if !m.dirs[path] {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	prefix := path + string(filepath.Separator)
	if path == string(filepath.Separator) {
		prefix = path
	}
	seen := make(map[string]os.DirEntry)
	add := func(p string, mode fs.FileMode) {
		rest := strings.TrimPrefix(p, prefix)
		if rest == p || rest == "" {
			return
		}
		if i := strings.IndexRune(rest, filepath.Separator); i >= 0 {
			name := rest[:i]
			seen[name] = &mockDirEntry{name: name, mode: fs.ModeDir | 0o755}
			return
		}
		seen[rest] = &mockDirEntry{name: rest, mode: mode}
	}
	for p := range m.files {
		add(p, 0o600)
	}
	for p := range m.dirs {
		add(p, fs.ModeDir|0o755)
	}
	for p := range m.special {
		add(p, fs.ModeSocket)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]os.DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, seen[name])
	}
	return entries, nil
}

var _ FileSystem = (*MockFileSystem)(nil)

type mockFileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return i.size }
func (i *mockFileInfo) Mode() fs.FileMode  { return i.mode }
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i *mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	name string
	mode fs.FileMode
}

func (e *mockDirEntry) Name() string      { return e.name }
func (e *mockDirEntry) IsDir() bool       { return e.mode.IsDir() }
func (e *mockDirEntry) Type() fs.FileMode { return e.mode.Type() }

func (e *mockDirEntry) Info() (fs.FileInfo, error) {
	return &mockFileInfo{name: e.name, mode: e.mode}, nil
}
