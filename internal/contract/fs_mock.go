package contract

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// MemFilesystem is a deterministic in-memory Filesystem for tests. Trees
// are declared with AddDir and AddFile; ReadDir failures can be injected
// per path to exercise the partial-failure policy.
type MemFilesystem struct {
	dirs    map[string]map[string]struct{} // dir path -> child names
	files   map[string]struct{}
	failing map[string]struct{} // paths whose ReadDir fails
}

var _ Filesystem = &MemFilesystem{} // Compile-time check

// NewMemFilesystem creates an empty in-memory filesystem.
func NewMemFilesystem() *MemFilesystem {
	return &MemFilesystem{
		dirs:    make(map[string]map[string]struct{}),
		files:   make(map[string]struct{}),
		failing: make(map[string]struct{}),
	}
}

// AddDir registers a directory, creating all parent directories. Both
// relative and absolute paths keep their natural keys, so lookups use the
// same spelling as registration.
func (f *MemFilesystem) AddDir(path string) {
	segments := strings.Split(filepath.Clean(path), string(filepath.Separator))
	current := ""
	if segments[0] == "" { // Absolute path: anchor the chain at the root
		current = string(filepath.Separator)
		if _, ok := f.dirs[current]; !ok {
			f.dirs[current] = make(map[string]struct{})
		}
		segments = segments[1:]
	}
	for _, segment := range segments {
		if segment == "" { // AddDir("/") has no segments beyond the anchor
			continue
		}
		parent := current
		if current == "" {
			current = segment
		} else {
			current = filepath.Join(current, segment)
		}
		if _, ok := f.dirs[current]; !ok {
			f.dirs[current] = make(map[string]struct{})
		}
		if parent != "" {
			f.dirs[parent][segment] = struct{}{}
		}
	}
}

// AddFile registers a file, creating all parent directories.
func (f *MemFilesystem) AddFile(path string) {
	dir, name := filepath.Split(filepath.Clean(path))
	dir = filepath.Clean(dir)
	if dir != "." {
		f.AddDir(dir)
		f.dirs[dir][name] = struct{}{}
	}
	f.files[filepath.Clean(path)] = struct{}{}
}

// FailReadDir makes subsequent ReadDir calls for path return an error.
func (f *MemFilesystem) FailReadDir(path string) {
	f.failing[filepath.Clean(path)] = struct{}{}
}

// IsDir implements the Filesystem interface.
func (f *MemFilesystem) IsDir(path string) bool {
	_, ok := f.dirs[filepath.Clean(path)]
	return ok
}

// ReadDir implements the Filesystem interface.
func (f *MemFilesystem) ReadDir(path string) ([]string, error) {
	path = filepath.Clean(path)
	if _, ok := f.failing[path]; ok {
		return nil, &DirectoryReadError{Path: path, Err: fmt.Errorf("injected failure")}
	}
	children, ok := f.dirs[path]
	if !ok {
		return nil, &DirectoryReadError{Path: path, Err: fmt.Errorf("not a directory")}
	}
	paths := make([]string, 0, len(children))
	for name := range children {
		paths = append(paths, filepath.Join(path, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// Exists implements the Filesystem interface.
func (f *MemFilesystem) Exists(path string) bool {
	path = filepath.Clean(path)
	if _, ok := f.dirs[path]; ok {
		return true
	}
	_, ok := f.files[path]
	return ok
}
