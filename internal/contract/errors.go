package contract

import "fmt"

// VcsError wraps a failure from the version-control engine, such as an
// unopenable repository or a broken revision walk.
type VcsError struct {
	Path string
	Err  error
}

func (e *VcsError) Error() string {
	return fmt.Sprintf("vcs error at %s: %v", e.Path, e.Err)
}

func (e *VcsError) Unwrap() error { return e.Err }

// DirectoryReadError wraps a failure to list a directory during traversal,
// carrying the underlying cause (permission denied, vanished mid-walk, not
// a directory).
type DirectoryReadError struct {
	Path string
	Err  error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("failed to read directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryReadError) Unwrap() error { return e.Err }

// PathError reports a path with no extractable final segment, such as "."
// or "..", which cannot name a repository.
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path: %s", e.Path)
}
