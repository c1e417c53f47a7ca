package contract

import "path/filepath"

// MetadataDirName is the conventional subdirectory marking a git checkout root.
const MetadataDirName = ".git"

// GitDirProbe recognizes a directory as git metadata by its name alone.
// The locator probes each directory child of a visited node: when a child
// named ".git" is seen, the parent is the repository root. Matching on the
// name avoids opening the git engine for every candidate directory.
type GitDirProbe struct{}

var _ RepoProbe = &GitDirProbe{} // Compile-time check

// NewGitDirProbe creates a new instance of the name-based git probe.
func NewGitDirProbe() *GitDirProbe {
	return &GitDirProbe{}
}

// IsRepository reports whether the last path segment is the git metadata
// directory name.
func (p *GitDirProbe) IsRepository(path string) bool {
	return filepath.Base(path) == MetadataDirName
}
