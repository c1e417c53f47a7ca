// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/recap/schema"
)

// Filesystem abstracts the directory operations used by repository discovery.
// This allows the traversal algorithm to be tested exhaustively against a
// synthetic tree with zero I/O.
type Filesystem interface {
	// IsDir reports whether path exists and is a directory. It never fails;
	// non-existent or non-directory paths simply report false.
	IsDir(path string) bool

	// ReadDir lists the entries of a directory as full paths. It fails with
	// a DirectoryReadError when the directory cannot be listed.
	ReadDir(path string) ([]string, error)

	// Exists reports whether path exists at all.
	Exists(path string) bool
}

// RepoProbe decides whether a directory is a repository checkout root
// without opening the VCS engine. Implementations must be side-effect-free.
type RepoProbe interface {
	IsRepository(path string) bool
}

// VcsHandle exposes the version-control operations recap needs from an
// opened repository. There is exactly one production implementation, backed
// by go-git, plus test doubles.
type VcsHandle interface {
	// Head returns the tip revision identifier. When HEAD cannot be
	// resolved (e.g. an unborn branch), it returns the sentinel "HEAD"
	// rather than failing.
	Head() string

	// Commits walks history from HEAD newest-first and returns every commit
	// whose committer timestamp t satisfies since <= t <= until, both ends
	// inclusive. The walk stops at the first commit older than since.
	Commits(since, until time.Time) ([]schema.Commit, error)
}

// VcsOpener opens a VCS handle for the repository at path. It fails with a
// VcsError when the path is not an openable repository, even if the probe
// matched it.
type VcsOpener func(path string) (VcsHandle, error)
