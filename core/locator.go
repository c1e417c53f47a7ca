// Package core implements repository discovery and commit extraction.
package core

import (
	"github.com/huangsam/recap/internal/contract"
)

// Locator finds repository roots under a search root, bounded by depth.
// It holds no mutable state beyond its immutable configuration, so Locate
// may be called concurrently on the same instance.
type Locator struct {
	fs          contract.Filesystem
	probe       contract.RepoProbe
	open        contract.VcsOpener
	searchRoot  string
	searchDepth int
}

// NewLocator creates a locator over the given filesystem, probe and opener.
func NewLocator(fs contract.Filesystem, probe contract.RepoProbe, open contract.VcsOpener, searchRoot string, searchDepth int) *Locator {
	return &Locator{
		fs:          fs,
		probe:       probe,
		open:        open,
		searchRoot:  searchRoot,
		searchDepth: searchDepth,
	}
}

// Locate walks the tree depth-first and returns the discovered
// repositories in no particular order. Errors reading a subdirectory or
// opening a matched repository are logged and yield zero results for that
// branch; they never abort the walk.
//
// Depth is zero-based from the caller's perspective: searchDepth = N means
// repositories may be found up to N directory levels below the root. The
// extra level added here pays for the descent into a candidate's children,
// where the metadata directory is probed. A root that is itself a
// repository is therefore still reported at depth 0.
func (l *Locator) Locate() []*Repository {
	return l.locateRecursive(l.searchRoot, l.searchDepth+1)
}

func (l *Locator) locateRecursive(dir string, remainingDepth int) []*Repository {
	if remainingDepth == 0 {
		return nil
	}
	if !l.fs.IsDir(dir) {
		return nil
	}
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		contract.LogWarn("reading directory", err)
		return nil
	}

	// Probe the directory children first: a metadata-directory child means
	// dir is a repository root. A match ends the descent for this branch,
	// so nested checkouts below a matched root are never reported.
	for _, entry := range entries {
		if l.fs.IsDir(entry) && l.probe.IsRepository(entry) {
			repo, err := NewRepository(dir, l.open)
			if err != nil {
				contract.LogWarn("creating repository object", err)
				return nil
			}
			return []*Repository{repo}
		}
	}

	var repositories []*Repository
	for _, entry := range entries {
		if l.fs.IsDir(entry) {
			repositories = append(repositories, l.locateRecursive(entry, remainingDepth-1)...)
		}
	}
	return repositories
}
