package contract

import (
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/huangsam/recap/schema"
)

// HeadSentinel is returned by Head when the tip revision cannot be
// resolved, which happens for repositories with no commits yet.
const HeadSentinel = "HEAD"

// GitVcsHandle implements the VcsHandle interface on top of an opened
// go-git repository.
type GitVcsHandle struct {
	path string
	repo *gogit.Repository
}

var _ VcsHandle = &GitVcsHandle{} // Compile-time check

// OpenGitRepository opens the git repository at path. It is the production
// VcsOpener.
func OpenGitRepository(path string) (VcsHandle, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, &VcsError{Path: path, Err: err}
	}
	return &GitVcsHandle{path: path, repo: repo}, nil
}

// Head implements the VcsHandle interface.
func (h *GitVcsHandle) Head() string {
	ref, err := h.repo.Head()
	if err != nil {
		return HeadSentinel
	}
	return ref.Hash().String()
}

// Commits implements the VcsHandle interface. History is walked from HEAD
// in committer-time order, newest first. The walk stops at the first commit
// older than since; commits are assumed monotonically non-increasing in
// time along the walked path, so this is an optimization, not a filter.
// The stop and the window both compare the committer clock, the clock the
// walk is ordered by. The author clock can diverge from it on rebased or
// cherry-picked history and must not drive either decision. Timestamps
// from go-git carry their UTC offset, so instant comparison against the
// window is offset-correct.
func (h *GitVcsHandle) Commits(since, until time.Time) ([]schema.Commit, error) {
	ref, err := h.repo.Head()
	if err != nil {
		return nil, &VcsError{Path: h.path, Err: err}
	}
	iter, err := h.repo.Log(&gogit.LogOptions{
		From:  ref.Hash(),
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, &VcsError{Path: h.path, Err: err}
	}
	defer iter.Close()

	var commits []schema.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		when := c.Committer.When
		if when.Before(since) {
			return storer.ErrStop
		}
		if when.After(until) {
			return nil
		}
		hash, err := schema.NewCommitHash(c.Hash.String())
		if err != nil {
			return err
		}
		commits = append(commits, schema.Commit{
			Title:      summaryLine(c.Message),
			Author:     schema.CommitAuthor{Name: c.Author.Name, Email: c.Author.Email},
			CommitDate: when,
			Message:    c.Message,
			Hash:       hash,
		})
		return nil
	})
	if err != nil {
		return nil, &VcsError{Path: h.path, Err: err}
	}
	return commits, nil
}

// summaryLine extracts the title line of a commit message.
func summaryLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}

// DefaultAuthor reads user.name and user.email from the global git
// configuration and formats them as "Name <email>". It returns the empty
// string when either value is missing, which disables the author filter.
// Callers resolve this once per run and pass it in explicitly.
func DefaultAuthor() string {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return ""
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		return ""
	}
	return schema.CommitAuthor{Name: cfg.User.Name, Email: cfg.User.Email}.String()
}
