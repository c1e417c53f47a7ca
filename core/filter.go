package core

import "github.com/huangsam/recap/schema"

// FilterByAuthor keeps the commits whose author matches the given string.
// An empty match passes everything through. FullMatch compares against the
// formatted "Name <email>" string, EmailMatch against the bare email.
// Comparison is exact: no partial matching, no case folding.
func FilterByAuthor(commits []schema.Commit, match string, mode schema.AuthorMatchMode) []schema.Commit {
	if match == "" {
		return commits
	}
	filtered := make([]schema.Commit, 0, len(commits))
	for _, commit := range commits {
		candidate := commit.Author.String()
		if mode == schema.EmailMatch {
			candidate = commit.Author.Email
		}
		if candidate == match {
			filtered = append(filtered, commit)
		}
	}
	return filtered
}
