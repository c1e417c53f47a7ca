// Package schema has the value types shared by all parts of recap.
package schema

import (
	"fmt"
	"time"
)

// shortHashLen is the number of leading characters of a full commit hash
// that make up its short form.
const shortHashLen = 7

// CommitAuthor identifies who wrote a commit. It is a plain value type
// with no identity beyond its fields.
type CommitAuthor struct {
	Name  string `json:"name"`  // Author name as recorded by the VCS
	Email string `json:"email"` // Author email as recorded by the VCS
}

// String renders the author as "Name <email>". An empty email drops the
// angle-bracket segment, an empty name drops the name segment, and both
// empty renders as the empty string.
func (a CommitAuthor) String() string {
	switch {
	case a.Name == "" && a.Email == "":
		return ""
	case a.Email == "":
		return a.Name
	case a.Name == "":
		return fmt.Sprintf("<%s>", a.Email)
	default:
		return fmt.Sprintf("%s <%s>", a.Name, a.Email)
	}
}

// CommitHash holds both forms of a commit identifier. Short is always the
// first 7 characters of Full.
type CommitHash struct {
	Short string `json:"short"` // First 7 characters of Full
	Full  string `json:"full"`  // Complete hash as reported by the VCS
}

// NewCommitHash builds a CommitHash from a full hash string. It fails when
// the input is too short to derive the short form, rather than truncating
// or panicking.
func NewCommitHash(full string) (CommitHash, error) {
	if len(full) < shortHashLen {
		return CommitHash{}, fmt.Errorf("commit hash %q is shorter than %d characters", full, shortHashLen)
	}
	return CommitHash{Short: full[:shortHashLen], Full: full}, nil
}

// Commit is a read-only projection of a single VCS revision. Instances are
// produced on demand by a VCS handle and are never persisted or mutated.
type Commit struct {
	Title      string       `json:"title"`       // First line of the commit message
	Author     CommitAuthor `json:"author"`      // Who wrote the commit
	CommitDate time.Time    `json:"commit_date"` // Committer timestamp, carrying its UTC offset
	Message    string       `json:"message"`     // Full commit message
	Hash       CommitHash   `json:"hash"`        // Short and full commit identifiers
}

// RepoReport holds the outcome of querying one discovered repository.
type RepoReport struct {
	Name    string   `json:"name"`    // Final path segment of the repository root
	URI     string   `json:"uri"`     // Path to the repository root
	Head    string   `json:"head"`    // Tip revision, or the "HEAD" sentinel for empty repos
	Commits []Commit `json:"commits"` // Commits matching the date window and author filter
}

// ScanReport is the full result of one discovery-and-extract run.
type ScanReport struct {
	Repos   []RepoReport  `json:"repos"` // One entry per discovered repository
	Elapsed time.Duration `json:"-"`     // How long repository discovery took
}

// TotalCommits returns the number of matching commits across all repositories.
func (r *ScanReport) TotalCommits() int {
	total := 0
	for _, repo := range r.Repos {
		total += len(repo.Commits)
	}
	return total
}
