package core

import (
	"errors"
	"time"

	"github.com/huangsam/recap/internal/contract"
	"github.com/huangsam/recap/schema"
)

// ErrNoRepositories indicates that discovery finished without locating a
// single repository. Callers treat it as a hard failure, unlike "found N
// repositories but nothing matched the filters" which is a quiet success.
var ErrNoRepositories = errors.New("no repositories found")

// Scan runs one full discovery-and-extract pass: locate repositories under
// the configured root, query each one's history for the date window, and
// narrow the commits by the author filter. Per-repository query errors are
// logged and leave that repository's entry empty; partial results always
// win over total failure.
func Scan(cfg *contract.Config, fs contract.Filesystem, probe contract.RepoProbe, open contract.VcsOpener) (*schema.ScanReport, error) {
	start := time.Now()
	locator := NewLocator(fs, probe, open, cfg.SearchRoot, cfg.SearchDepth)
	repositories := locator.Locate()
	elapsed := time.Since(start)

	if len(repositories) == 0 {
		return nil, ErrNoRepositories
	}

	report := &schema.ScanReport{Elapsed: elapsed}
	for _, repo := range repositories {
		commits, err := repo.VCS.Commits(cfg.Since, cfg.Until)
		if err != nil {
			contract.LogWarn("getting commits", err)
			commits = nil
		}
		report.Repos = append(report.Repos, schema.RepoReport{
			Name:    repo.Name,
			URI:     repo.URI,
			Head:    repo.VCS.Head(),
			Commits: FilterByAuthor(commits, cfg.Author, cfg.Match),
		})
	}
	return report, nil
}
