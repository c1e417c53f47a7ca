package core

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/recap/internal/contract"
	"github.com/huangsam/recap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func scanConfig() *contract.Config {
	since := time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)
	return &contract.Config{
		SearchRoot:  "root",
		SearchDepth: 4,
		Since:       since,
		Until:       since.Add(24 * time.Hour),
		Match:       schema.FullMatch,
	}
}

func mockCommit(title, name, email string) schema.Commit {
	return schema.Commit{
		Title:  title,
		Author: schema.CommitAuthor{Name: name, Email: email},
		Hash:   schema.CommitHash{Short: "abc1234", Full: "abc1234def"},
	}
}

func TestScanNoRepositories(t *testing.T) {
	fs := contract.NewMemFilesystem()
	fs.AddDir(filepath.Join("root", "empty"))

	_, err := Scan(scanConfig(), fs, &contract.GitDirProbe{}, stubOpener)
	assert.ErrorIs(t, err, ErrNoRepositories)
}

func TestScanCollectsPerRepositoryReports(t *testing.T) {
	fs := contract.NewMemFilesystem()
	fs.AddDir(filepath.Join("root", "alpha", ".git"))
	fs.AddDir(filepath.Join("root", "beta", ".git"))
	cfg := scanConfig()

	handles := map[string]*contract.MockVcsHandle{}
	for name, commits := range map[string][]schema.Commit{
		filepath.Join("root", "alpha"): {
			mockCommit("fix walk", "Vel Sartha", "vel@aldhani.example"),
			mockCommit("add probe", "Cinta Kaz", "cinta@aldhani.example"),
		},
		filepath.Join("root", "beta"): nil,
	} {
		handle := &contract.MockVcsHandle{}
		handle.On("Commits", cfg.Since, cfg.Until).Return(commits, nil)
		handle.On("Head").Return("headhash" + name)
		handles[name] = handle
	}
	opener := func(path string) (contract.VcsHandle, error) {
		handle, ok := handles[path]
		require.True(t, ok, "unexpected open of %s", path)
		return handle, nil
	}

	report, err := Scan(cfg, fs, &contract.GitDirProbe{}, opener)
	require.NoError(t, err)
	require.Len(t, report.Repos, 2)
	assert.Equal(t, 2, report.TotalCommits())
	assert.GreaterOrEqual(t, report.Elapsed, time.Duration(0))

	byName := map[string]schema.RepoReport{}
	for _, repo := range report.Repos {
		byName[repo.Name] = repo
	}
	assert.Len(t, byName["alpha"].Commits, 2)
	assert.Empty(t, byName["beta"].Commits)

	for _, handle := range handles {
		handle.AssertExpectations(t)
	}
}

func TestScanAppliesAuthorFilter(t *testing.T) {
	fs := contract.NewMemFilesystem()
	fs.AddDir(filepath.Join("root", "alpha", ".git"))
	cfg := scanConfig()
	cfg.Author = "cinta@aldhani.example"
	cfg.Match = schema.EmailMatch

	handle := &contract.MockVcsHandle{}
	handle.On("Commits", cfg.Since, cfg.Until).Return([]schema.Commit{
		mockCommit("fix walk", "Vel Sartha", "vel@aldhani.example"),
		mockCommit("add probe", "Cinta Kaz", "cinta@aldhani.example"),
	}, nil)
	handle.On("Head").Return("headhash")
	opener := func(string) (contract.VcsHandle, error) { return handle, nil }

	report, err := Scan(cfg, fs, &contract.GitDirProbe{}, opener)
	require.NoError(t, err)
	require.Len(t, report.Repos, 1)
	require.Len(t, report.Repos[0].Commits, 1)
	assert.Equal(t, "add probe", report.Repos[0].Commits[0].Title)
}

func TestScanQueryFailureYieldsEmptyEntry(t *testing.T) {
	fs := contract.NewMemFilesystem()
	fs.AddDir(filepath.Join("root", "alpha", ".git"))
	cfg := scanConfig()

	handle := &contract.MockVcsHandle{}
	handle.On("Commits", mock.Anything, mock.Anything).Return(nil, errors.New("object store corrupt"))
	handle.On("Head").Return(contract.HeadSentinel)
	opener := func(string) (contract.VcsHandle, error) { return handle, nil }

	report, err := Scan(cfg, fs, &contract.GitDirProbe{}, opener)
	require.NoError(t, err, "per-repository failures never abort the scan")
	require.Len(t, report.Repos, 1)
	assert.Empty(t, report.Repos[0].Commits)
	assert.Equal(t, contract.HeadSentinel, report.Repos[0].Head)
}
