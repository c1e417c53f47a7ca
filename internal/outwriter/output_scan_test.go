package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/recap/internal/contract"
	"github.com/huangsam/recap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *schema.ScanReport {
	when := time.Date(2025, 5, 6, 12, 0, 0, 0, time.UTC)
	return &schema.ScanReport{
		Elapsed: 42 * time.Millisecond,
		Repos: []schema.RepoReport{
			{
				Name: "alpha",
				URI:  filepath.Join("root", "alpha"),
				Head: "abc1234def5678abc1234def5678abc1234def56",
				Commits: []schema.Commit{
					{
						Title:      "fix traversal",
						Author:     schema.CommitAuthor{Name: "Vel Sartha", Email: "vel@aldhani.example"},
						CommitDate: when,
						Message:    "fix traversal\n\nbody",
						Hash:       schema.CommitHash{Short: "abc1234", Full: "abc1234def5678abc1234def5678abc1234def56"},
					},
				},
			},
			{
				Name: "beta",
				URI:  filepath.Join("root", "beta"),
				Head: contract.HeadSentinel,
			},
		},
	}
}

func plainTextConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		UseColors: false,
		Width:     100,
	}
}

func TestWriteScanText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeScanText(&buf, sampleReport(), plainTextConfig()))
	out := buf.String()

	assert.Contains(t, out, "Found 2 repositories")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "1 matching commits")
	assert.Contains(t, out, "abc1234 2025-05-06T12:00:00Z fix traversal")
	assert.Contains(t, out, "Total matching commits: 1")
	// Empty-repository sentinel is not abbreviated.
	assert.Contains(t, out, "head HEAD")
}

func TestWriteScanCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeScanCSV(&buf, sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one row per matching commit")
	assert.Equal(t, []string{"repo", "short_hash", "full_hash", "author", "email", "commit_date", "title"}, records[0])
	assert.Equal(t, "alpha", records[1][0])
	assert.Equal(t, "abc1234", records[1][1])
	assert.Equal(t, "vel@aldhani.example", records[1][4])
	assert.Equal(t, "2025-05-06T12:00:00Z", records[1][5])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleReport()))

	var decoded schema.ScanReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Repos, 2)
	assert.Equal(t, "alpha", decoded.Repos[0].Name)
	assert.Equal(t, "fix traversal", decoded.Repos[0].Commits[0].Title)
	// Elapsed is a run detail, not part of the report payload.
	assert.NotContains(t, buf.String(), "Elapsed")
}

func TestWriteScanReportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	cfg := plainTextConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = path

	require.NoError(t, WriteScanReport(sampleReport(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded schema.ScanReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Repos, 2)
}

func TestShortHead(t *testing.T) {
	assert.Equal(t, "abc1234", shortHead("abc1234def5678"))
	assert.Equal(t, contract.HeadSentinel, shortHead(contract.HeadSentinel))
	assert.Equal(t, "abc", shortHead("abc"))
}

func TestMatchLabel(t *testing.T) {
	assert.Equal(t, "3", matchLabel(3, false))
	assert.Equal(t, "0", matchLabel(0, false))
	// Colored output still carries the count text.
	assert.Contains(t, matchLabel(3, true), "3")
	assert.Contains(t, matchLabel(0, true), "0")
}

func TestGetMaxPathWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow override clamps low", 40, 15},
		{"standard override", 100, 55},
		{"wide override clamps high", 200, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, GetMaxPathWidth(cfg))
		})
	}
}
