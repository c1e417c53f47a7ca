package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/huangsam/recap/internal/contract"
	"github.com/huangsam/recap/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Color variables for console output.
var (
	matchColor = color.New(color.FgGreen)   // repositories with matching commits
	quietColor = color.New(color.FgHiBlack) // repositories with none
)

// LogScanHeader prints a concise header for the scan run.
func LogScanHeader(cfg *contract.Config) {
	fmt.Printf("🔎 Root: %s (depth %d)\n", cfg.SearchRoot, cfg.SearchDepth)
	fmt.Printf("📅 Range: %s → %s\n", cfg.Since.Format(contract.DateTimeFormat), cfg.Until.Format(contract.DateTimeFormat))
	if cfg.Author != "" {
		fmt.Printf("👤 Author: %s (match: %s)\n", cfg.Author, cfg.Match)
	}
}

// WriteScanReport outputs the scan results, dispatching based on the
// output format configured.
func WriteScanReport(report *schema.ScanReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanCSV(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanText(w, report, cfg)
		}, "Wrote report")
	}
}

// writeScanText writes the human-readable report: informational lines per
// repository, one line per matching commit, and a closing summary table.
func writeScanText(w io.Writer, report *schema.ScanReport, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Found %d repositories in %v\n", len(report.Repos), report.Elapsed); err != nil {
		return err
	}

	for _, repo := range report.Repos {
		if _, err := fmt.Fprintf(w, "📦 %s (%s) head %s — %d matching commits\n",
			repo.Name, repo.URI, shortHead(repo.Head), len(repo.Commits)); err != nil {
			return err
		}
		for _, commit := range repo.Commits {
			if _, err := fmt.Fprintf(w, "%s %s %s\n",
				commit.Hash.Short, commit.CommitDate.Format(contract.DateTimeFormat), commit.Title); err != nil {
				return err
			}
		}
	}

	return writeScanTable(w, report, cfg)
}

// writeScanTable renders the per-repository summary table.
func writeScanTable(w io.Writer, report *schema.ScanReport, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Repo", "Path", "Head", "Matches"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxPathWidth := GetMaxPathWidth(cfg)
	var data [][]string
	for _, repo := range report.Repos {
		data = append(data, []string{
			repo.Name,
			contract.TruncatePath(repo.URI, maxPathWidth),
			shortHead(repo.Head),
			matchLabel(len(repo.Commits), cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Total matching commits: %d\n", report.TotalCommits())
	return err
}

// writeScanCSV writes one row per matching commit.
func writeScanCSV(w io.Writer, report *schema.ScanReport) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{"repo", "short_hash", "full_hash", "author", "email", "commit_date", "title"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, repo := range report.Repos {
		for _, commit := range repo.Commits {
			rec := []string{
				repo.Name,
				commit.Hash.Short,
				commit.Hash.Full,
				commit.Author.Name,
				commit.Author.Email,
				commit.CommitDate.Format(contract.DateTimeFormat),
				commit.Title,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// matchLabel renders the match count, colored when enabled.
func matchLabel(count int, useColors bool) string {
	text := strconv.Itoa(count)
	if !useColors {
		return text
	}
	if count > 0 {
		return matchColor.Sprint(text)
	}
	return quietColor.Sprint(text)
}

// shortHead abbreviates a full head hash for display. The "HEAD" sentinel
// for empty repositories passes through unchanged.
func shortHead(head string) string {
	if len(head) > 7 {
		return head[:7]
	}
	return head
}
