// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/recap/internal/contract"
	"golang.org/x/term"
)

// GetMaxPathWidth calculates the maximum width for repository paths in
// table output based on terminal width and table configuration.
func GetMaxPathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (name, head, matches) plus table
	// borders, separators and padding.
	available := termWidth - 45
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
