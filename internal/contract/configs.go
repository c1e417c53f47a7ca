package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/recap/schema"
)

// Default values for configuration.
const (
	DefaultSearchRoot  = "."
	DefaultSearchDepth = 5
	DefaultLookback    = 24 * time.Hour
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Accepted input layouts for --since and --until, tried in order.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Config holds the runtime configuration for one scan.
// This struct remains the "final, validated" config and is immutable for
// the lifetime of a run.
type Config struct {
	SearchRoot  string
	SearchDepth int
	Since       time.Time
	Until       time.Time
	Author      string // Empty disables the author filter
	Match       schema.AuthorMatchMode
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool
	Width       int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// AuthorSet is set manually from the flag's Changed state, so no tag.
	// It distinguishes "flag omitted" (use the local git identity) from
	// "-a ''" (disable the author filter).
	AuthorSet bool

	SearchRoot  string `mapstructure:"search-root"`
	SearchDepth int    `mapstructure:"search-depth"`
	Since       string `mapstructure:"since"`
	Until       string `mapstructure:"until"`
	Author      string `mapstructure:"author"`
	Match       string `mapstructure:"match"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Color       string `mapstructure:"color"`
	Width       int    `mapstructure:"width"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct. defaultAuthor is the pre-resolved
// local git identity; it is injected rather than read here so that identity
// lookup stays an explicit input of the run.
func ProcessAndValidate(cfg *Config, fs Filesystem, input *ConfigRawInput, defaultAuthor string) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeWindow(cfg, input); err != nil {
		return err
	}
	if err := resolveSearchRoot(cfg, fs, input); err != nil {
		return err
	}

	if input.AuthorSet {
		cfg.Author = input.Author
	} else {
		cfg.Author = defaultAuthor
	}
	return nil
}

// validateSimpleInputs checks the scalar flags that need no I/O.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	if input.SearchDepth < 0 {
		return fmt.Errorf("search depth must be non-negative, got %d", input.SearchDepth)
	}
	cfg.SearchDepth = input.SearchDepth

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.Match = schema.AuthorMatchMode(strings.ToLower(input.Match))
	if _, ok := schema.ValidAuthorMatchModes[cfg.Match]; !ok {
		return fmt.Errorf("invalid match mode '%s'. must be full, email", input.Match)
	}

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors
	cfg.Width = input.Width
	return nil
}

// processTimeWindow parses the date window, defaulting to the last 24 hours.
func processTimeWindow(cfg *Config, input *ConfigRawInput) error {
	now := time.Now()
	cfg.Until = now
	cfg.Since = now.Add(-DefaultLookback)

	if input.Since != "" {
		t, err := ParseDateTime(input.Since)
		if err != nil {
			return fmt.Errorf("invalid since date '%s': %w", input.Since, err)
		}
		cfg.Since = t
	}
	if input.Until != "" {
		t, err := ParseDateTime(input.Until)
		if err != nil {
			return fmt.Errorf("invalid until date '%s': %w", input.Until, err)
		}
		cfg.Until = t
	}

	if cfg.Since.After(cfg.Until) {
		return fmt.Errorf("since (%s) cannot be after until (%s)",
			cfg.Since.Format(DateTimeFormat), cfg.Until.Format(DateTimeFormat))
	}
	return nil
}

// resolveSearchRoot checks that the search root is a readable directory.
// An unusable root fails the whole run, unlike per-branch errors during
// traversal which are only logged.
func resolveSearchRoot(cfg *Config, fs Filesystem, input *ConfigRawInput) error {
	root := input.SearchRoot
	if root == "" {
		root = DefaultSearchRoot
	}
	if !fs.IsDir(root) {
		return fmt.Errorf("search root '%s' is not a directory", root)
	}
	cfg.SearchRoot = root
	return nil
}

// ParseDateTime parses a user-supplied date string. RFC3339 inputs keep
// their own offset; the date-time and date-only layouts are interpreted in
// local time, matching what an operator means by "since yesterday".
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range dateTimeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q. Expected RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'", s)
}
