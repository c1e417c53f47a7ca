package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/recap/core"
	"github.com/huangsam/recap/internal/contract"
	"github.com/huangsam/recap/internal/outwriter"
	"github.com/huangsam/recap/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint. Running it without a subcommand
// performs the scan.
var rootCmd = &cobra.Command{
	Use:                "recap",
	Short:              "Find git repositories and recap recent commits across them.",
	Long:               `Recap walks a directory tree for git checkouts and reports what was committed within a date window, filtered by author.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if cfg.Output == schema.TextOut && cfg.OutputFile == "" {
			outwriter.LogScanHeader(cfg)
		}
		report, err := core.Scan(cfg, contract.NewOSFilesystem(), contract.NewGitDirProbe(), contract.OpenGitRepository)
		if err != nil {
			return err
		}
		return outwriter.WriteScanReport(report, cfg)
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".recap") // Name of config file (without extension)
		viper.SetConfigType("yaml")   // We'll use YAML format
		viper.AddConfigPath(".")      // Look in the current directory
		viper.AddConfigPath("$HOME")  // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("RECAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("search-root", contract.DefaultSearchRoot)
	viper.SetDefault("search-depth", contract.DefaultSearchDepth)
	viper.SetDefault("match", schema.FullMatch)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, cmd *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Record whether the author was supplied explicitly (which Viper
	// doesn't track). An explicit "-a ''" disables the filter; omitting the
	// flag falls back to the local git identity.
	input.AuthorSet = cmd.Flags().Changed("author") || input.Author != ""

	// 4. Run validation and complex parsing. The local git identity is
	// resolved here, once, and handed in as an explicit input.
	return contract.ProcessAndValidate(cfg, contract.NewOSFilesystem(), input, contract.DefaultAuthor())
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
