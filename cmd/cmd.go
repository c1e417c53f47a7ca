// Package cmd defines the command-line interface for recap.
package cmd

import (
	"github.com/huangsam/recap/internal/contract"
	"github.com/huangsam/recap/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("search-root", "r", contract.DefaultSearchRoot, "Root directory to search for repositories")
	rootCmd.PersistentFlags().IntP("search-depth", "d", contract.DefaultSearchDepth, "Maximum directory depth to search below the root")
	rootCmd.PersistentFlags().StringP("since", "s", "", "Include commits since this date, inclusive (default: 24 hours ago)")
	rootCmd.PersistentFlags().StringP("until", "u", "", "Include commits until this date, inclusive (default: now)")
	rootCmd.PersistentFlags().StringP("author", "a", "", "Filter commits by author in 'Name <email>' format (default: local git identity; empty disables)")
	rootCmd.PersistentFlags().String("match", string(schema.FullMatch), "Author comparison mode: full or email")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
