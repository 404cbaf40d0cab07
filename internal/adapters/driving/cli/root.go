// Package cli provides the command-line interface for reshipi.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

// rootCmd represents the base command. Running it without a subcommand
// launches the TUI.
var rootCmd = &cobra.Command{
	Use:   "reshipi",
	Short: "AI recipe suggestions in your terminal",
	Long: `Reshipi suggests recipes from the ingredients you have on hand,
powered by the Gemini API.

Run without arguments to launch the interactive terminal UI, or use
the search subcommand for a one-shot query.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
