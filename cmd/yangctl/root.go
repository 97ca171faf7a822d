package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yangkit/yangkit/ylog"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "yangctl",
	Short: "Inspect inputs of the yangkit toolchain",
	Long: `yangctl exercises the yangkit input layer: it streams files through
the same input handles the schema and data parsers consume, which makes it
useful for checking what the parsers will actually see.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			ylog.SetLevel(ylog.LevelVerbose)
		}
		if quiet {
			ylog.SetCallback(func(ylog.Level, string, string) {})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
