package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yangkit/yangkit/input"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show how the parsers would see a file",
		Long: `The info command opens the file through the input layer and reports the
backing medium, the mapped view length, and the resolved source path that
would appear in diagnostics.

Example:
  yangctl info module.yang`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	in, err := input.NewFilepath(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Free(false)

	fmt.Printf("Medium: %s\n", in.Kind())
	fmt.Printf("Length: %d bytes\n", in.Len())
	if src, ok := in.SourcePath(); ok {
		fmt.Printf("Source: %s\n", src)
	}
	return nil
}
