package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yangkit/yangkit/input"
)

var (
	catChunk int
	catSkip  int
)

func init() {
	cmd := newCatCmd()
	cmd.Flags().IntVar(&catChunk, "chunk", 4096, "Read chunk size in bytes")
	cmd.Flags().IntVar(&catSkip, "skip", 0, "Bytes to seek past before streaming")
	rootCmd.AddCommand(cmd)
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>",
		Short: "Stream a file through an input handle to stdout",
		Long: `The cat command opens the file the way the parsers do and streams its
bytes to stdout. Because parser input is NUL-terminated text by contract,
output stops at the first NUL byte.

Example:
  yangctl cat module.yang
  yangctl cat module.yang --skip 128 --chunk 512`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(args[0])
		},
	}
}

func runCat(path string) error {
	in, err := input.NewFilepath(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Free(false)

	printVerbose("Streaming %s (%d bytes)\n", path, in.Len())

	if catSkip > 0 {
		if _, err := in.Read(nil, catSkip); err != nil {
			return err
		}
	}
	if catChunk <= 0 {
		catChunk = 4096
	}
	buf := make([]byte, catChunk)
	for {
		n, err := in.Read(buf, catChunk)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if _, err := os.Stdout.Write(buf[:n]); err != nil {
			return err
		}
	}
}
