package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/pngme"
)

func init() {
	rootCmd.AddCommand(newPrintCmd())
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "List every chunk in a file",
		Long: `The print command lists the chunks of a PNG file in order with their length,
CRC and property bits.

Flags: C=critical, P=public, S=safe to copy (a dash means the bit is clear).

Example:
  pngctl print dice.png
  pngctl print dice.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPrint(args)
		},
	}
}

func runPrint(args []string) error {
	path := args[0]

	printVerbose("Reading chunks from %s\n", path)

	chunks, err := pngme.List(path)
	if err != nil {
		return fmt.Errorf("failed to read chunks: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   path,
			"count":  len(chunks),
			"chunks": chunks,
		})
	}

	printInfo("%s: %d chunks\n", path, len(chunks))
	for _, c := range chunks {
		printInfo("  %3d  %-6s %10d  %08x  %s\n", c.Index, c.Type, c.Length, c.CRC, propertyFlags(c))
	}
	return nil
}

func propertyFlags(c pngme.ChunkSummary) string {
	flags := []byte("---")
	if c.Critical {
		flags[0] = 'C'
	}
	if c.Public {
		flags[1] = 'P'
	}
	if c.SafeToCopy {
		flags[2] = 'S'
	}
	return string(flags)
}
