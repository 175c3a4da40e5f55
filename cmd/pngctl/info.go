package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/pngme"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Display file statistics",
		Long: `The info command displays the size, BLAKE3 digest and chunk counts of a
PNG file.

Example:
  pngctl info dice.png
  pngctl info dice.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Reading %s\n", path)

	info, err := pngme.Stats(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("File:            %s\n", info.Path)
	printInfo("Size:            %s (%d bytes)\n", info.HumanSize, info.Size)
	printInfo("BLAKE3:          %s\n", info.BLAKE3)
	printInfo("Chunks:          %d\n", info.Chunks)
	printInfo("Critical chunks: %d\n", info.CriticalChunks)
	printInfo("Private chunks:  %d\n", info.PrivateChunks)
	printInfo("Data bytes:      %d\n", info.DataBytes)
	if info.Chunks > 0 {
		printInfo("First chunk:     %s\n", info.FirstType)
		printInfo("Last chunk:      %s\n", info.LastType)
	}
	return nil
}
