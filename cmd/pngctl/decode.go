package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/pngme"
)

func init() {
	rootCmd.AddCommand(newDecodeCmd())
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Print the message stored in a chunk",
		Long: `The decode command prints the data of the first chunk with the given type
as UTF-8 text.

Example:
  pngctl decode dice.png ruSt
  pngctl decode dice.png ruSt --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
}

func runDecode(args []string) error {
	path, chunkType := args[0], args[1]

	printVerbose("Decoding %s chunk from %s\n", chunkType, path)

	msg, err := pngme.Decode(path, chunkType)
	if err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]string{
			"file":    path,
			"type":    chunkType,
			"message": msg,
		})
	}

	printInfo("%s\n", msg)
	return nil
}
