package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/pngme"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate file structure",
		Long: `The validate command checks the signature, framing and CRC of every chunk
and reports any chunk whose type code is not valid.

Example:
  pngctl validate dice.png
  pngctl validate dice.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
	path := args[0]

	printVerbose("Validating %s\n", path)

	err := pngme.Validate(path)

	if jsonOut {
		result := map[string]interface{}{
			"file":  path,
			"valid": err == nil,
		}
		if err != nil {
			result["error"] = err.Error()
		}
		if jerr := printJSON(result); jerr != nil {
			return jerr
		}
	}

	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if !jsonOut {
		printInfo("✓ %s is valid\n", path)
	}
	return nil
}
