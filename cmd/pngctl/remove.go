package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/pngme"
)

var (
	removeBackup bool
	removeDryRun bool
)

func init() {
	cmd := newRemoveCmd()
	cmd.Flags().BoolVar(&removeBackup, "backup", false, "Write <file>.bak before modifying the file")
	cmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "Show what would be removed without writing")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <chunk-type>",
		Short: "Remove the first chunk of a type",
		Long: `The remove command deletes the first chunk with the given type and rewrites
the file in place. The removed chunk's message is printed.

Example:
  pngctl remove dice.png ruSt
  pngctl remove dice.png ruSt --backup`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
}

func runRemove(args []string) error {
	path, chunkType := args[0], args[1]
	opts := &pngme.OperationOptions{
		CreateBackup: removeBackup || cfg.Backup,
		DryRun:       removeDryRun,
	}

	printVerbose("Removing %s chunk from %s\n", chunkType, path)

	removed, err := pngme.Remove(path, chunkType, opts)
	if err != nil {
		return fmt.Errorf("failed to remove chunk: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"success": true,
			"file":    path,
			"removed": removed.Summary(),
			"dry_run": opts.DryRun,
		})
	}

	if opts.DryRun {
		printInfo("Dry run: would remove %s chunk (%d bytes) from %s\n", chunkType, removed.Length(), path)
		return nil
	}
	printInfo("Removed %s chunk (%d bytes) from %s\n", chunkType, removed.Length(), path)
	if msg, err := removed.Text(); err == nil {
		printVerbose("Message: %s\n", msg)
	}
	return nil
}
