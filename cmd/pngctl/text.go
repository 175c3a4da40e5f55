package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/pngme"
)

var (
	textCompress   bool
	textITXt       bool
	textLanguage   string
	textTranslated string
	textBackup     bool
	textDryRun     bool
)

func init() {
	textCmd := &cobra.Command{
		Use:   "text",
		Short: "Read and write textual metadata chunks",
		Long: `The text commands manage tEXt, zTXt and iTXt chunks, the keyword/value
metadata defined by the PNG standard.`,
	}

	addCmd := newTextAddCmd()
	addCmd.Flags().BoolVar(&textCompress, "compress", false, "Store the text zlib-compressed (zTXt, or compressed iTXt)")
	addCmd.Flags().BoolVar(&textITXt, "itxt", false, "Store UTF-8 text in an iTXt chunk")
	addCmd.Flags().StringVar(&textLanguage, "lang", "", "iTXt language tag (implies --itxt)")
	addCmd.Flags().StringVar(&textTranslated, "translated", "", "iTXt translated keyword (implies --itxt)")
	addCmd.Flags().BoolVar(&textBackup, "backup", false, "Write <file>.bak before modifying the file")
	addCmd.Flags().BoolVar(&textDryRun, "dry-run", false, "Build the new file in memory without writing it")

	textCmd.AddCommand(newTextListCmd(), addCmd)
	rootCmd.AddCommand(textCmd)
}

func newTextListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List textual metadata",
		Long: `The list command decodes every tEXt, zTXt and iTXt chunk in the file.

Example:
  pngctl text list photo.png
  pngctl text list photo.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTextList(args)
		},
	}
}

func newTextAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <keyword> <text>",
		Short: "Add a textual metadata chunk",
		Long: `The add command stores keyword/text metadata. Without flags a Latin-1 tEXt
chunk is written; --compress selects zTXt and --itxt selects UTF-8 iTXt.

Example:
  pngctl text add photo.png Author "Jane Doe"
  pngctl text add photo.png Comment "long text..." --compress
  pngctl text add photo.png Title "タイトル" --itxt --lang ja`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			compress := textCompress
			if !cmd.Flags().Changed("compress") {
				compress = cfg.Text.Compress
			}
			return runTextAdd(args, compress)
		},
	}
}

func runTextList(args []string) error {
	path := args[0]

	printVerbose("Reading text chunks from %s\n", path)

	entries, err := pngme.ListText(path)
	if err != nil {
		return fmt.Errorf("failed to read text chunks: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"count":   len(entries),
			"entries": entries,
		})
	}

	if len(entries) == 0 {
		printInfo("No text chunks in %s\n", path)
		return nil
	}
	for _, e := range entries {
		label := e.Type
		if e.Compressed {
			label += ", compressed"
		}
		if e.Language != "" {
			label += ", " + e.Language
		}
		printInfo("%s (%s): %s\n", e.Keyword, label, e.Text)
	}
	return nil
}

func runTextAdd(args []string, compress bool) error {
	path, keyword, text := args[0], args[1], args[2]
	opts := &pngme.TextOptions{
		OperationOptions: pngme.OperationOptions{
			CreateBackup: textBackup || cfg.Backup,
			DryRun:       textDryRun,
		},
		Compress:          compress,
		International:     textITXt || textLanguage != "" || textTranslated != "",
		Language:          textLanguage,
		TranslatedKeyword: textTranslated,
	}

	printVerbose("Adding %q to %s\n", keyword, path)

	if err := pngme.AddText(path, keyword, text, opts); err != nil {
		return fmt.Errorf("failed to add text: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"success":       true,
			"file":          path,
			"keyword":       keyword,
			"compressed":    opts.Compress,
			"international": opts.International,
			"dry_run":       opts.DryRun,
		})
	}

	if opts.DryRun {
		printInfo("Dry run: would add %q to %s\n", keyword, path)
		return nil
	}
	printInfo("Added %q to %s\n", keyword, path)
	return nil
}
