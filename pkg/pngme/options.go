package pngme

import "github.com/joshuapare/pngkit/internal/writer"

// OperationOptions controls how an edited file is written.
type OperationOptions struct {
	// OutputPath receives the edited file. If empty, the input is rewritten in place.
	OutputPath string

	// CreateBackup copies the input to <path>.bak before it is rewritten in place.
	// Ignored when OutputPath names a different file.
	CreateBackup bool

	// DryRun performs the edit in memory and skips writing.
	DryRun bool

	// Sink overrides the destination entirely; OutputPath and CreateBackup are
	// ignored when it is set.
	Sink writer.Sink
}

// EncodeOptions controls Encode.
type EncodeOptions = OperationOptions

// TextOptions controls AddText.
type TextOptions struct {
	OperationOptions

	// Compress stores the text zlib-compressed (zTXt, or compressed iTXt).
	Compress bool

	// International stores UTF-8 text in an iTXt chunk instead of Latin-1 tEXt/zTXt.
	International bool

	// Language is the iTXt language tag, e.g. "en" or "ja".
	Language string

	// TranslatedKeyword is the iTXt keyword translated into Language.
	TranslatedKeyword string
}
