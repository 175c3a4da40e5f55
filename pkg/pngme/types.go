package pngme

import "github.com/joshuapare/pngkit/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import pkg/pngme

// Result records.
type (
	ChunkSummary = types.ChunkSummary
	FileInfo     = types.FileInfo
	TextEntry    = types.TextEntry
)
