package types

// ChunkSummary describes one chunk without its payload.
type ChunkSummary struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        uint32 `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
}

// FileInfo reports metadata about a PNG file on disk.
type FileInfo struct {
	Path           string `json:"path"`
	Size           int64  `json:"size"`
	HumanSize      string `json:"human_size"`
	BLAKE3         string `json:"blake3"`
	Chunks         int    `json:"chunks"`
	CriticalChunks int    `json:"critical_chunks"`
	PrivateChunks  int    `json:"private_chunks"`
	DataBytes      uint64 `json:"data_bytes"`
	FirstType      string `json:"first_type,omitempty"`
	LastType       string `json:"last_type,omitempty"`
}

// TextEntry is the decoded content of a tEXt, zTXt or iTXt chunk.
type TextEntry struct {
	Type              string `json:"type"`
	Keyword           string `json:"keyword"`
	Text              string `json:"text"`
	Compressed        bool   `json:"compressed"`
	Language          string `json:"language,omitempty"`
	TranslatedKeyword string `json:"translated_keyword,omitempty"`
}
