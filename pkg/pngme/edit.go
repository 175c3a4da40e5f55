package pngme

import (
	"fmt"

	"github.com/joshuapare/pngkit/png"
)

// Encode stores message in a new chunk of type chunkType, inserted just
// before the file's final chunk (IEND).
//
// Example:
//
//	err := pngme.Encode("photo.png", "ruSt", "meet at noon", nil)
func Encode(path, chunkType, message string, opts *EncodeOptions) error {
	typ, err := png.ParseChunkType(chunkType)
	if err != nil {
		return err
	}
	c, err := png.NewChunk(typ, []byte(message))
	if err != nil {
		return err
	}
	return appendChunk(path, c, opts)
}

// Remove deletes the first chunk of type chunkType and returns it.
//
// Example:
//
//	removed, err := pngme.Remove("photo.png", "ruSt", nil)
func Remove(path, chunkType string, opts *OperationOptions) (*png.Chunk, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	removed, err := p.RemoveByType(chunkType)
	if err != nil {
		return nil, fmt.Errorf("failed to remove chunk from %s: %w", path, err)
	}
	if err := save(path, p, opts); err != nil {
		return nil, err
	}
	return removed, nil
}

// AddText stores a keyword/text pair as tEXt, zTXt or iTXt depending on opts.
//
// Example:
//
//	err := pngme.AddText("photo.png", "Author", "someone", nil)
func AddText(path, keyword, text string, opts *TextOptions) error {
	if opts == nil {
		opts = &TextOptions{}
	}
	var (
		c   *png.Chunk
		err error
	)
	switch {
	case opts.International:
		c, err = png.NewInternationalTextChunk(keyword, opts.Language, opts.TranslatedKeyword, text, opts.Compress)
	case opts.Compress:
		c, err = png.NewCompressedTextChunk(keyword, text)
	default:
		c, err = png.NewTextChunk(keyword, text)
	}
	if err != nil {
		return err
	}
	return appendChunk(path, c, &opts.OperationOptions)
}

func appendChunk(path string, c *png.Chunk, opts *OperationOptions) error {
	p, err := Open(path)
	if err != nil {
		return err
	}
	if err := p.Append(c); err != nil {
		return fmt.Errorf("failed to insert %s chunk into %s: %w", c.Type(), path, err)
	}
	return save(path, p, opts)
}
