package pngme

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"

	"github.com/joshuapare/pngkit/png"
	"github.com/joshuapare/pngkit/pkg/types"
)

// Decode returns the text stored in the first chunk of type chunkType.
//
// Example:
//
//	msg, err := pngme.Decode("photo.png", "ruSt")
func Decode(path, chunkType string) (string, error) {
	if _, err := png.ParseChunkType(chunkType); err != nil {
		return "", err
	}
	p, err := Open(path)
	if err != nil {
		return "", err
	}
	c := p.ChunkByType(chunkType)
	if c == nil {
		return "", types.New(types.ErrKindNotFound, fmt.Sprintf("no %s chunk in %s", chunkType, path), nil)
	}
	return c.Text()
}

// List returns a summary of every chunk in file order.
func List(path string) ([]ChunkSummary, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	return p.Summaries(), nil
}

// ListText decodes every tEXt, zTXt and iTXt chunk in file order.
func ListText(path string) ([]TextEntry, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	return p.TextEntries()
}

// Stats reports size, content digest and chunk counts for the file at path.
func Stats(path string) (*FileInfo, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := png.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	sum := blake3.Sum256(data)
	info := &FileInfo{
		Path:      path,
		Size:      int64(len(data)),
		HumanSize: humanize.Bytes(uint64(len(data))),
		BLAKE3:    hex.EncodeToString(sum[:]),
		Chunks:    p.Len(),
	}
	chunks := p.Chunks()
	for _, c := range chunks {
		t := c.Type()
		if t.IsCritical() {
			info.CriticalChunks++
		}
		if !t.IsPublic() {
			info.PrivateChunks++
		}
		info.DataBytes += uint64(c.Length())
	}
	if n := len(chunks); n > 0 {
		info.FirstType = chunks[0].Type().String()
		info.LastType = chunks[n-1].Type().String()
	}
	return info, nil
}

// Validate parses the file and checks that every chunk type code is valid.
// All invalid codes are reported together.
func Validate(path string) error {
	p, err := Open(path)
	if err != nil {
		return err
	}
	var errs []error
	for i, c := range p.Chunks() {
		if !c.Type().IsValid() {
			errs = append(errs, types.New(types.ErrKindTypeCode,
				fmt.Sprintf("chunk %d has invalid type code %s", i, c.Type()), nil))
		}
	}
	return errors.Join(errs...)
}
