package png

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/pngkit/internal/buf"
	"github.com/joshuapare/pngkit/internal/format"
	"github.com/joshuapare/pngkit/pkg/types"
)

// Chunk is one length-prefixed, CRC-checked record of a PNG file.
//
// A *Chunk always carries a CRC that matches its type and data: NewChunk
// computes it, and ParseChunk refuses records whose stored CRC disagrees.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// NewChunk builds a chunk from a type and a copy of data, computing the
// length and CRC. It fails with ErrDataTooLarge when data does not fit the
// 32-bit length field.
func NewChunk(t ChunkType, data []byte) (*Chunk, error) {
	if err := checkDataLength(uint64(len(data))); err != nil {
		return nil, err
	}
	owned := bytes.Clone(data)
	if owned == nil {
		owned = []byte{}
	}
	return &Chunk{
		length: uint32(len(owned)),
		typ:    t,
		data:   owned,
		crc:    format.ChunkCRC(t, owned),
	}, nil
}

func checkDataLength(n uint64) error {
	if n > format.MaxChunkLength {
		return types.New(types.ErrKindTooLarge,
			fmt.Sprintf("chunk data is %d bytes, limit is %d", n, uint64(format.MaxChunkLength)), nil)
	}
	return nil
}

// ParseChunk decodes exactly one chunk record from b. The buffer must hold
// the whole record and nothing else: fewer than 12+L bytes is ErrTruncated,
// more is ErrTrailingGarbage. A stored CRC that does not match the type and
// data is ErrCRCMismatch.
func ParseChunk(b []byte) (*Chunk, error) {
	c, n, err := readChunk(b, 0)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, types.New(types.ErrKindTrailingGarbage,
			fmt.Sprintf("chunk %s declares %d data bytes but record has %d extra bytes",
				c.typ, c.length, len(b)-n), nil)
	}
	return c, nil
}

// readChunk decodes the chunk starting at off and returns the offset just past it.
func readChunk(b []byte, off int) (*Chunk, int, error) {
	h, next, err := format.NextChunk(b, off)
	if err != nil {
		return nil, 0, truncated(err)
	}
	t := ChunkTypeFromBytes(h.Type)
	dataStart := off + format.ChunkDataOffset
	dataEnd := next - format.ChunkCRCSize
	data := bytes.Clone(b[dataStart:dataEnd])
	if data == nil {
		data = []byte{}
	}

	stored := buf.U32BE(b[dataEnd:next])
	computed := format.ChunkCRC(h.Type, data)
	if stored != computed {
		return nil, 0, types.New(types.ErrKindCRC,
			fmt.Sprintf("chunk %s at offset %d: stored crc %d, computed %d", t, off, stored, computed), nil)
	}
	return &Chunk{length: h.Length, typ: t, data: data, crc: stored}, next, nil
}

func truncated(err error) error {
	if errors.Is(err, format.ErrTruncated) {
		return types.New(types.ErrKindTruncated, "truncated chunk", err)
	}
	return err
}

// Length returns the number of data bytes.
func (c *Chunk) Length() uint32 { return c.length }

// Type returns the chunk type code.
func (c *Chunk) Type() ChunkType { return c.typ }

// Data returns the chunk payload. The slice is owned by the chunk and must
// not be modified.
func (c *Chunk) Data() []byte { return c.data }

// CRC returns the CRC-32 of the type code followed by the data.
func (c *Chunk) CRC() uint32 { return c.crc }

// Text interprets the data as UTF-8 text.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", types.New(types.ErrKindEncoding,
			fmt.Sprintf("chunk %s data is not valid UTF-8", c.typ), nil)
	}
	return string(c.data), nil
}

// Bytes returns the wire form: length ++ type ++ data ++ crc.
func (c *Chunk) Bytes() []byte {
	return c.AppendBytes(make([]byte, 0, c.size()))
}

// AppendBytes appends the wire form of the chunk to dst.
func (c *Chunk) AppendBytes(dst []byte) []byte {
	return format.PutChunk(dst, c.typ, c.data, c.crc)
}

func (c *Chunk) size() int { return format.ChunkOverhead + len(c.data) }

// Summary describes the chunk without its payload. Index is left at zero;
// container-level listings fill it in.
func (c *Chunk) Summary() types.ChunkSummary {
	return types.ChunkSummary{
		Type:       c.typ.String(),
		Length:     c.length,
		CRC:        c.crc,
		Critical:   c.typ.IsCritical(),
		Public:     c.typ.IsPublic(),
		SafeToCopy: c.typ.IsSafeToCopy(),
	}
}

// Equal reports whether two chunks have the same type and data.
func (c *Chunk) Equal(o *Chunk) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.typ == o.typ && c.crc == o.crc && bytes.Equal(c.data, o.data)
}

func (c *Chunk) String() string {
	var sb strings.Builder
	sb.WriteString("Chunk {\n")
	fmt.Fprintf(&sb, "  Length: %d\n", c.length)
	fmt.Fprintf(&sb, "  Type: %s\n", c.typ)
	fmt.Fprintf(&sb, "  Data: %d bytes\n", len(c.data))
	fmt.Fprintf(&sb, "  Crc: %d\n", c.crc)
	sb.WriteString("}\n")
	return sb.String()
}
