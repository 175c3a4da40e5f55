package png

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/pngkit/internal/format"
	"github.com/joshuapare/pngkit/pkg/types"
)

// StandardHeader is the PNG file signature.
var StandardHeader = format.Signature

// PNG is the chunk container of a PNG file: the standard signature followed
// by an ordered list of chunks. Order is preserved exactly as parsed or as
// produced by the caller's edits.
type PNG struct {
	header [format.SignatureSize]byte
	chunks []*Chunk
}

// FromChunks wraps chunks, in order, with the standard signature. It does not
// check chunk semantics such as IHDR coming first or IEND last.
func FromChunks(chunks []*Chunk) *PNG {
	return &PNG{
		header: format.Signature,
		chunks: slices.Clone(chunks),
	}
}

// Parse decodes a complete PNG byte stream. It fails with ErrTooShort below
// eight bytes and ErrInvalidSignature when the signature is wrong. Chunks are
// then decoded one after another until the cursor lands exactly on the end
// of b; a fragment that cannot hold a whole chunk, or a declared length that
// runs past the end, is ErrTrailingGarbage. Any chunk failing its CRC fails
// the whole parse.
func Parse(b []byte) (*PNG, error) {
	if err := format.CheckSignature(b); err != nil {
		if errors.Is(err, format.ErrTruncated) {
			return nil, types.New(types.ErrKindTruncated,
				fmt.Sprintf("buffer is %d bytes, shorter than the PNG signature", len(b)), err)
		}
		return nil, types.New(types.ErrKindSignature, "not a PNG file", err)
	}

	p := &PNG{header: format.Signature}
	off := format.SignatureSize
	for off < len(b) {
		c, next, err := readChunk(b, off)
		if err != nil {
			if kind, ok := types.KindOf(err); ok && kind == types.ErrKindTruncated {
				return nil, types.New(types.ErrKindTrailingGarbage,
					fmt.Sprintf("%d bytes at offset %d do not form a complete chunk", len(b)-off, off), err)
			}
			return nil, fmt.Errorf("chunk %d: %w", len(p.chunks), err)
		}
		p.chunks = append(p.chunks, c)
		off = next
	}
	return p, nil
}

// Header returns the eight-byte file signature.
func (p *PNG) Header() [format.SignatureSize]byte { return p.header }

// Chunks returns the chunks in file order. The returned slice is a copy;
// reordering it does not affect p.
func (p *PNG) Chunks() []*Chunk { return slices.Clone(p.chunks) }

// Len returns the number of chunks.
func (p *PNG) Len() int { return len(p.chunks) }

// Append inserts c immediately before the last chunk.
//
// Precondition: p holds at least one chunk, and the last one is the stream
// terminator (IEND in a well-formed file). Append keeps that terminator last.
// With no chunks there is no insertion point and ErrNoInsertionPoint is
// returned.
func (p *PNG) Append(c *Chunk) error {
	if c == nil {
		return types.New(types.ErrKindState, "append nil chunk", nil)
	}
	if len(p.chunks) == 0 {
		return types.New(types.ErrKindState,
			fmt.Sprintf("append %s: container has no terminal chunk to insert before", c.typ), nil)
	}
	p.chunks = slices.Insert(p.chunks, len(p.chunks)-1, c)
	return nil
}

// RemoveByType removes and returns the first chunk whose type is typ.
// The relative order of the remaining chunks is kept. It fails with
// ErrNotFound when no chunk matches, or when typ is not a valid type string;
// in the latter case the ErrInvalidTypeCode cause is wrapped.
func (p *PNG) RemoveByType(typ string) (*Chunk, error) {
	t, err := ParseChunkType(typ)
	if err != nil {
		return nil, types.New(types.ErrKindNotFound, fmt.Sprintf("remove %q", typ), err)
	}
	i := p.indexOf(t)
	if i < 0 {
		return nil, types.New(types.ErrKindNotFound, fmt.Sprintf("no %s chunk", t), nil)
	}
	c := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return c, nil
}

// ChunkByType returns the first chunk whose type is typ, or nil when there is
// none or typ is not a valid type string.
func (p *PNG) ChunkByType(typ string) *Chunk {
	t, err := ParseChunkType(typ)
	if err != nil {
		return nil
	}
	if i := p.indexOf(t); i >= 0 {
		return p.chunks[i]
	}
	return nil
}

func (p *PNG) indexOf(t ChunkType) int {
	return slices.IndexFunc(p.chunks, func(c *Chunk) bool { return c.typ == t })
}

// Bytes returns the signature followed by every chunk's wire form, in order.
func (p *PNG) Bytes() []byte {
	size := format.SignatureSize
	for _, c := range p.chunks {
		size += c.size()
	}
	out := make([]byte, 0, size)
	out = append(out, p.header[:]...)
	for _, c := range p.chunks {
		out = c.AppendBytes(out)
	}
	return out
}

// Summaries lists every chunk's type and length in file order.
func (p *PNG) Summaries() []types.ChunkSummary {
	out := make([]types.ChunkSummary, len(p.chunks))
	for i, c := range p.chunks {
		out[i] = c.Summary()
		out[i].Index = i
	}
	return out
}

// Equal reports whether two containers hold equal chunks in the same order.
func (p *PNG) Equal(o *PNG) bool {
	if p.header != o.header || len(p.chunks) != len(o.chunks) {
		return false
	}
	for i := range p.chunks {
		if !p.chunks[i].Equal(o.chunks[i]) {
			return false
		}
	}
	return true
}

func (p *PNG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PNG (%d chunks)\n", len(p.chunks))
	for i, c := range p.chunks {
		fmt.Fprintf(&sb, "  %3d  %s  %d bytes\n", i, c.typ, c.length)
	}
	return sb.String()
}
