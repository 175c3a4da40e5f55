package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/pngkit/internal/buf"
)

// ChunkHeader is the fixed eight-byte prefix of a chunk record.
type ChunkHeader struct {
	Length uint32
	Type   [ChunkTypeSize]byte
}

// HasSignature is a fast, zero-alloc check for the PNG signature.
func HasSignature(b []byte) bool {
	return len(b) >= SignatureSize && bytes.Equal(b[:SignatureSize], Signature[:])
}

// CheckSignature validates the leading PNG signature of b.
func CheckSignature(b []byte) error {
	if len(b) < SignatureSize {
		return fmt.Errorf("signature: %w", ErrTruncated)
	}
	if !HasSignature(b) {
		return fmt.Errorf("signature: %w", ErrSignatureMismatch)
	}
	return nil
}

// ReadChunkHeader decodes the length and type fields of the chunk starting at off.
func ReadChunkHeader(b []byte, off int) (ChunkHeader, error) {
	head, ok := buf.Slice(b, off, ChunkHeaderSize)
	if !ok {
		return ChunkHeader{}, fmt.Errorf("chunk header at %d: %w", off, ErrTruncated)
	}
	var h ChunkHeader
	h.Length = buf.U32BE(head[ChunkLengthOffset:])
	copy(h.Type[:], head[ChunkTypeOffset:ChunkTypeOffset+ChunkTypeSize])
	return h, nil
}

// NextChunk validates that the whole chunk record starting at off fits in b
// and returns its header along with the offset just past its CRC field.
func NextChunk(b []byte, off int) (ChunkHeader, int, error) {
	h, err := ReadChunkHeader(b, off)
	if err != nil {
		return ChunkHeader{}, 0, err
	}
	dataEnd, ok := buf.FrameEnd(len(b), off+ChunkDataOffset, h.Length)
	if !ok {
		return ChunkHeader{}, 0, fmt.Errorf(
			"chunk at %d declares %d data bytes: %w", off, h.Length, ErrTruncated)
	}
	next, ok := buf.FrameEnd(len(b), dataEnd, ChunkCRCSize)
	if !ok {
		return ChunkHeader{}, 0, fmt.Errorf("chunk at %d crc field: %w", off, ErrTruncated)
	}
	return h, next, nil
}

// PutChunk appends the wire form of a chunk to dst.
func PutChunk(dst []byte, typ [ChunkTypeSize]byte, data []byte, crc uint32) []byte {
	dst = buf.AppendU32BE(dst, uint32(len(data)))
	dst = append(dst, typ[:]...)
	dst = append(dst, data...)
	return buf.AppendU32BE(dst, crc)
}
