// Package format houses the low-level layout of the PNG container: the file
// signature, chunk field offsets, the chunk CRC, and raw header decoding. It
// knows nothing about chunk semantics so higher-level packages can build the
// typed API on top of it.
package format

import "math"

// Signature is the eight-byte magic every PNG file starts with.
//
//	0x00  0x89 'P' 'N' 'G' '\r' '\n' 0x1A '\n'
var Signature = [SignatureSize]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

const (
	// SignatureSize is the length of the PNG file signature.
	SignatureSize = 8

	// Chunk layout (big-endian):
	//
	//	Offset  Size  Field
	//	0x00    4     Data length L
	//	0x04    4     Type code
	//	0x08    L     Data
	//	0x08+L  4     CRC-32 of type ++ data
	ChunkLengthOffset = 0x00
	ChunkLengthSize   = 4
	ChunkTypeOffset   = 0x04
	ChunkTypeSize     = 4
	ChunkDataOffset   = 0x08
	ChunkCRCSize      = 4

	// ChunkHeaderSize covers the length and type fields.
	ChunkHeaderSize = ChunkLengthSize + ChunkTypeSize

	// ChunkOverhead is the number of framing bytes around the data of every chunk.
	ChunkOverhead = ChunkHeaderSize + ChunkCRCSize

	// MaxChunkLength is the largest data length the 32-bit length field can carry.
	MaxChunkLength = math.MaxUint32

	// TypePropertyBit is bit 5 of each type-code byte. Clear means uppercase.
	//   byte 0: clear = critical
	//   byte 1: clear = public
	//   byte 2: clear = reserved bit valid
	//   byte 3: set   = safe to copy
	TypePropertyBit = 0x20
)

// Well-known chunk type codes.
var (
	TypeIHDR = [ChunkTypeSize]byte{'I', 'H', 'D', 'R'}
	TypeIEND = [ChunkTypeSize]byte{'I', 'E', 'N', 'D'}
	TypeTEXT = [ChunkTypeSize]byte{'t', 'E', 'X', 't'}
	TypeZTXT = [ChunkTypeSize]byte{'z', 'T', 'X', 't'}
	TypeITXT = [ChunkTypeSize]byte{'i', 'T', 'X', 't'}
)
