// Package png provides chunk-level access to PNG files.
//
// # Overview
//
// A PNG file is an eight-byte signature followed by an ordered list of
// chunks. This package parses that container into typed, CRC-checked values,
// lets callers look up, insert and remove chunks by type, and serializes the
// result back to a byte-identical stream. Pixel data is never decoded.
//
// # File Structure
//
//	[Signature - 8 bytes] [Chunk 0] [Chunk 1] ... [Chunk N]
//
// Each chunk is laid out big-endian as:
//
//	[Length - 4] [Type - 4] [Data - Length] [CRC-32 of Type++Data - 4]
//
// # Key Types
//
//   - ChunkType: the four-letter type code whose letter case carries property bits
//   - Chunk: one record with its checksum
//   - PNG: the signature plus the ordered chunk list
//
// # Parsing and Editing
//
//	p, err := png.Parse(data)
//	if err != nil {
//	    return err
//	}
//	typ, _ := png.ParseChunkType("ruSt")
//	c, _ := png.NewChunk(typ, []byte("hidden message"))
//	if err := p.Append(c); err != nil { // lands just before IEND
//	    return err
//	}
//	out := p.Bytes()
//
// # Errors
//
// Every failure is a *types.Error whose kind can be tested with errors.Is
// against the sentinels in pkg/types (ErrCRCMismatch, ErrTruncated, ...).
// A structural problem anywhere in the buffer fails the whole parse; no
// chunk is ever skipped.
//
// # Concurrency
//
// Parsing and serialization are pure functions of their input. A *PNG is not
// safe for concurrent mutation; callers sharing one must synchronize.
package png
