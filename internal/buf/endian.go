// Package buf contains helpers for bounds-checked, endian-safe decoding routines.
package buf

import "encoding/binary"

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// AppendU32BE appends v to dst in big-endian order.
func AppendU32BE(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}
