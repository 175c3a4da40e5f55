package format

import "hash/crc32"

// ChunkCRC returns the CRC-32/ISO-HDLC checksum PNG stores after each chunk,
// computed over the type code followed by the data. crc32.IEEETable is built
// once by the standard library and never written afterwards, so concurrent
// callers need no synchronization.
func ChunkCRC(typ [ChunkTypeSize]byte, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, typ[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}
