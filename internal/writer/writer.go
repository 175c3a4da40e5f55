// Package writer exposes sinks for serialized PNG bytes.
package writer

// Sink receives a complete serialized PNG file.
type Sink interface {
	WritePNG(buf []byte) error
}

var (
	_ Sink = (*FileWriter)(nil)
	_ Sink = (*MemWriter)(nil)
)
