package writer

// MemWriter captures PNG bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WritePNG stores a copy of buf.
func (w *MemWriter) WritePNG(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
