package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// FrameEnd returns off+size when a record of size bytes starting at off fits
// in a buffer of bufLen bytes. Size comes straight from an on-disk length
// field, so it is taken as uint32 and widened before any arithmetic.
func FrameEnd(bufLen, off int, size uint32) (int, bool) {
	if off < 0 || off > bufLen {
		return 0, false
	}
	if uint64(size) > uint64(math.MaxInt) {
		return 0, false
	}
	end, ok := AddOverflowSafe(off, int(size))
	if !ok || end > bufLen {
		return 0, false
	}
	return end, true
}
