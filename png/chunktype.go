package png

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/joshuapare/pngkit/internal/format"
	"github.com/joshuapare/pngkit/pkg/types"
)

// ChunkType is a four-byte chunk type code. Bit 5 of each byte (the ASCII
// lowercase bit) encodes one property of the chunk.
//
// ChunkTypeFromBytes accepts any bytes and is used for codes read from framed
// records. ParseChunkType only accepts letters and is used for user input.
// A ChunkType holding non-letters is still a usable value; it reports
// IsValid() == false.
type ChunkType [format.ChunkTypeSize]byte

// ChunkTypeFromBytes wraps raw type-code bytes without validating them.
func ChunkTypeFromBytes(b [format.ChunkTypeSize]byte) ChunkType {
	return ChunkType(b)
}

// ParseChunkType converts a four-letter string such as "IHDR" or "ruSt" into
// a ChunkType. Anything other than exactly four ASCII letters is rejected.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != format.ChunkTypeSize {
		return ChunkType{}, types.New(types.ErrKindTypeCode,
			fmt.Sprintf("chunk type %q must be %d bytes, got %d", s, format.ChunkTypeSize, len(s)), nil)
	}
	var t ChunkType
	for i := 0; i < format.ChunkTypeSize; i++ {
		if !isASCIILetter(s[i]) {
			return ChunkType{}, types.New(types.ErrKindTypeCode,
				fmt.Sprintf("chunk type %q has non-letter byte 0x%02x at position %d", s, s[i], i), nil)
		}
		t[i] = s[i]
	}
	return t, nil
}

// MustParseChunkType is like ParseChunkType but panics on error. It is meant
// for package-level constants.
func MustParseChunkType(s string) ChunkType {
	t, err := ParseChunkType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Well-known chunk types.
var (
	TypeIHDR  = ChunkType(format.TypeIHDR)
	TypeIEND  = ChunkType(format.TypeIEND)
	TypeText  = ChunkType(format.TypeTEXT)
	TypeZText = ChunkType(format.TypeZTXT)
	TypeIText = ChunkType(format.TypeITXT)
)

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Bytes returns the raw type-code bytes.
func (t ChunkType) Bytes() [format.ChunkTypeSize]byte { return t }

// IsValid reports whether all four bytes are ASCII letters and the reserved
// bit is valid.
func (t ChunkType) IsValid() bool {
	for _, c := range t {
		if !isASCIILetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether readers must understand the chunk (byte 0 uppercase).
func (t ChunkType) IsCritical() bool { return t[0]&format.TypePropertyBit == 0 }

// IsPublic reports whether the chunk is part of the public standard (byte 1 uppercase).
func (t ChunkType) IsPublic() bool { return t[1]&format.TypePropertyBit == 0 }

// IsReservedBitValid reports whether byte 2 is uppercase, as required by the
// current PNG version.
func (t ChunkType) IsReservedBitValid() bool { return t[2]&format.TypePropertyBit == 0 }

// IsSafeToCopy reports whether editors unaware of the chunk may copy it
// unchanged (byte 3 lowercase).
func (t ChunkType) IsSafeToCopy() bool { return t[3]&format.TypePropertyBit != 0 }

// Text returns the type code as a string, failing when the bytes are not UTF-8.
func (t ChunkType) Text() (string, error) {
	if !utf8.Valid(t[:]) {
		return "", types.New(types.ErrKindEncoding,
			fmt.Sprintf("chunk type % x is not valid UTF-8", t[:]), nil)
	}
	return string(t[:]), nil
}

// String implements fmt.Stringer. Codes that are not printable are rendered
// quoted with escapes so they never corrupt terminal output.
func (t ChunkType) String() string {
	s, err := t.Text()
	if err == nil && strconv.CanBackquote(s) {
		return s
	}
	return strconv.Quote(string(t[:]))
}
