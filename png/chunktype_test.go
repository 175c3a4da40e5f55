package png

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pngkit/pkg/types"
)

func TestChunkTypeFromBytes(t *testing.T) {
	expected := [4]byte{82, 117, 83, 116}
	actual := ChunkTypeFromBytes(expected)
	require.Equal(t, expected, actual.Bytes())
}

func TestParseChunkType(t *testing.T) {
	expected := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	actual, err := ParseChunkType("RuSt")
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestParseChunkTypeRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "digit", input: "Ru1t"},
		{name: "too short", input: "Rus"},
		{name: "too long", input: "RuStt"},
		{name: "empty", input: ""},
		{name: "space", input: "Ru t"},
		{name: "multibyte", input: "Ruß"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseChunkType(tt.input)
			require.ErrorIs(t, err, types.ErrInvalidTypeCode)
		})
	}
}

func TestChunkTypeProperties(t *testing.T) {
	rust := MustParseChunkType("RuSt")
	require.True(t, rust.IsCritical())
	require.False(t, rust.IsPublic())
	require.True(t, rust.IsReservedBitValid())
	require.True(t, rust.IsSafeToCopy())

	ru := MustParseChunkType("ruSt")
	require.False(t, ru.IsCritical())

	rU := MustParseChunkType("RUSt")
	require.True(t, rU.IsPublic())

	rs := MustParseChunkType("Rust")
	require.False(t, rs.IsReservedBitValid())

	rT := MustParseChunkType("RuST")
	require.False(t, rT.IsSafeToCopy())
}

func TestChunkTypeIsValid(t *testing.T) {
	require.True(t, MustParseChunkType("RuSt").IsValid())
	require.False(t, MustParseChunkType("Rust").IsValid(), "reserved bit set")

	weak := ChunkTypeFromBytes([4]byte{'R', 'u', '1', 't'})
	require.False(t, weak.IsValid(), "digit accepted by the raw constructor but not valid")
}

func TestChunkTypeText(t *testing.T) {
	s, err := MustParseChunkType("RuSt").Text()
	require.NoError(t, err)
	require.Equal(t, "RuSt", s)
	require.Equal(t, "RuSt", MustParseChunkType("RuSt").String())

	raw := ChunkTypeFromBytes([4]byte{0xFF, 'a', 'b', 'c'})
	_, err = raw.Text()
	require.ErrorIs(t, err, types.ErrInvalidEncoding)
	require.Equal(t, `"\xffabc"`, raw.String())
}

func TestChunkTypeEquality(t *testing.T) {
	a := MustParseChunkType("RuSt")
	b := ChunkTypeFromBytes([4]byte{'R', 'u', 'S', 't'})
	require.True(t, a == b)
	require.False(t, a == MustParseChunkType("ruSt"))
}

func TestMustParseChunkTypePanics(t *testing.T) {
	require.Panics(t, func() { MustParseChunkType("1234") })
}
