package png

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pngkit/pkg/types"
)

func chunkFromStrings(t *testing.T, typ, data string) *Chunk {
	t.Helper()
	c, err := NewChunk(MustParseChunkType(typ), []byte(data))
	require.NoError(t, err)
	return c
}

func testingChunks(t *testing.T) []*Chunk {
	t.Helper()
	return []*Chunk{
		chunkFromStrings(t, "FrSt", "I am the first chunk"),
		chunkFromStrings(t, "miDl", "I am another chunk"),
		chunkFromStrings(t, "LASt", "I am the last chunk"),
	}
}

func testingPNG(t *testing.T) *PNG {
	t.Helper()
	return FromChunks(testingChunks(t))
}

func chunkTypes(p *PNG) []string {
	out := make([]string, 0, p.Len())
	for _, c := range p.Chunks() {
		out = append(out, c.Type().String())
	}
	return out
}

func TestFromChunks(t *testing.T) {
	p := testingPNG(t)
	require.Equal(t, 3, p.Len())
	require.Equal(t, StandardHeader, p.Header())
}

func TestParseValid(t *testing.T) {
	b := StandardHeader[:]
	for _, c := range testingChunks(t) {
		b = c.AppendBytes(append([]byte(nil), b...))
	}
	p, err := Parse(b)
	require.NoError(t, err)
	require.Equal(t, []string{"FrSt", "miDl", "LASt"}, chunkTypes(p))
}

func TestParseHeaderOnly(t *testing.T) {
	p, err := Parse(StandardHeader[:])
	require.NoError(t, err)
	require.Equal(t, 0, p.Len())
	require.Empty(t, p.Chunks())
}

func TestParseTooShort(t *testing.T) {
	_, err := Parse(StandardHeader[:7])
	require.ErrorIs(t, err, types.ErrTooShort)

	_, err = Parse(nil)
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestParseInvalidSignature(t *testing.T) {
	b := append([]byte{13, 80, 78, 71, 13, 10, 26, 10}, testingPNG(t).Bytes()[8:]...)
	_, err := Parse(b)
	require.ErrorIs(t, err, types.ErrInvalidSignature)
}

func TestParseTrailingGarbage(t *testing.T) {
	good := testingPNG(t).Bytes()

	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "short fragment", buf: append(append([]byte(nil), good...), 1, 2, 3, 4, 5)},
		{name: "header without crc", buf: append(append([]byte(nil), good...), 0, 0, 0, 0, 'I', 'E', 'N', 'D')},
		{name: "overrunning length", buf: append(append([]byte(nil), good...),
			0, 0, 1, 0, 'R', 'u', 'S', 't', 'a', 'b', 'c', 'd')},
		{name: "truncated last chunk", buf: good[:len(good)-1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.buf)
			require.ErrorIs(t, err, types.ErrTrailingGarbage)
		})
	}
}

func TestParseCorruptChunkFailsWhole(t *testing.T) {
	b := testingPNG(t).Bytes()
	// Flip one data bit of the middle chunk; its CRC no longer matches.
	first := testingChunks(t)[0]
	off := 8 + len(first.Bytes()) + 8
	b[off] ^= 0x01

	_, err := Parse(b)
	require.ErrorIs(t, err, types.ErrCRCMismatch)
}

func TestParseDeclaredLengthMismatch(t *testing.T) {
	b := append([]byte(nil), StandardHeader[:]...)
	chunk := rawChunk(44, "RuSt", []byte(secretMessage), 2882656334)
	b = append(b, chunk...)
	_, err := Parse(b)
	require.ErrorIs(t, err, types.ErrTrailingGarbage)
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestAppendInsertsBeforeLast(t *testing.T) {
	p := testingPNG(t)
	last := p.Chunks()[p.Len()-1]

	require.NoError(t, p.Append(chunkFromStrings(t, "TeSt", "Message")))
	require.Equal(t, []string{"FrSt", "miDl", "TeSt", "LASt"}, chunkTypes(p))
	require.Same(t, last, p.Chunks()[p.Len()-1])

	require.NoError(t, p.Append(chunkFromStrings(t, "TeSu", "Another")))
	require.Equal(t, []string{"FrSt", "miDl", "TeSt", "TeSu", "LASt"}, chunkTypes(p))
	require.Same(t, last, p.Chunks()[p.Len()-1])
}

func TestAppendSingleChunk(t *testing.T) {
	end, err := NewChunk(TypeIEND, nil)
	require.NoError(t, err)
	p := FromChunks([]*Chunk{end})
	require.NoError(t, p.Append(chunkFromStrings(t, "ruSt", "x")))
	require.Equal(t, []string{"ruSt", "IEND"}, chunkTypes(p))
}

func TestAppendEmpty(t *testing.T) {
	p := FromChunks(nil)
	err := p.Append(chunkFromStrings(t, "TeSt", "Message"))
	require.ErrorIs(t, err, types.ErrNoInsertionPoint)
	require.Equal(t, 0, p.Len())
}

func TestChunkByType(t *testing.T) {
	p := testingPNG(t)
	c := p.ChunkByType("FrSt")
	require.NotNil(t, c)
	text, err := c.Text()
	require.NoError(t, err)
	require.Equal(t, "I am the first chunk", text)

	require.Nil(t, p.ChunkByType("NoPe"))
	require.Nil(t, p.ChunkByType("Ru1t"))
}

func TestRemoveByType(t *testing.T) {
	p := testingPNG(t)
	require.NoError(t, p.Append(chunkFromStrings(t, "TeSt", "Message")))

	removed, err := p.RemoveByType("TeSt")
	require.NoError(t, err)
	require.Equal(t, "TeSt", removed.Type().String())
	require.Nil(t, p.ChunkByType("TeSt"))
	require.Equal(t, []string{"FrSt", "miDl", "LASt"}, chunkTypes(p))
}

func TestRemoveByTypeFirstMatchOnly(t *testing.T) {
	p := FromChunks([]*Chunk{
		chunkFromStrings(t, "duPe", "one"),
		chunkFromStrings(t, "miDl", "mid"),
		chunkFromStrings(t, "duPe", "two"),
		chunkFromStrings(t, "IEND", ""),
	})
	removed, err := p.RemoveByType("duPe")
	require.NoError(t, err)
	require.Equal(t, []byte("one"), removed.Data())
	require.Equal(t, []string{"miDl", "duPe", "IEND"}, chunkTypes(p))
}

func TestRemoveByTypeErrors(t *testing.T) {
	p := testingPNG(t)

	_, err := p.RemoveByType("NoPe")
	require.ErrorIs(t, err, types.ErrNotFound)

	_, err = p.RemoveByType("Ru1t")
	require.ErrorIs(t, err, types.ErrNotFound)
	require.ErrorIs(t, err, types.ErrInvalidTypeCode)

	require.Equal(t, 3, p.Len())
}

func TestAppendRemoveInverse(t *testing.T) {
	p := testingPNG(t)
	orig := FromChunks(p.Chunks())

	require.NoError(t, p.Append(chunkFromStrings(t, "uNiq", "unique")))
	_, err := p.RemoveByType("uNiq")
	require.NoError(t, err)
	require.True(t, orig.Equal(p))
}

func TestChunksReturnsCopy(t *testing.T) {
	p := testingPNG(t)
	view := p.Chunks()
	view[0], view[2] = view[2], view[0]
	require.Equal(t, []string{"FrSt", "miDl", "LASt"}, chunkTypes(p))
}

func TestPNGRoundTrip(t *testing.T) {
	p := testingPNG(t)
	b := p.Bytes()

	parsed, err := Parse(b)
	require.NoError(t, err)
	require.True(t, p.Equal(parsed))
	require.Equal(t, b, parsed.Bytes())
}

func TestPNGBytesLayout(t *testing.T) {
	p := testingPNG(t)
	var want []byte
	want = append(want, 137, 80, 78, 71, 13, 10, 26, 10)
	for _, c := range testingChunks(t) {
		want = append(want, c.Bytes()...)
	}
	require.Equal(t, want, p.Bytes())
}

func TestSummaries(t *testing.T) {
	p := testingPNG(t)
	s := p.Summaries()
	require.Len(t, s, 3)
	require.Equal(t, 1, s[1].Index)
	require.Equal(t, "miDl", s[1].Type)
	require.Equal(t, uint32(len("I am another chunk")), s[1].Length)
	require.False(t, s[1].Critical)
	require.Contains(t, p.String(), "LASt")
}

func TestParseMinimalFile(t *testing.T) {
	// Signature, a 13-byte IHDR for a 1x1 greyscale image and IEND.
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 1)
	binary.BigEndian.PutUint32(ihdr[4:], 1)
	ihdr[8] = 8
	head, err := NewChunk(TypeIHDR, ihdr)
	require.NoError(t, err)
	end, err := NewChunk(TypeIEND, nil)
	require.NoError(t, err)

	b := FromChunks([]*Chunk{head, end}).Bytes()
	p, err := Parse(b)
	require.NoError(t, err)
	require.Equal(t, []string{"IHDR", "IEND"}, chunkTypes(p))
	require.True(t, p.Chunks()[0].Type().IsCritical())
}
