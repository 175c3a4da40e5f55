package png

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/pngkit/pkg/types"
)

// Textual chunk layouts:
//
//	tEXt  keyword 0x00 text(Latin-1)
//	zTXt  keyword 0x00 method(1) zlib(text Latin-1)
//	iTXt  keyword 0x00 flag(1) method(1) language 0x00 translated 0x00 text(UTF-8, zlib when flag=1)
const (
	maxKeywordLen      = 79
	compressionDeflate = 0

	// maxInflatedText bounds decompression of zTXt/iTXt payloads.
	maxInflatedText = 64 << 20
)

// NewTextChunk builds a tEXt chunk. Keyword and text must be representable
// in Latin-1.
func NewTextChunk(keyword, text string) (*Chunk, error) {
	kw, err := encodeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	body, err := toLatin1(text)
	if err != nil {
		return nil, err
	}
	data := append(append(kw, 0), body...)
	return NewChunk(TypeText, data)
}

// NewCompressedTextChunk builds a zTXt chunk holding zlib-compressed Latin-1 text.
func NewCompressedTextChunk(keyword, text string) (*Chunk, error) {
	kw, err := encodeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	body, err := toLatin1(text)
	if err != nil {
		return nil, err
	}
	packed, err := deflate(body)
	if err != nil {
		return nil, err
	}
	data := append(append(kw, 0, compressionDeflate), packed...)
	return NewChunk(TypeZText, data)
}

// NewInternationalTextChunk builds an iTXt chunk carrying UTF-8 text with an
// optional language tag and translated keyword.
func NewInternationalTextChunk(keyword, language, translated, text string, compress bool) (*Chunk, error) {
	kw, err := encodeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	if !utf8.ValidString(translated) || !utf8.ValidString(text) {
		return nil, types.New(types.ErrKindEncoding, "iTXt text must be valid UTF-8", nil)
	}
	body := []byte(text)
	flag := byte(0)
	if compress {
		if body, err = deflate(body); err != nil {
			return nil, err
		}
		flag = 1
	}
	data := append(kw, 0, flag, compressionDeflate)
	data = append(append(data, language...), 0)
	data = append(append(data, translated...), 0)
	data = append(data, body...)
	return NewChunk(TypeIText, data)
}

// DecodeText decodes a tEXt, zTXt or iTXt chunk.
func DecodeText(c *Chunk) (types.TextEntry, error) {
	entry := types.TextEntry{Type: c.typ.String()}
	if !IsTextType(c.typ) {
		return entry, textErr(c, "not a text chunk")
	}
	kw, rest, ok := bytes.Cut(c.data, []byte{0})
	if !ok {
		return entry, textErr(c, "missing keyword separator")
	}
	entry.Keyword = fromLatin1(kw)

	switch c.typ {
	case TypeText:
		entry.Text = fromLatin1(rest)
	case TypeZText:
		if len(rest) < 1 || rest[0] != compressionDeflate {
			return entry, textErr(c, "unknown compression method")
		}
		plain, err := inflate(rest[1:])
		if err != nil {
			return entry, textErr(c, err.Error())
		}
		entry.Text = fromLatin1(plain)
		entry.Compressed = true
	case TypeIText:
		if len(rest) < 2 {
			return entry, textErr(c, "missing compression fields")
		}
		flag, method := rest[0], rest[1]
		lang, tail, ok := bytes.Cut(rest[2:], []byte{0})
		if !ok {
			return entry, textErr(c, "missing language separator")
		}
		translated, body, ok := bytes.Cut(tail, []byte{0})
		if !ok {
			return entry, textErr(c, "missing translated keyword separator")
		}
		if flag == 1 {
			if method != compressionDeflate {
				return entry, textErr(c, "unknown compression method")
			}
			plain, err := inflate(body)
			if err != nil {
				return entry, textErr(c, err.Error())
			}
			body = plain
			entry.Compressed = true
		}
		if !utf8.Valid(body) || !utf8.Valid(translated) {
			return entry, textErr(c, "text is not valid UTF-8")
		}
		entry.Language = string(lang)
		entry.TranslatedKeyword = string(translated)
		entry.Text = string(body)
	}
	return entry, nil
}

// IsTextType reports whether t is one of the textual chunk types.
func IsTextType(t ChunkType) bool {
	return t == TypeText || t == TypeZText || t == TypeIText
}

// TextEntries decodes every textual chunk in file order.
func (p *PNG) TextEntries() ([]types.TextEntry, error) {
	var out []types.TextEntry
	for i, c := range p.chunks {
		if !IsTextType(c.typ) {
			continue
		}
		e, err := DecodeText(c)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func textErr(c *Chunk, msg string) error {
	return types.New(types.ErrKindEncoding, fmt.Sprintf("%s chunk: %s", c.typ, msg), nil)
}

func encodeKeyword(keyword string) ([]byte, error) {
	kw, err := toLatin1(keyword)
	if err != nil {
		return nil, err
	}
	if len(kw) == 0 || len(kw) > maxKeywordLen || bytes.IndexByte(kw, 0) >= 0 {
		return nil, types.New(types.ErrKindEncoding,
			fmt.Sprintf("keyword %q must be 1-%d Latin-1 characters without NUL", keyword, maxKeywordLen), nil)
	}
	return kw, nil
}

func toLatin1(s string) ([]byte, error) {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, types.New(types.ErrKindEncoding, fmt.Sprintf("%q is not representable in Latin-1", s), err)
	}
	return b, nil
}

func fromLatin1(b []byte) string {
	// Every byte is a valid ISO 8859-1 code point; decoding cannot fail.
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(s)
}

func deflate(b []byte) ([]byte, error) {
	var out bytes.Buffer
	w := zlib.NewWriter(&out)
	if _, err := w.Write(b); err != nil {
		return nil, fmt.Errorf("zlib write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib close: %w", err)
	}
	return out.Bytes(), nil
}

func inflate(b []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer r.Close()
	plain, err := io.ReadAll(io.LimitReader(r, maxInflatedText+1))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	if len(plain) > maxInflatedText {
		return nil, fmt.Errorf("inflated text exceeds %d bytes", maxInflatedText)
	}
	return plain, nil
}
