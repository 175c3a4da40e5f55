package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestCheckSignature(t *testing.T) {
	if err := CheckSignature(Signature[:]); err != nil {
		t.Fatalf("CheckSignature: %v", err)
	}
	if err := CheckSignature(Signature[:7]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short signature err = %v, want ErrTruncated", err)
	}
	bad := Signature
	bad[1] = 'p'
	if err := CheckSignature(bad[:]); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("bad signature err = %v, want ErrSignatureMismatch", err)
	}
}

func TestNextChunk(t *testing.T) {
	data := []byte("hello")
	b := PutChunk(nil, TypeTEXT, data, ChunkCRC(TypeTEXT, data))
	b = PutChunk(b, TypeIEND, nil, ChunkCRC(TypeIEND, nil))

	h, next, err := NextChunk(b, 0)
	if err != nil {
		t.Fatalf("NextChunk: %v", err)
	}
	if h.Length != 5 || h.Type != TypeTEXT {
		t.Fatalf("unexpected header: %+v", h)
	}
	if next != ChunkOverhead+5 {
		t.Fatalf("next offset = %d, want %d", next, ChunkOverhead+5)
	}

	h, next, err = NextChunk(b, next)
	if err != nil {
		t.Fatalf("NextChunk(IEND): %v", err)
	}
	if h.Length != 0 || h.Type != TypeIEND || next != len(b) {
		t.Fatalf("unexpected IEND header %+v next=%d len=%d", h, next, len(b))
	}
}

func TestNextChunkErrors(t *testing.T) {
	b := PutChunk(nil, TypeTEXT, []byte("abc"), 0)

	if _, _, err := NextChunk(b[:7], 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short header err = %v, want ErrTruncated", err)
	}
	if _, _, err := NextChunk(b[:len(b)-1], 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short crc err = %v, want ErrTruncated", err)
	}

	overrun := append([]byte(nil), b...)
	binary.BigEndian.PutUint32(overrun, 0xFFFFFFFF)
	if _, _, err := NextChunk(overrun, 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("overrun err = %v, want ErrTruncated", err)
	}
}
