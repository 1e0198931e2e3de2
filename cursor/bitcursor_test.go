package cursor

import (
	"bytes"
	"testing"
)

func TestBitFetchByteAligned(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	bc := NewBit(buf)
	got, err := bc.Fetch(16)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	byteCursor := NewByte(buf)
	want, _ := byteCursor.Fetch(2)
	if !bytes.Equal(got, want) {
		t.Fatalf("bit-aligned fetch = %x, want %x", got, want)
	}
}

func TestBitFetchUnaligned(t *testing.T) {
	// 0b10110010 0b01101101
	buf := []byte{0xB2, 0x6D}
	bc := NewBit(buf)
	if err := bc.Advance(4); err != nil { // skip 1011
		t.Fatalf("advance: %v", err)
	}
	got, err := bc.Fetch(4) // next nibble: 0010
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0] != 0x02 {
		t.Fatalf("got = %x, want 02", got)
	}
}

func TestBitFetchPartialByteRightAligned(t *testing.T) {
	// first 3 bits of 0b11100000 are 111 -> 0x07 at the low end of the output byte
	buf := []byte{0xE0}
	bc := NewBit(buf)
	got, err := bc.Fetch(3)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0] != 0x07 {
		t.Fatalf("got = %#x, want 0x07", got[0])
	}
}

func TestBitFetchEOF(t *testing.T) {
	bc := NewBit([]byte{0x00})
	if _, err := bc.Fetch(9); err != ErrUnexpectedEOF {
		t.Fatalf("err = %v, want ErrUnexpectedEOF", err)
	}
}

func TestBitULEB128(t *testing.T) {
	bc := NewBit([]byte{0xE5, 0x8E, 0x26})
	got, err := bc.ULEB128()
	if err != nil {
		t.Fatalf("uleb128: %v", err)
	}
	if got != 624485 {
		t.Fatalf("got = %d, want 624485", got)
	}
}
