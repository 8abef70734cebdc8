package format

import "testing"

func TestLeReaders(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	if v, err := Le8(b, 0); err != nil || v != 0x01 {
		t.Fatalf("Le8 = %v, %v", v, err)
	}
	if v, err := Le16(b, 0); err != nil || v != 0x0201 {
		t.Fatalf("Le16 = %#x, %v", v, err)
	}
	if v, err := Le32(b, 0); err != nil || v != 0x04030201 {
		t.Fatalf("Le32 = %#x, %v", v, err)
	}
	if v, err := Le64(b, 0); err != nil || v != 0x0807060504030201 {
		t.Fatalf("Le64 = %#x, %v", v, err)
	}
}

func TestShortReads(t *testing.T) {
	b := []byte{0x01, 0x02}
	if _, err := Le32(b, 0); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
	if _, err := Le16(b, 1); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
	if _, err := Slice(b, -1, 1); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead for negative offset")
	}
}

func TestSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	s, err := Slice(b, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 3 || s[0] != 2 || s[2] != 4 {
		t.Fatalf("unexpected slice: %v", s)
	}
}
