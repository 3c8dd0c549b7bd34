package wire

import (
	"bytes"
	"testing"
)

func TestEncoderReserveAndPatch(t *testing.T) {
	e := &Encoder{}
	e.Word(bytes.Repeat([]byte{0xaa}, WordSize))
	off := e.Reserve()
	e.Word(bytes.Repeat([]byte{0xbb}, WordSize))
	e.PatchWord(off, bytes.Repeat([]byte{0xcc}, WordSize))

	want := append(append(
		bytes.Repeat([]byte{0xaa}, WordSize),
		bytes.Repeat([]byte{0xcc}, WordSize)...),
		bytes.Repeat([]byte{0xbb}, WordSize)...)
	if !bytes.Equal(e.Out, want) {
		t.Fatalf("got % x, want % x", e.Out, want)
	}
}

func TestEncoderRightPadded(t *testing.T) {
	e := &Encoder{}
	e.RightPadded([]byte("hi"))
	if len(e.Out) != WordSize {
		t.Fatalf("expected one padded word, got %d bytes", len(e.Out))
	}
	if !bytes.HasPrefix(e.Out, []byte("hi")) {
		t.Fatalf("expected payload at the start, got % x", e.Out)
	}
}

func TestPaddedLen(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0},
		{1, WordSize},
		{WordSize, WordSize},
		{WordSize + 1, 2 * WordSize},
	}
	for _, tc := range tests {
		if got := PaddedLen(tc.n); got != tc.want {
			t.Fatalf("PaddedLen(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestDecoderWordAndSlice(t *testing.T) {
	buf := append(bytes.Repeat([]byte{1}, WordSize), []byte("trailing")...)
	d := NewDecoder(buf)
	w, err := d.Word(0)
	if err != nil || !bytes.Equal(w, bytes.Repeat([]byte{1}, WordSize)) {
		t.Fatalf("Word(0) = %x, %v", w, err)
	}
	s, err := d.Slice(WordSize, len("trailing"))
	if err != nil || string(s) != "trailing" {
		t.Fatalf("Slice = %q, %v", s, err)
	}
	if _, err := d.Word(d.Len()); err == nil {
		t.Fatal("Word past the end of the buffer should fail")
	}
}

func TestDecoderLengthAtBoundsHostileLength(t *testing.T) {
	huge := bytes.Repeat([]byte{0xff}, WordSize)
	d := NewDecoder(huge)
	if _, err := d.LengthAt(0); err != ErrInvalidOffset {
		t.Fatalf("expected ErrInvalidOffset for a length far exceeding the buffer, got %v", err)
	}
}
