package wire

import (
	"errors"
	"math/big"
)

// ErrInsufficientData is returned when a read would run past the end of
// the buffer.
var ErrInsufficientData = errors.New("wire: insufficient data")

// ErrInvalidOffset is returned when a length or offset word doesn't fit in
// a native int, or falls outside the buffer it addresses.
var ErrInvalidOffset = errors.New("wire: invalid offset")

// Decoder reads ABI-encoded bytes from a fixed buffer. Unlike a streaming
// reader, every read is addressed by an explicit byte offset: dynamic
// components are reached by jumping to an offset recorded in a head, not by
// continuing to read in sequence.
type Decoder struct {
	Buf []byte
}

// NewDecoder wraps buf for offset-addressed reads. It does not copy buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{Buf: buf}
}

// Len returns the length of the underlying buffer.
func (d *Decoder) Len() int { return len(d.Buf) }

// Word returns the 32 bytes at offset.
func (d *Decoder) Word(offset int) ([]byte, error) {
	if offset < 0 || offset+WordSize > len(d.Buf) {
		return nil, ErrInsufficientData
	}
	return d.Buf[offset : offset+WordSize], nil
}

// Slice returns length bytes at offset.
func (d *Decoder) Slice(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(d.Buf) {
		return nil, ErrInsufficientData
	}
	return d.Buf[offset : offset+length], nil
}

// LengthAt reads the word at offset as an unsigned length or offset value.
// It bounds the result by the size of the remaining buffer, so a hostile
// declared length of up to 2^256-1 fails immediately with ErrInvalidOffset
// instead of being used to size an allocation.
func (d *Decoder) LengthAt(offset int) (int, error) {
	word, err := d.Word(offset)
	if err != nil {
		return 0, err
	}
	n := new(big.Int).SetBytes(word)
	if !n.IsInt64() {
		return 0, ErrInvalidOffset
	}
	v := n.Int64()
	if v < 0 || v > int64(len(d.Buf)) {
		return 0, ErrInvalidOffset
	}
	return int(v), nil
}
