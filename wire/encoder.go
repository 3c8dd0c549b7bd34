// Package wire provides the low-level 32-byte-word primitives the ABI
// codec builds on: writing and reading fixed words, right-padding variable
// payloads to a word boundary, and reserving offset words to patch later,
// which the codec's head/tail layout for dynamic containers (tuples with a
// dynamic field, and dynamic array bodies) is built from.
//
// It plays the same role for this codec that fragments.Encoder/Decoder
// play for a DBus codec: a small stateful helper that inserts or consumes
// padding so that callers never have to compute alignment themselves.
// Unlike a DBus message, ABI data has no implicit stream order for dynamic
// values — tails are addressed by offset, not positioned inline — so
// Encoder/Decoder here expose an offset-addressed API rather than a
// streaming one.
package wire

// WordSize is the ABI's atomic unit: every static value and every length
// or offset occupies exactly one 32-byte word.
const WordSize = 32

// Encoder accumulates ABI-encoded bytes.
type Encoder struct {
	Out []byte
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return len(e.Out) }

// Word appends a 32-byte word verbatim. It panics if word is not exactly
// WordSize bytes, since every caller is expected to have already padded it.
func (e *Encoder) Word(word []byte) {
	if len(word) != WordSize {
		panic("wire: word must be exactly WordSize bytes")
	}
	e.Out = append(e.Out, word...)
}

// Reserve appends a zero word and returns its byte offset within Out, so
// that the caller can come back and fill in the real value (typically a
// dynamic component's offset) once it is known.
func (e *Encoder) Reserve() int {
	off := len(e.Out)
	e.Out = append(e.Out, make([]byte, WordSize)...)
	return off
}

// PatchWord overwrites the word at offset (previously returned by Reserve)
// with word.
func (e *Encoder) PatchWord(offset int, word []byte) {
	if len(word) != WordSize {
		panic("wire: word must be exactly WordSize bytes")
	}
	copy(e.Out[offset:offset+WordSize], word)
}

// RightPadded appends b followed by zero bytes up to the next WordSize
// boundary, as bytes(m)'s tail, and string/dynamicBytes payloads require.
func (e *Encoder) RightPadded(b []byte) {
	e.Out = append(e.Out, b...)
	if pad := PaddedLen(len(b)) - len(b); pad > 0 {
		e.Out = append(e.Out, make([]byte, pad)...)
	}
}

// PaddedLen rounds n up to the next multiple of WordSize.
func PaddedLen(n int) int {
	if rem := n % WordSize; rem != 0 {
		return n + (WordSize - rem)
	}
	return n
}
