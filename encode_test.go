package abi

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// word returns a 32-byte big-endian word with tail right-aligned and
// everything to its left zero.
func word(tail ...byte) []byte {
	w := make([]byte, wordSize)
	copy(w[wordSize-len(tail):], tail)
	return w
}

// rightPadded appends zero bytes up to the next 32-byte boundary.
func rightPadded(b []byte) []byte {
	out := append([]byte{}, b...)
	if rem := len(out) % wordSize; rem != 0 {
		out = append(out, make([]byte, wordSize-rem)...)
	}
	return out
}

// bytesWord returns the 32-byte word a bytes(m) value encodes to: b placed
// at the start, zero-padded on the right (the opposite alignment from an
// integer word).
func bytesWord(b ...byte) []byte {
	w := make([]byte, wordSize)
	copy(w, b)
	return w
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		value  any
		want   []byte
	}{
		{"uint256/42", "uint256", big.NewInt(42), word(42)},
		{"uint8/16", "uint8", big.NewInt(16), word(16)},
		{"bool/true", "bool", true, word(1)},
		{"bool/false", "bool", false, word(0)},
		{"bytes4", "bytes4", []byte{0x12, 0x32, 0x34, 0x58}, bytesWord(0x12, 0x32, 0x34, 0x58)},
		{"string", "string", "Hello World!",
			concat(word(12), rightPadded([]byte("Hello World!")))},
		{"tuple-of-static-array", "(uint256[2])", []any{[]any{big.NewInt(3), big.NewInt(3)}},
			concat(word(3), word(3))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.schema, tc.value)
			if err != nil {
				t.Fatalf("Encode(%q, %#v) failed: %v", tc.schema, tc.value, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("Encode(%q, %#v):\n  got:  % x\n  want: % x", tc.schema, tc.value, got, tc.want)
			}
		})
	}
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestEncodeNegativeInteger(t *testing.T) {
	got, err := Encode("int8", big.NewInt(-1))
	if err != nil {
		t.Fatal(err)
	}
	want := bytes.Repeat([]byte{0xff}, 32)
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode(int8, -1):\n  got:  % x\n  want: % x", got, want)
	}
}

func TestEncodeDynamicArray(t *testing.T) {
	got, err := Encode("uint256[]", []any{big.NewInt(1), big.NewInt(2), big.NewInt(3)})
	if err != nil {
		t.Fatal(err)
	}
	want := concat(word(3), word(1), word(2), word(3))
	if !bytes.Equal(got, want) {
		t.Fatalf("got:\n% x\nwant:\n% x", got, want)
	}
}

func TestEncodeTupleWithDynamicField(t *testing.T) {
	// (uint256,string) with (7, "hi") — one static head word, one offset
	// word, followed by the string's own length+payload tail.
	got, err := Encode("(uint256,string)", []any{big.NewInt(7), "hi"})
	if err != nil {
		t.Fatal(err)
	}
	want := concat(
		word(7),
		word(64), // offset to the string's tail, right after the two head words
		word(2),
		rightPadded([]byte("hi")),
	)
	if !bytes.Equal(got, want) {
		t.Fatalf("got:\n% x\nwant:\n% x", got, want)
	}
}

func TestEncodeInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		value  any
	}{
		{"out of range uint8", "uint8", big.NewInt(256)},
		{"bool for integer", "uint256", true},
		{"wrong bytes length", "bytes4", []byte{1, 2, 3}},
		{"non utf8 string", "string", string([]byte{0xff, 0xfe})},
		{"wrong array length", "uint256[2]", []any{big.NewInt(1)}},
		{"wrong tuple arity", "(uint256,bool)", []any{big.NewInt(1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Encode(tc.schema, tc.value); err == nil {
				t.Fatalf("Encode(%q, %#v) succeeded, want error", tc.schema, tc.value)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	schemas := []struct {
		schema string
		value  any
	}{
		{"uint256", big.NewInt(123456789)},
		{"int256", big.NewInt(-123456789)},
		{"address", Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{"string", "round trip"},
		{"bytes", []byte("round trip bytes")},
		{"uint256[]", []any{big.NewInt(1), big.NewInt(2), big.NewInt(3)}},
		{"(uint256,string)", []any{big.NewInt(9), "nested"}},
		{"(uint256,string)[]", []any{
			[]any{big.NewInt(1), "a"},
			[]any{big.NewInt(2), "bb"},
		}},
	}

	for _, tc := range schemas {
		t.Run(tc.schema, func(t *testing.T) {
			raw, err := Encode(tc.schema, tc.value)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			got, err := Decode(tc.schema, raw, true)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if diff := cmp.Diff(got, tc.value, cmp.Comparer(bigIntEqual), cmp.Comparer(bytesEqual)); diff != "" {
				t.Fatalf("round trip mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func bigIntEqual(a, b *big.Int) bool { return a.Cmp(b) == 0 }
func bytesEqual(a, b []byte) bool    { return bytes.Equal(a, b) }
