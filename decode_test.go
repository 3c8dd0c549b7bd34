package abi

import (
	"math/big"
	"testing"
)

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		raw    []byte
		want   any
	}{
		{"uint256/42", "uint256", word(42), big.NewInt(42)},
		{"uint8/16", "uint8", word(16), big.NewInt(16)},
		{"bool/true", "bool", word(1), true},
		{"bytes4", "bytes4", bytesWord(0x12, 0x32, 0x34, 0x58), []byte{0x12, 0x32, 0x34, 0x58}},
		{"string", "string", concat(word(12), rightPadded([]byte("Hello World!"))), "Hello World!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.schema, tc.raw, true)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tc.schema, err)
			}
			switch w := tc.want.(type) {
			case *big.Int:
				g, ok := got.(*big.Int)
				if !ok || g.Cmp(w) != 0 {
					t.Fatalf("got %#v, want %#v", got, w)
				}
			case []byte:
				g, ok := got.([]byte)
				if !ok || string(g) != string(w) {
					t.Fatalf("got %#v, want %#v", got, w)
				}
			default:
				if got != tc.want {
					t.Fatalf("got %#v, want %#v", got, tc.want)
				}
			}
		})
	}
}

func TestDecodeStrictRejectsNonCanonicalPadding(t *testing.T) {
	// uint8 word with a nonzero byte in the padding region: not sign
	// extension, must be rejected in strict mode.
	raw := word(0x01, 0x10) // two trailing bytes set, but type is uint8 (1 native byte)
	if _, err := Decode("uint8", raw, true); err == nil {
		t.Fatal("strict decode should reject non-canonical integer padding")
	}
	// Lenient mode ignores the stray padding byte.
	if _, err := Decode("uint8", raw, false); err != nil {
		t.Fatalf("lenient decode should ignore padding: %v", err)
	}
}

func TestDecodeStrictRejectsNonZeroBoolPadding(t *testing.T) {
	raw := word(0x01, 0x01) // low byte 1 is valid, but a stray 1 above it isn't
	if _, err := Decode("bool", raw, true); err == nil {
		t.Fatal("strict decode should reject non-canonical bool padding")
	}
	got, err := Decode("bool", raw, false)
	if err != nil {
		t.Fatalf("lenient decode failed: %v", err)
	}
	if got != true {
		t.Fatalf("lenient decode of nonzero word should be true, got %v", got)
	}
}

func TestDecodeStrictRejectsInvalidBoolByte(t *testing.T) {
	raw := word(2)
	if _, err := Decode("bool", raw, true); err == nil {
		t.Fatal("strict decode should reject a bool low byte that isn't 0 or 1")
	}
}

func TestDecodeInsufficientData(t *testing.T) {
	if _, err := Decode("uint256", []byte{1, 2, 3}, true); err == nil {
		t.Fatal("decode should fail on a buffer shorter than one word")
	}
}

func TestDecodeInvalidOffset(t *testing.T) {
	// (uint256,string) whose offset word (0) points inside the head region.
	raw := concat(word(7), word(0), word(2), rightPadded([]byte("hi")))
	if _, err := Decode("(uint256,string)", raw, true); err == nil {
		t.Fatal("decode should reject an offset that lands inside the head region")
	}
}

func TestDecodeRejectsHugeDeclaredLength(t *testing.T) {
	// A string length word claiming far more bytes than remain.
	huge := word(0xff, 0xff, 0xff, 0xff)
	raw := concat(huge, make([]byte, 32))
	if _, err := Decode("string", raw, true); err == nil {
		t.Fatal("decode should reject a declared length exceeding the remaining buffer")
	}
}
