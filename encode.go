package abi

import (
	"fmt"
	"math/big"

	"github.com/go-abi/ethabi/wire"
)

// twoTo256 is the modulus two's-complement arithmetic reduces negative
// integers by before they're rendered into a 32-byte word.
var twoTo256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Encode parses schema (a type string, or an already-parsed Type) and
// encodes value under it. It is a convenience wrapper around ParseSchema
// and EncodeType for callers that don't need to reuse a parsed Type.
func Encode(schema any, value any) ([]byte, error) {
	t, err := resolveSchema(schema)
	if err != nil {
		return nil, err
	}
	return EncodeType(t, value)
}

// EncodeType encodes value under the already-resolved type t.
func EncodeType(t Type, value any) ([]byte, error) {
	return encodeValue(t, value, nil)
}

func resolveSchema(schema any) (Type, error) {
	switch s := schema.(type) {
	case Type:
		return s, nil
	case string:
		return ParseSchema(s)
	default:
		return Type{}, &EncodeError{Kind: TypeMismatch, Detail: fmt.Sprintf("schema must be a string or Type, got %T", schema)}
	}
}

// encodeValue renders v under t as a self-contained byte string: for a
// dynamic t this already includes its own length prefix, so the result
// needs no further wrapping when t is encoded at the top level. A caller
// assembling a head/tail block wraps a dynamic component's result behind
// an offset word itself (see encodeSequence).
func encodeValue(t Type, v any, path Path) ([]byte, error) {
	switch t.kind {
	case Address:
		a, err := coerceAddress(v, path)
		if err != nil {
			return nil, err
		}
		return integerWord(new(big.Int).SetBytes(a[:])), nil
	case Bool:
		b, err := coerceBool(v, path)
		if err != nil {
			return nil, err
		}
		n := int64(0)
		if b {
			n = 1
		}
		return integerWord(big.NewInt(n)), nil
	case Integer:
		n, err := coerceInteger(t, v, path)
		if err != nil {
			return nil, err
		}
		return integerWord(n), nil
	case Fixed:
		n, err := coerceFixed(t, v, path)
		if err != nil {
			return nil, err
		}
		return integerWord(n), nil
	case Bytes:
		b, err := coerceByteSlice(v, path)
		if err != nil {
			return nil, err
		}
		if len(b) != t.size {
			return nil, (&EncodeError{Kind: LengthMismatch, Detail: fmt.Sprintf("bytes%d value has length %d", t.size, len(b))}).at(path)
		}
		word := make([]byte, wordSize)
		copy(word, b)
		return word, nil
	case String:
		s, err := coerceString(v, path)
		if err != nil {
			return nil, err
		}
		return encodeDynamicBytes([]byte(s)), nil
	case DynamicBytes:
		b, err := coerceByteSlice(v, path)
		if err != nil {
			return nil, err
		}
		return encodeDynamicBytes(b), nil
	case Array:
		seq, err := coerceSequence(v, path)
		if err != nil {
			return nil, err
		}
		if len(seq) != t.size {
			return nil, (&EncodeError{Kind: LengthMismatch, Detail: fmt.Sprintf("array%d expects %d elements, got %d", t.size, t.size, len(seq))}).at(path)
		}
		return encodeSequence("array", repeatType(*t.elem, len(seq)), seq, path)
	case DynamicArray:
		seq, err := coerceSequence(v, path)
		if err != nil {
			return nil, err
		}
		body, err := encodeSequence("array", repeatType(*t.elem, len(seq)), seq, path)
		if err != nil {
			return nil, err
		}
		e := &wire.Encoder{}
		e.Word(integerWord(big.NewInt(int64(len(seq)))))
		e.Out = append(e.Out, body...)
		return e.Out, nil
	case Tuple:
		seq, err := coerceSequence(v, path)
		if err != nil {
			return nil, err
		}
		if len(seq) != len(t.components) {
			return nil, (&EncodeError{Kind: LengthMismatch, Detail: fmt.Sprintf("tuple expects %d elements, got %d", len(t.components), len(seq))}).at(path)
		}
		return encodeSequence("tuple", t.components, seq, path)
	default:
		return nil, (&EncodeError{Kind: TypeMismatch, Detail: "unknown type kind"}).at(path)
	}
}

func encodeDynamicBytes(b []byte) []byte {
	e := &wire.Encoder{}
	e.Word(integerWord(big.NewInt(int64(len(b)))))
	e.RightPadded(b)
	return e.Out
}

// integerWord renders an already-range-checked integer as a 32-byte
// two's-complement big-endian word. Negative values are reduced mod 2^256
// first, matching how every signed Integer and Fixed value is carried on
// the wire.
func integerWord(n *big.Int) []byte {
	word := make([]byte, wordSize)
	if n.Sign() >= 0 {
		n.FillBytes(word)
		return word
	}
	tc := new(big.Int).Add(twoTo256, n)
	tc.FillBytes(word)
	return word
}

// encodeSequence implements the ABI head/tail algorithm shared by tuples,
// fixed-length arrays, and a dynamic array's element body: each static
// component contributes its own bytes to the head; each dynamic component
// contributes a 32-byte offset to the head and its self-contained encoding
// to the tail, with the offset measured from the start of this block. When
// every component is static the tail is empty and the result is their
// plain concatenation.
func encodeSequence(componentKind string, types []Type, values []any, path Path) ([]byte, error) {
	n := len(types)
	heads := make([][]byte, n)
	tails := make([][]byte, n)
	isDyn := make([]bool, n)
	for i, ct := range types {
		childPath := path.child(componentKind, i)
		payload, err := encodeValue(ct, values[i], childPath)
		if err != nil {
			return nil, err
		}
		if ct.IsDynamic() {
			isDyn[i] = true
			tails[i] = payload
		} else {
			heads[i] = payload
		}
	}
	headLen := 0
	for i := range types {
		if isDyn[i] {
			headLen += wordSize
		} else {
			headLen += len(heads[i])
		}
	}
	e := &wire.Encoder{}
	offsetPos := make([]int, n)
	for i := range types {
		if isDyn[i] {
			offsetPos[i] = e.Reserve()
		} else {
			e.Out = append(e.Out, heads[i]...)
		}
	}
	running := 0
	for i := range types {
		if isDyn[i] {
			e.PatchWord(offsetPos[i], integerWord(big.NewInt(int64(headLen+running))))
			e.Out = append(e.Out, tails[i]...)
			running += len(tails[i])
		}
	}
	return e.Out, nil
}
