package abi

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/go-abi/ethabi/wire"
)

// Decode parses schema and decodes data under it. strict selects the
// padding and canonicalization rules (see DecodeType).
func Decode(schema any, data []byte, strict bool) (any, error) {
	t, err := resolveSchema(schema)
	if err != nil {
		return nil, err
	}
	return DecodeType(t, data, strict)
}

// DecodeType decodes data under the already-resolved type t.
//
// In strict mode, every padding region must be canonical: bytes(m) tail
// padding and string/dynamicBytes payload padding must be zero, an
// integer's sign-extension bytes must match its sign, and a bool word must
// be all-zero or exactly 1 in its low byte. In lenient mode, padding bytes
// are ignored and any nonzero bool word decodes true.
func DecodeType(t Type, data []byte, strict bool) (any, error) {
	d := &decodeCtx{strict: strict}
	return d.decodeValue(t, data, nil)
}

type decodeCtx struct {
	strict bool
}

// decodeValue decodes t from buf, which starts at t's own encoding. A static
// component of a sequence is handed exactly its static width; otherwise buf
// extends to the end of the overall input, and for a dynamic t the trailing
// bytes beyond what t needs belong to sibling tails elsewhere in the same
// block and are simply not consumed here.
func (d *decodeCtx) decodeValue(t Type, buf []byte, path Path) (any, error) {
	wd := wire.NewDecoder(buf)
	switch t.kind {
	case Address:
		word, err := d.wordAt(wd, 0, path)
		if err != nil {
			return nil, err
		}
		pad, tail := word[:12], word[12:]
		if d.strict {
			for _, b := range pad {
				if b != 0 {
					return nil, (&DecodeError{Kind: NonCanonicalPadding, Detail: "address padding bytes must be zero"}).at(path)
				}
			}
		}
		var a Address
		copy(a[:], tail)
		return a, nil
	case Bool:
		word, err := d.wordAt(wd, 0, path)
		if err != nil {
			return nil, err
		}
		return d.decodeBool(word, path)
	case Integer:
		word, err := d.wordAt(wd, 0, path)
		if err != nil {
			return nil, err
		}
		return d.decodeInteger(word, t.signed, t.bits, path)
	case Fixed:
		word, err := d.wordAt(wd, 0, path)
		if err != nil {
			return nil, err
		}
		n, err := d.decodeInteger(word, t.signed, t.bits, path)
		if err != nil {
			return nil, err
		}
		return decimal.NewFromBigInt(n, -int32(t.precision)), nil
	case Bytes:
		word, err := d.wordAt(wd, 0, path)
		if err != nil {
			return nil, err
		}
		b := make([]byte, t.size)
		copy(b, word[:t.size])
		if d.strict {
			for _, pb := range word[t.size:] {
				if pb != 0 {
					return nil, (&DecodeError{Kind: NonCanonicalPadding, Detail: fmt.Sprintf("bytes%d tail padding must be zero", t.size)}).at(path)
				}
			}
		}
		return b, nil
	case String:
		raw, err := d.decodeLengthPrefixed(wd, path)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			return nil, (&DecodeError{Kind: DecodeInvalidUtf8, Detail: "string payload is not valid utf-8"}).at(path)
		}
		return string(raw), nil
	case DynamicBytes:
		raw, err := d.decodeLengthPrefixed(wd, path)
		if err != nil {
			return nil, err
		}
		return raw, nil
	case Array:
		values, err := d.decodeSequence("array", repeatType(*t.elem, t.size), buf, path)
		if err != nil {
			return nil, err
		}
		return values, nil
	case DynamicArray:
		n, body, err := d.readArrayLength(wd, buf, path)
		if err != nil {
			return nil, err
		}
		return d.decodeSequence("array", repeatType(*t.elem, n), body, path)
	case Tuple:
		return d.decodeSequence("tuple", t.components, buf, path)
	default:
		return nil, (&DecodeError{Kind: InsufficientData, Detail: "unknown type kind"}).at(path)
	}
}

// decodeSequence reads the head/tail block for types from buf, the dual of
// encodeSequence: static components are read in place, dynamic components
// are reached via an offset word that must land at or past the head region
// (H) and within buf.
func (d *decodeCtx) decodeSequence(componentKind string, types []Type, buf []byte, path Path) ([]any, error) {
	wd := wire.NewDecoder(buf)
	n := len(types)
	headLen := 0
	for _, ct := range types {
		if ct.IsDynamic() {
			headLen += wordSize
		} else {
			headLen += ct.StaticSize()
		}
	}
	if wd.Len() < headLen {
		return nil, (&DecodeError{Kind: InsufficientData, Detail: fmt.Sprintf("%s head needs %d bytes, have %d", componentKind, headLen, wd.Len())}).at(path)
	}
	values := make([]any, n)
	pos := 0
	for i, ct := range types {
		childPath := path.child(componentKind, i)
		if ct.IsDynamic() {
			off, err := d.lengthAt(wd, pos, childPath)
			if err != nil {
				return nil, err
			}
			if off < headLen || off >= wd.Len() {
				return nil, (&DecodeError{Kind: InvalidOffset, Detail: fmt.Sprintf("offset %d out of range [%d,%d)", off, headLen, wd.Len())}).at(childPath)
			}
			v, err := d.decodeValue(ct, buf[off:], childPath)
			if err != nil {
				return nil, err
			}
			values[i] = v
			pos += wordSize
		} else {
			w := ct.StaticSize()
			sub, err := d.sliceAt(wd, pos, w, childPath)
			if err != nil {
				return nil, err
			}
			v, err := d.decodeValue(ct, sub, childPath)
			if err != nil {
				return nil, err
			}
			values[i] = v
			pos += w
		}
	}
	return values, nil
}

// wordAt returns the 32-byte word at offset in wd, translating the wire
// package's sentinel error into a path-carrying DecodeError.
func (d *decodeCtx) wordAt(wd *wire.Decoder, offset int, path Path) ([]byte, error) {
	word, err := wd.Word(offset)
	if err != nil {
		return nil, (&DecodeError{Kind: InsufficientData, Detail: "insufficient data for a word"}).at(path)
	}
	return word, nil
}

// sliceAt returns length bytes at offset in wd, translating the wire
// package's sentinel error into a path-carrying DecodeError.
func (d *decodeCtx) sliceAt(wd *wire.Decoder, offset, length int, path Path) ([]byte, error) {
	s, err := wd.Slice(offset, length)
	if err != nil {
		return nil, (&DecodeError{Kind: InsufficientData, Detail: "insufficient data"}).at(path)
	}
	return s, nil
}

// lengthAt reads the word at offset in wd as a length or offset value,
// bounded by wd.Len() so a hostile declared value fails fast instead of
// being used to size an allocation or address memory outside the buffer.
func (d *decodeCtx) lengthAt(wd *wire.Decoder, offset int, path Path) (int, error) {
	n, err := wd.LengthAt(offset)
	if err != nil {
		return 0, (&DecodeError{Kind: InvalidOffset, Detail: "length or offset does not fit in a native size, or exceeds the buffer"}).at(path)
	}
	return n, nil
}

// decodeLengthPrefixed reads a length word followed by that many raw
// bytes, right-padded to a word boundary, as String and DynamicBytes share.
func (d *decodeCtx) decodeLengthPrefixed(wd *wire.Decoder, path Path) ([]byte, error) {
	n, err := d.lengthAt(wd, 0, path)
	if err != nil {
		return nil, err
	}
	payload, err := d.sliceAt(wd, wordSize, n, path)
	if err != nil {
		return nil, (&DecodeError{Kind: InsufficientData, Detail: fmt.Sprintf("declared length %d exceeds remaining buffer", n)}).at(path)
	}
	if padLen := wire.PaddedLen(n) - n; padLen > 0 {
		pad, err := d.sliceAt(wd, wordSize+n, padLen, path)
		if err != nil {
			return nil, (&DecodeError{Kind: InsufficientData, Detail: "missing payload padding"}).at(path)
		}
		if d.strict {
			for _, b := range pad {
				if b != 0 {
					return nil, (&DecodeError{Kind: NonCanonicalPadding, Detail: "dynamic payload padding must be zero"}).at(path)
				}
			}
		}
	}
	out := make([]byte, n)
	copy(out, payload)
	return out, nil
}

// readArrayLength reads a DynamicArray's length word and returns the
// element body (everything after the length word, still extending to the
// end of the overall input).
func (d *decodeCtx) readArrayLength(wd *wire.Decoder, buf []byte, path Path) (int, []byte, error) {
	n, err := d.lengthAt(wd, 0, path)
	if err != nil {
		return 0, nil, err
	}
	body := buf[wordSize:]
	// Every element occupies at least one head word, so a declared length
	// whose heads alone couldn't fit in the remaining buffer is rejected
	// immediately rather than used to size a slice.
	if n > len(body)/wordSize {
		return 0, nil, (&DecodeError{Kind: InvalidOffset, Detail: fmt.Sprintf("array length %d exceeds remaining buffer capacity", n)}).at(path)
	}
	return n, body, nil
}

func (d *decodeCtx) decodeBool(word []byte, path Path) (bool, error) {
	if d.strict {
		for _, b := range word[:wordSize-1] {
			if b != 0 {
				return false, (&DecodeError{Kind: NonCanonicalPadding, Detail: "bool padding bytes must be zero"}).at(path)
			}
		}
		switch word[wordSize-1] {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return false, (&DecodeError{Kind: InvalidBool, Detail: "strict bool low byte must be 0 or 1"}).at(path)
		}
	}
	for _, b := range word {
		if b != 0 {
			return true, nil
		}
	}
	return false, nil
}

// decodeInteger reads a two's-complement integer of the given signedness
// and bit width from a 32-byte word, checking sign-extension padding in
// strict mode.
func (d *decodeCtx) decodeInteger(word []byte, signed bool, bits int, path Path) (*big.Int, error) {
	natBytes := bits / 8
	narrow := word[wordSize-natBytes:]
	signBit := signed && narrow[0]&0x80 != 0
	if d.strict {
		expected := byte(0x00)
		if signBit {
			expected = 0xff
		}
		for _, b := range word[:wordSize-natBytes] {
			if b != expected {
				return nil, (&DecodeError{Kind: NonCanonicalPadding, Detail: "integer padding does not match sign extension"}).at(path)
			}
		}
	}
	u := new(big.Int).SetBytes(narrow)
	if signBit {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(natBytes*8))
		u.Sub(u, mod)
	}
	return u, nil
}
