package abi

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// coerceInteger converts v to the *big.Int the Integer type t demands,
// rejecting booleans explicitly (the ABI does not treat bool as a 1-bit
// integer) and checking the value is in range for t's signedness and width.
func coerceInteger(t Type, v any, path Path) (*big.Int, error) {
	var n *big.Int
	switch x := v.(type) {
	case bool:
		return nil, (&EncodeError{Kind: TypeMismatch, Detail: "boolean values are not accepted as integers"}).at(path)
	case *big.Int:
		n = new(big.Int).Set(x)
	case big.Int:
		n = new(big.Int).Set(&x)
	case json.Number:
		var ok bool
		n, ok = new(big.Int).SetString(x.String(), 10)
		if !ok {
			return nil, (&EncodeError{Kind: TypeMismatch, Detail: fmt.Sprintf("%q is not a valid integer literal", x)}).at(path)
		}
	case int:
		n = big.NewInt(int64(x))
	case int8:
		n = big.NewInt(int64(x))
	case int16:
		n = big.NewInt(int64(x))
	case int32:
		n = big.NewInt(int64(x))
	case int64:
		n = big.NewInt(x)
	case uint:
		n = new(big.Int).SetUint64(uint64(x))
	case uint8:
		n = new(big.Int).SetUint64(uint64(x))
	case uint16:
		n = new(big.Int).SetUint64(uint64(x))
	case uint32:
		n = new(big.Int).SetUint64(uint64(x))
	case uint64:
		n = new(big.Int).SetUint64(x)
	default:
		return nil, (&EncodeError{Kind: TypeMismatch, Detail: fmt.Sprintf("cannot use %T as an ABI integer", v)}).at(path)
	}
	lo, hi := integerRange(t.signed, t.bits)
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return nil, (&EncodeError{Kind: ValueOutOfRange, Detail: fmt.Sprintf("value %s out of range [%s,%s] for %s", n, lo, hi, t)}).at(path)
	}
	return n, nil
}

// integerRange returns the inclusive bounds of a two's-complement integer
// of the given signedness and bit width.
func integerRange(signed bool, bits int) (lo, hi *big.Int) {
	if signed {
		hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)), big.NewInt(1))
		lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
		return lo, hi
	}
	hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1))
	lo = big.NewInt(0)
	return lo, hi
}

// coerceFixed converts v (a decimal.Decimal, or a string parsed as one) to
// the scaled *big.Int its underlying Integer(signed,bits) will carry,
// rejecting any value with more fractional digits than t.Precision allows.
func coerceFixed(t Type, v any, path Path) (*big.Int, error) {
	var d decimal.Decimal
	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case string:
		parsed, err := decimal.NewFromString(x)
		if err != nil {
			return nil, (&EncodeError{Kind: TypeMismatch, Detail: "invalid decimal string: " + err.Error()}).at(path)
		}
		d = parsed
	case json.Number:
		parsed, err := decimal.NewFromString(x.String())
		if err != nil {
			return nil, (&EncodeError{Kind: TypeMismatch, Detail: "invalid decimal literal: " + err.Error()}).at(path)
		}
		d = parsed
	default:
		return nil, (&EncodeError{Kind: TypeMismatch, Detail: fmt.Sprintf("cannot use %T as an ABI fixed value", v)}).at(path)
	}
	scaled := d.Shift(int32(t.precision))
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, (&EncodeError{Kind: FractionalLoss, Detail: fmt.Sprintf("value %s has more than %d fractional digits", d, t.precision)}).at(path)
	}
	n := scaled.BigInt()
	lo, hi := integerRange(t.signed, t.bits)
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return nil, (&EncodeError{Kind: ValueOutOfRange, Detail: fmt.Sprintf("scaled value %s out of range for %s", n, t)}).at(path)
	}
	return n, nil
}

func coerceBool(v any, path Path) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, (&EncodeError{Kind: TypeMismatch, Detail: fmt.Sprintf("cannot use %T as bool", v)}).at(path)
	}
	return b, nil
}

// coerceByteSlice accepts a []byte, or a string holding hex digits
// (optionally "0x"-prefixed), for any Bytes-flavored value.
func coerceByteSlice(v any, path Path) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		b, err := hex.DecodeString(strings.TrimPrefix(x, "0x"))
		if err != nil {
			return nil, (&EncodeError{Kind: TypeMismatch, Detail: "invalid hex string: " + err.Error()}).at(path)
		}
		return b, nil
	default:
		return nil, (&EncodeError{Kind: TypeMismatch, Detail: fmt.Sprintf("cannot use %T as bytes", v)}).at(path)
	}
}

func coerceString(v any, path Path) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", (&EncodeError{Kind: TypeMismatch, Detail: fmt.Sprintf("cannot use %T as string", v)}).at(path)
	}
	if !utf8.ValidString(s) {
		return "", (&EncodeError{Kind: InvalidUtf8, Detail: "string value is not valid utf-8"}).at(path)
	}
	return s, nil
}

func coerceAddress(v any, path Path) (Address, error) {
	a, err := addressFromAny(v)
	if err != nil {
		if ee, ok := err.(*EncodeError); ok {
			return a, ee.at(path)
		}
		return a, err
	}
	return a, nil
}

// coerceSequence accepts the []any native value domain shared by Array,
// DynamicArray, and Tuple.
func coerceSequence(v any, path Path) ([]any, error) {
	s, ok := v.([]any)
	if !ok {
		return nil, (&EncodeError{Kind: TypeMismatch, Detail: fmt.Sprintf("cannot use %T as a sequence (want []any)", v)}).at(path)
	}
	return s, nil
}
