package abi

import (
	"encoding/hex"
	"strings"
)

// Address is a 20-byte EVM account address, the native value of the
// Address Kind.
type Address [20]byte

// ParseAddress parses a "0x"-prefixed 40 hex char string into an Address.
// The alphabet is checked, case-insensitively; EIP-55 checksum casing is
// not verified (left to callers, per the package's canonical decode
// output, which is always lowercase).
func ParseAddress(s string) (Address, error) {
	var a Address
	if !strings.HasPrefix(s, "0x") || len(s) != 42 {
		return a, &EncodeError{Kind: InvalidAddressFormat, Detail: "address string must be \"0x\" followed by 40 hex characters"}
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return a, &EncodeError{Kind: InvalidAddressFormat, Detail: "address string is not valid hex: " + err.Error()}
	}
	copy(a[:], b)
	return a, nil
}

// Hex returns the canonical lowercase "0x"-prefixed hex form of a.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) String() string { return a.Hex() }

// addressFromAny coerces the accepted Address value domain (Address,
// [20]byte, []byte of length 20, or a "0x"-prefixed hex string) to an
// Address.
func addressFromAny(v any) (Address, error) {
	switch x := v.(type) {
	case Address:
		return x, nil
	case [20]byte:
		return Address(x), nil
	case []byte:
		if len(x) != 20 {
			return Address{}, &EncodeError{Kind: LengthMismatch, Detail: "address byte slice must be exactly 20 bytes"}
		}
		var a Address
		copy(a[:], x)
		return a, nil
	case string:
		return ParseAddress(x)
	default:
		return Address{}, &EncodeError{Kind: TypeMismatch, Detail: "address value must be Address, []byte, or a hex string"}
	}
}
