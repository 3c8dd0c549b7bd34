// Package keccak wraps the legacy Keccak-256 primitive the Ethereum ABI
// (function selectors, EIP-712 hashing) is built on: the original Keccak
// submission's padding byte 0x01, not the FIPS-202 SHA3-256 standardized
// afterward with padding byte 0x06. golang.org/x/crypto/sha3 keeps both
// under separate constructors; picking the wrong one silently produces a
// different digest for the same input.
package keccak

import "golang.org/x/crypto/sha3"

// Sum256 returns the 32-byte Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
