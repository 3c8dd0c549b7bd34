package abi

import (
	"strings"

	"github.com/go-abi/ethabi/keccak"
)

// Keccak256 returns the 32-byte Keccak-256 digest of data.
func Keccak256(data []byte) [32]byte {
	return keccak.Sum256(data)
}

// Selector returns the 4-byte Keccak-256 function selector for a function
// named name taking params in order, in the manner of
// Entry.GenerateID: hash the canonical "name(type,type,...)" signature and
// take its first 4 bytes.
func Selector(name string, params []Type) [4]byte {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	sig := name + "(" + strings.Join(parts, ",") + ")"
	digest := Keccak256([]byte(sig))
	var sel [4]byte
	copy(sel[:], digest[:4])
	return sel
}
