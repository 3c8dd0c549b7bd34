// Package abi implements the Ethereum Contract ABI v2 binary encoding:
// parsing canonical type strings into a type tree, validating candidate
// values against a type, and encoding/decoding values to and from the exact
// byte layout the EVM expects.
//
// The package is organised as a small pipeline, leaves first:
//
//	ParseSchema  - type string -> Type tree
//	Validate     - (Type, value) -> ok or EncodeError
//	Encode       - (Type, value) -> bytes
//	Decode       - (Type, bytes) -> value
//
// A Type is a closed tagged union (see [Kind]); every visitor over it
// ([Validate], [Encode], [Decode], [Type.String]) is an exhaustive switch
// over the node's Kind, not a reflection-driven dispatch: the wire shape of
// an ABI value comes from its declared type string, never from the Go type
// of the value handed to it.
//
// Values live in the native Go domain described by each Kind's doc comment:
// booleans, *big.Int for every integer width, decimal.Decimal for fixed
// point, []byte/string for bytes-like types, []any for arrays and tuples,
// and [Address] for the 20-byte address type.
//
// Encode and Decode are pure, synchronous, and allocate only what the
// declared lengths in the input require; there is no shared state and no
// package-level cache. See [Keccak256] for the companion Keccak-256 hash
// used throughout the EVM ecosystem.
package abi
