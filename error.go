package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeErrorKind classifies why a type string or value could not be
// encoded. The same set of kinds is reused by [ParseSchema], since a
// malformed type string is simply an encoding failure discovered before any
// value was considered.
type EncodeErrorKind uint8

const (
	// UnknownType names a type keyword the grammar doesn't recognize.
	UnknownType EncodeErrorKind = iota
	// InvalidTypeString reports any other grammatical malformation: stray
	// characters, unbalanced parens/brackets, whitespace, nesting past
	// maxNestingDepth.
	InvalidTypeString
	// ParameterOutOfRange reports a width, precision, or length parameter
	// outside the range the grammar allows for its kind.
	ParameterOutOfRange
	// ValueOutOfRange reports an integer or fixed-point value outside the
	// range its declared type can represent.
	ValueOutOfRange
	// LengthMismatch reports a fixed-length bytes/array/tuple value whose
	// length doesn't match its declared type.
	LengthMismatch
	// InvalidAddressFormat reports an address value that is neither 20
	// raw bytes nor a well-formed "0x"-prefixed 40 hex char string.
	InvalidAddressFormat
	// InvalidUtf8 reports a string value that doesn't round-trip through
	// UTF-8.
	InvalidUtf8
	// FractionalLoss reports a Fixed value whose scaled representation
	// would silently truncate a fractional remainder.
	FractionalLoss
	// TypeMismatch reports a value of the wrong Go type for its declared
	// ABI type (e.g. a bool where an integer was expected).
	TypeMismatch
)

func (k EncodeErrorKind) String() string {
	switch k {
	case UnknownType:
		return "unknown type"
	case InvalidTypeString:
		return "invalid type string"
	case ParameterOutOfRange:
		return "parameter out of range"
	case ValueOutOfRange:
		return "value out of range"
	case LengthMismatch:
		return "length mismatch"
	case InvalidAddressFormat:
		return "invalid address format"
	case InvalidUtf8:
		return "invalid utf-8"
	case FractionalLoss:
		return "fractional loss"
	case TypeMismatch:
		return "type mismatch"
	default:
		return "unknown error"
	}
}

// PathElement identifies one step into a nested tuple or array value, for
// error reporting.
type PathElement struct {
	// Component is "tuple" or "array".
	Component string
	// Index is the position within Component.
	Index int
}

func (p PathElement) String() string {
	return p.Component + "[" + strconv.Itoa(p.Index) + "]"
}

// Path locates a value within a nested tuple/array structure, outermost
// element first.
type Path []PathElement

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}
	return strings.Join(parts, ".")
}

// child returns the path extended with one more step, without mutating p.
func (p Path) child(component string, index int) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = PathElement{Component: component, Index: index}
	return np
}

// EncodeError is returned when a type string is malformed, or a value
// cannot be encoded under a given Type.
type EncodeError struct {
	Kind   EncodeErrorKind
	Path   Path
	Detail string
}

func (e *EncodeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("abi: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("abi: %s at %s: %s", e.Kind, e.Path, e.Detail)
}

// at returns a copy of e with Path set, for attaching location context at
// the point an error is constructed.
func (e *EncodeError) at(path Path) *EncodeError {
	return &EncodeError{Kind: e.Kind, Path: path, Detail: e.Detail}
}

// DecodeErrorKind classifies why a byte buffer could not be decoded.
type DecodeErrorKind uint8

const (
	// InsufficientData reports a read that would run past the end of the
	// buffer.
	InsufficientData DecodeErrorKind = iota
	// InvalidOffset reports a dynamic-component offset that is out of
	// bounds, not representable in a native size type, or otherwise
	// violates the head/tail layout rules.
	InvalidOffset
	// NonCanonicalPadding reports a non-canonical padding byte in strict
	// mode: bytes(m) tail padding, string/dynamicBytes payload padding, an
	// integer's sign-extension bytes, or the zero padding above an address
	// or bool value.
	NonCanonicalPadding
	// InvalidBool reports a strict-mode bool word whose padding is zero but
	// whose low byte is neither 0 nor 1.
	InvalidBool
	// DecodeInvalidUtf8 reports string bytes that are not valid UTF-8.
	DecodeInvalidUtf8
)

func (k DecodeErrorKind) String() string {
	switch k {
	case InsufficientData:
		return "insufficient data"
	case InvalidOffset:
		return "invalid offset"
	case NonCanonicalPadding:
		return "non-canonical padding"
	case InvalidBool:
		return "invalid bool"
	case DecodeInvalidUtf8:
		return "invalid utf-8"
	default:
		return "unknown error"
	}
}

// DecodeError is returned when a byte buffer cannot be decoded under a
// given Type.
type DecodeError struct {
	Kind   DecodeErrorKind
	Path   Path
	Detail string
	// Cause is the underlying error returned by Unwrap, if any. The decoder
	// in this package does not re-validate decoded values against their
	// Type and leaves Cause nil.
	Cause error
}

func (e *DecodeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("abi: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("abi: %s at %s: %s", e.Kind, e.Path, e.Detail)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// at returns a copy of e with Path set, for attaching location context at
// the point an error is constructed.
func (e *DecodeError) at(path Path) *DecodeError {
	return &DecodeError{Kind: e.Kind, Path: path, Detail: e.Detail, Cause: e.Cause}
}
