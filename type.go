package abi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-abi/ethabi/wire"
)

// maxNestingDepth bounds the nesting the parser accepts, so that a
// pathological type string such as "uint256[][][][]...[]" cannot exhaust
// the goroutine stack. The encoder and decoder recurse once per level of a
// Type, so for parsed Types their recursion is bounded too; Types assembled
// with the New*Type constructors are not depth-checked.
const maxNestingDepth = 32

// wordSize is the byte width of every static scalar's encoding.
const wordSize = wire.WordSize

// Type is an immutable node in the ABI type tree. The zero Type is not
// valid; construct one via [ParseSchema] or one of the New*Type
// constructors.
//
// Type equality is structural: two Types built independently from the same
// type string are Equal.
type Type struct {
	kind       Kind
	signed     bool
	bits       int
	precision  int
	size       int // Bytes(m) width, or Array(n) length
	elem       *Type
	components []Type
}

// Kind returns the node's variant tag.
func (t Type) Kind() Kind { return t.kind }

// Signed reports whether an Integer or Fixed type is signed.
func (t Type) Signed() bool { return t.signed }

// Bits returns the bit width of an Integer or Fixed type.
func (t Type) Bits() int { return t.bits }

// Precision returns the number of fractional decimal digits of a Fixed type.
func (t Type) Precision() int { return t.precision }

// Size returns the byte width of a Bytes type, or the element count of an
// Array type.
func (t Type) Size() int { return t.size }

// Elem returns the element type of an Array or DynamicArray.
func (t Type) Elem() Type { return *t.elem }

// Components returns the ordered field types of a Tuple.
func (t Type) Components() []Type { return t.components }

// NewAddressType returns the address type.
func NewAddressType() Type { return Type{kind: Address} }

// NewBoolType returns the bool type.
func NewBoolType() Type { return Type{kind: Bool} }

// NewIntegerType returns an integer type of the given signedness and bit
// width. bits must be a multiple of 8 in [8, 256].
func NewIntegerType(signed bool, bits int) (Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: fmt.Sprintf("integer bit width %d out of range [8,256] step 8", bits)}
	}
	return Type{kind: Integer, signed: signed, bits: bits}, nil
}

// NewFixedType returns a fixed-point type backed by an integer of the given
// signedness and bit width, with precision fractional decimal digits.
// bits must be a multiple of 8 in [8, 256]; precision must be in [1, 80].
func NewFixedType(signed bool, bits, precision int) (Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: fmt.Sprintf("fixed bit width %d out of range [8,256] step 8", bits)}
	}
	if precision < 1 || precision > 80 {
		return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: fmt.Sprintf("fixed precision %d out of range [1,80]", precision)}
	}
	return Type{kind: Fixed, signed: signed, bits: bits, precision: precision}, nil
}

// NewBytesType returns the fixed-length bytes type of width m, 1 <= m <= 32.
func NewBytesType(m int) (Type, error) {
	if m < 1 || m > 32 {
		return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: fmt.Sprintf("bytes width %d out of range [1,32]", m)}
	}
	return Type{kind: Bytes, size: m}, nil
}

// NewStringType returns the dynamic string type.
func NewStringType() Type { return Type{kind: String} }

// NewDynamicBytesType returns the dynamic bytes type.
func NewDynamicBytesType() Type { return Type{kind: DynamicBytes} }

// NewArrayType returns a fixed-length array of n elements of type elem.
// n must be positive.
func NewArrayType(elem Type, n int) (Type, error) {
	if n < 1 {
		return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: fmt.Sprintf("array length %d must be positive", n)}
	}
	return Type{kind: Array, size: n, elem: &elem}, nil
}

// NewDynamicArrayType returns the unbounded array type of elem.
func NewDynamicArrayType(elem Type) Type {
	return Type{kind: DynamicArray, elem: &elem}
}

// NewTupleType returns a tuple of the given ordered component types. A
// zero-component tuple is valid and encodes to zero bytes.
func NewTupleType(components []Type) Type {
	cs := make([]Type, len(components))
	copy(cs, components)
	return Type{kind: Tuple, components: cs}
}

// IsStatic reports whether the type's encoded width depends only on the
// type, never on the value.
func (t Type) IsStatic() bool {
	switch t.kind {
	case Address, Bool, Integer, Fixed, Bytes:
		return true
	case String, DynamicBytes, DynamicArray:
		return false
	case Array:
		return t.elem.IsStatic()
	case Tuple:
		for _, c := range t.components {
			if !c.IsStatic() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsDynamic reports !IsStatic().
func (t Type) IsDynamic() bool { return !t.IsStatic() }

// StaticSize returns the number of bytes a static type encodes to. It
// panics if t is dynamic; callers should check IsStatic first.
func (t Type) StaticSize() int {
	switch t.kind {
	case Address, Bool, Integer, Fixed, Bytes:
		return wordSize
	case Array:
		return t.size * t.elem.StaticSize()
	case Tuple:
		n := 0
		for _, c := range t.components {
			n += c.StaticSize()
		}
		return n
	default:
		panic("abi: StaticSize called on dynamic type " + t.String())
	}
}

// repeatType returns a slice of n copies of t, used to treat an array's
// fixed-length or length-prefixed body as a tuple of repeated elements for
// the shared head/tail machinery.
func repeatType(t Type, n int) []Type {
	ts := make([]Type, n)
	for i := range ts {
		ts[i] = t
	}
	return ts
}

// Equal reports whether t and other are structurally identical.
func (t Type) Equal(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case Integer, Fixed:
		if t.signed != other.signed || t.bits != other.bits {
			return false
		}
		return t.kind != Fixed || t.precision == other.precision
	case Bytes, Array:
		if t.size != other.size {
			return false
		}
		return t.elem == nil && other.elem == nil || (t.elem != nil && other.elem != nil && t.elem.Equal(*other.elem))
	case DynamicArray:
		return t.elem.Equal(*other.elem)
	case Tuple:
		if len(t.components) != len(other.components) {
			return false
		}
		for i := range t.components {
			if !t.components[i].Equal(other.components[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String returns the canonical ABI type string for t. Parsing the result
// with ParseSchema produces a Type that is Equal to t.
func (t Type) String() string {
	switch t.kind {
	case Address:
		return "address"
	case Bool:
		return "bool"
	case String:
		return "string"
	case DynamicBytes:
		return "bytes"
	case Integer:
		if t.signed {
			return "int" + strconv.Itoa(t.bits)
		}
		return "uint" + strconv.Itoa(t.bits)
	case Fixed:
		prefix := "ufixed"
		if t.signed {
			prefix = "fixed"
		}
		return prefix + strconv.Itoa(t.bits) + "x" + strconv.Itoa(t.precision)
	case Bytes:
		return "bytes" + strconv.Itoa(t.size)
	case Array:
		return t.elem.String() + "[" + strconv.Itoa(t.size) + "]"
	case DynamicArray:
		return t.elem.String() + "[]"
	case Tuple:
		parts := make([]string, len(t.components))
		for i, c := range t.components {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return "?"
	}
}
