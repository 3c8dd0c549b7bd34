package abi

import "fmt"

// Validate reports whether value is encodable under t, returning the first
// violation found as an *EncodeError with its component path set. It
// performs the same checks Encode performs before producing bytes, without
// allocating an encoding.
func Validate(t Type, value any) error {
	return validateValue(t, value, nil)
}

// IsEncodable is a convenience wrapper around Validate.
func IsEncodable(t Type, value any) bool {
	return Validate(t, value) == nil
}

func validateValue(t Type, v any, path Path) error {
	switch t.kind {
	case Address:
		_, err := coerceAddress(v, path)
		return err
	case Bool:
		_, err := coerceBool(v, path)
		return err
	case Integer:
		_, err := coerceInteger(t, v, path)
		return err
	case Fixed:
		_, err := coerceFixed(t, v, path)
		return err
	case Bytes:
		b, err := coerceByteSlice(v, path)
		if err != nil {
			return err
		}
		if len(b) != t.size {
			return (&EncodeError{Kind: LengthMismatch, Detail: fmt.Sprintf("bytes%d value has length %d", t.size, len(b))}).at(path)
		}
		return nil
	case String:
		_, err := coerceString(v, path)
		return err
	case DynamicBytes:
		_, err := coerceByteSlice(v, path)
		return err
	case Array:
		seq, err := coerceSequence(v, path)
		if err != nil {
			return err
		}
		if len(seq) != t.size {
			return (&EncodeError{Kind: LengthMismatch, Detail: fmt.Sprintf("array%d expects %d elements, got %d", t.size, t.size, len(seq))}).at(path)
		}
		for i, elem := range seq {
			if err := validateValue(*t.elem, elem, path.child("array", i)); err != nil {
				return err
			}
		}
		return nil
	case DynamicArray:
		seq, err := coerceSequence(v, path)
		if err != nil {
			return err
		}
		for i, elem := range seq {
			if err := validateValue(*t.elem, elem, path.child("array", i)); err != nil {
				return err
			}
		}
		return nil
	case Tuple:
		seq, err := coerceSequence(v, path)
		if err != nil {
			return err
		}
		if len(seq) != len(t.components) {
			return (&EncodeError{Kind: LengthMismatch, Detail: fmt.Sprintf("tuple expects %d elements, got %d", len(t.components), len(seq))}).at(path)
		}
		for i, ct := range t.components {
			if err := validateValue(ct, seq[i], path.child("tuple", i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return (&EncodeError{Kind: TypeMismatch, Detail: "unknown type kind"}).at(path)
	}
}
