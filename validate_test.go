package abi

import (
	"math/big"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	uint256, _ := NewIntegerType(false, 256)
	if err := Validate(uint256, big.NewInt(42)); err != nil {
		t.Fatalf("valid uint256 rejected: %v", err)
	}

	tup, err := ParseSchema("(uint256,string)")
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(tup, []any{big.NewInt(1), "ok"}); err != nil {
		t.Fatalf("valid tuple rejected: %v", err)
	}
}

func TestValidateReportsPath(t *testing.T) {
	tup, err := ParseSchema("(uint8,uint8)")
	if err != nil {
		t.Fatal(err)
	}
	err = Validate(tup, []any{big.NewInt(1), big.NewInt(999)})
	if err == nil {
		t.Fatal("expected an error for an out-of-range second component")
	}
	ee, ok := err.(*EncodeError)
	if !ok {
		t.Fatalf("expected *EncodeError, got %T", err)
	}
	if ee.Kind != ValueOutOfRange {
		t.Fatalf("expected ValueOutOfRange, got %v", ee.Kind)
	}
	want := Path{{Component: "tuple", Index: 1}}
	if len(ee.Path) != 1 || ee.Path[0] != want[0] {
		t.Fatalf("expected path %v, got %v", want, ee.Path)
	}
}

func TestIsEncodable(t *testing.T) {
	addr := NewAddressType()
	if !IsEncodable(addr, "0x0102030405060708090a0b0c0d0e0f1011121314") {
		t.Fatal("well-formed address string should be encodable")
	}
	if IsEncodable(addr, "not-an-address") {
		t.Fatal("malformed address string should not be encodable")
	}
}

func TestValidateFractionalLoss(t *testing.T) {
	fx, err := NewFixedType(false, 256, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(fx, "1.005"); err == nil {
		t.Fatal("expected FractionalLoss for a value with more digits than the type's precision")
	}
	if err := Validate(fx, "1.00"); err != nil {
		t.Fatalf("exact precision value rejected: %v", err)
	}
}

func TestValidateArrayLengthMismatch(t *testing.T) {
	arr, err := ParseSchema("uint256[3]")
	if err != nil {
		t.Fatal(err)
	}
	err = Validate(arr, []any{big.NewInt(1), big.NewInt(2)})
	ee, ok := err.(*EncodeError)
	if !ok || ee.Kind != LengthMismatch {
		t.Fatalf("expected LengthMismatch, got %v", err)
	}
}
