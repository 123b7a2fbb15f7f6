package format_test

import (
	"testing"

	"github.com/wippyai/move-binary-format/format"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		want string
		k    format.TokenKind
	}{
		{"bool", format.TokenBool},
		{"u8", format.TokenU8},
		{"u256", format.TokenU256},
		{"address", format.TokenAddress},
		{"signer", format.TokenSigner},
		{"vector", format.TokenVector},
		{"struct", format.TokenStruct},
		{"struct_instantiation", format.TokenStructInstantiation},
		{"reference", format.TokenReference},
		{"mutable_reference", format.TokenMutableReference},
		{"type_parameter", format.TokenTypeParameter},
		{"unknown", format.TokenKind(0xFF)},
	}

	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestSignatureTokenString(t *testing.T) {
	tests := []struct {
		want string
		tok  format.SignatureToken
	}{
		{"u64", format.SignatureToken{Kind: format.TokenU64}},
		{"vector<u8>", format.VectorToken(format.SignatureToken{Kind: format.TokenU8})},
		{"&signer", format.ReferenceToken(format.SignatureToken{Kind: format.TokenSigner})},
		{"&mut u64", format.MutableReferenceToken(format.SignatureToken{Kind: format.TokenU64})},
		{"struct[2]", format.StructToken(2)},
		{"T3", format.TypeParameterToken(3)},
		{
			"struct[1]<u8, T0>",
			format.StructInstantiationToken(1,
				format.SignatureToken{Kind: format.TokenU8},
				format.TypeParameterToken(0)),
		},
		{
			"vector<struct[0]<bool>>",
			format.VectorToken(format.StructInstantiationToken(0,
				format.SignatureToken{Kind: format.TokenBool})),
		},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSignatureTokenPredicates(t *testing.T) {
	u8 := format.SignatureToken{Kind: format.TokenU8}
	signer := format.SignatureToken{Kind: format.TokenSigner}
	ref := format.ReferenceToken(u8)
	mutRef := format.MutableReferenceToken(u8)
	vec := format.VectorToken(u8)

	if !u8.IsPrimitive() {
		t.Error("u8.IsPrimitive() = false")
	}
	if signer.IsPrimitive() {
		t.Error("signer.IsPrimitive() = true")
	}
	if vec.IsPrimitive() {
		t.Error("vector.IsPrimitive() = true")
	}
	if !ref.IsReference() || !mutRef.IsReference() {
		t.Error("reference tokens should report IsReference")
	}
	if u8.IsReference() {
		t.Error("u8.IsReference() = true")
	}
}
