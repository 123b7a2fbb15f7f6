package format_test

import (
	"errors"
	"testing"

	fmterrors "github.com/wippyai/move-binary-format/errors"
	"github.com/wippyai/move-binary-format/format"
)

func TestAbilitiesPrimitives(t *testing.T) {
	fx := buildFixture(t)

	kinds := []format.TokenKind{
		format.TokenBool, format.TokenU8, format.TokenU16, format.TokenU32,
		format.TokenU64, format.TokenU128, format.TokenU256, format.TokenAddress,
	}
	for _, kind := range kinds {
		tok := format.SignatureToken{Kind: kind}
		got, err := fx.module.Abilities(&tok, nil)
		if err != nil {
			t.Fatalf("Abilities(%v): %v", kind, err)
		}
		if got != format.AbilitySetPrimitives {
			t.Errorf("Abilities(%v) = %v, want %v", kind, got, format.AbilitySetPrimitives)
		}
	}
}

func TestAbilitiesReferences(t *testing.T) {
	fx := buildFixture(t)

	// References are copy+drop regardless of the referent, even one with
	// no abilities at all.
	inner := format.StructToken(fx.hot)
	for _, tok := range []format.SignatureToken{
		format.ReferenceToken(inner),
		format.MutableReferenceToken(inner),
	} {
		got, err := fx.module.Abilities(&tok, nil)
		if err != nil {
			t.Fatalf("Abilities(%v): %v", tok.Kind, err)
		}
		if got != format.AbilitySetReferences {
			t.Errorf("Abilities(%v) = %v, want %v", tok.Kind, got, format.AbilitySetReferences)
		}
	}
}

func TestAbilitiesSigner(t *testing.T) {
	fx := buildFixture(t)

	tok := format.SignatureToken{Kind: format.TokenSigner}
	got, err := fx.module.Abilities(&tok, nil)
	if err != nil {
		t.Fatalf("Abilities(signer): %v", err)
	}
	if got != format.AbilitySetSigner {
		t.Errorf("Abilities(signer) = %v, want %v", got, format.AbilitySetSigner)
	}
}

func TestAbilitiesTypeParameter(t *testing.T) {
	fx := buildFixture(t)

	constraints := []format.AbilitySet{
		format.AbilitySet(format.AbilityCopy),
		format.AbilitySet(format.AbilityKey | format.AbilityStore),
	}
	for i, want := range constraints {
		tok := format.TypeParameterToken(format.TypeParameterIndex(i))
		got, err := fx.module.Abilities(&tok, constraints)
		if err != nil {
			t.Fatalf("Abilities(T%d): %v", i, err)
		}
		if got != want {
			t.Errorf("Abilities(T%d) = %v, want %v", i, got, want)
		}
	}
}

func TestAbilitiesVector(t *testing.T) {
	fx := buildFixture(t)

	tests := []struct {
		name string
		elem format.SignatureToken
		want format.AbilitySet
	}{
		// u8 is a superset of the vector base set, so the full base
		// survives.
		{"u8", format.SignatureToken{Kind: format.TokenU8}, format.AbilitySetVector},
		{"signer", format.SignatureToken{Kind: format.TokenSigner}, format.AbilitySetSigner},
		{"no-ability struct", format.StructToken(fx.hot), format.AbilitySetEmpty},
		{"nested vector", format.VectorToken(format.SignatureToken{Kind: format.TokenU64}), format.AbilitySetVector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := format.VectorToken(tt.elem)
			got, err := fx.module.Abilities(&tok, nil)
			if err != nil {
				t.Fatalf("Abilities(vector<%s>): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Abilities(vector<%s>) = %v, want %v", tt.name, got, tt.want)
			}
			if !got.IsSubset(format.AbilitySetVector) {
				t.Errorf("vector abilities %v exceed the declared base %v", got, format.AbilitySetVector)
			}
		})
	}
}

func TestAbilitiesStruct(t *testing.T) {
	fx := buildFixture(t)

	// A non-generic struct's declared set is authoritative, whatever the
	// ambient constraints are.
	contexts := [][]format.AbilitySet{
		nil,
		{format.AbilitySetAll},
		{format.AbilitySetEmpty, format.AbilitySetSigner},
	}
	tok := format.StructToken(fx.wallet)
	for _, constraints := range contexts {
		got, err := fx.module.Abilities(&tok, constraints)
		if err != nil {
			t.Fatalf("Abilities(Wallet): %v", err)
		}
		if got != format.AbilitySet(format.AbilityKey) {
			t.Errorf("Abilities(Wallet) = %v, want [key]", got)
		}
	}
}

func TestAbilitiesStructInstantiation(t *testing.T) {
	fx := buildFixture(t)

	tests := []struct {
		name string
		tok  format.SignatureToken
		want format.AbilitySet
	}{
		{
			name: "pair of primitives keeps declared set",
			tok: format.StructInstantiationToken(fx.pair,
				format.SignatureToken{Kind: format.TokenU64},
				format.SignatureToken{Kind: format.TokenBool}),
			want: format.AbilitySetPrimitives,
		},
		{
			// Declared {copy, drop, store}, one argument of {drop}:
			// copy and store are dropped.
			name: "signer argument constrains non-phantom position",
			tok: format.StructInstantiationToken(fx.pair,
				format.SignatureToken{Kind: format.TokenSigner},
				format.SignatureToken{Kind: format.TokenU8}),
			want: format.AbilitySetSigner,
		},
		{
			// Declared {copy, drop, store, key}, phantom argument with no
			// abilities: unchanged.
			name: "phantom argument imposes no constraint",
			tok:  format.StructInstantiationToken(fx.marker, format.StructToken(fx.hot)),
			want: format.AbilitySetAll,
		},
		{
			name: "phantom coin parameter ignores argument",
			tok:  format.StructInstantiationToken(fx.coin, format.SignatureToken{Kind: format.TokenSigner}),
			want: format.AbilitySet(format.AbilityStore | format.AbilityKey),
		},
		{
			name: "nested instantiation",
			tok: format.StructInstantiationToken(fx.pair,
				format.VectorToken(format.SignatureToken{Kind: format.TokenU8}),
				format.StructInstantiationToken(fx.pair,
					format.SignatureToken{Kind: format.TokenU64},
					format.SignatureToken{Kind: format.TokenSigner})),
			want: format.AbilitySetSigner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fx.module.Abilities(&tt.tok, nil)
			if err != nil {
				t.Fatalf("Abilities: %v", err)
			}
			if got != tt.want {
				t.Errorf("Abilities = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAbilitiesPhantomPositionInvariance(t *testing.T) {
	fx := buildFixture(t)

	// Varying the phantom argument across every ability profile never
	// changes the result.
	args := []format.SignatureToken{
		{Kind: format.TokenU64},
		{Kind: format.TokenSigner},
		format.StructToken(fx.hot),
		format.StructToken(fx.wallet),
	}

	var first format.AbilitySet
	for i, arg := range args {
		tok := format.StructInstantiationToken(fx.marker, arg)
		got, err := fx.module.Abilities(&tok, nil)
		if err != nil {
			t.Fatalf("Abilities: %v", err)
		}
		if i == 0 {
			first = got
			continue
		}
		if got != first {
			t.Errorf("phantom argument %v changed result: %v != %v", arg.Kind, got, first)
		}
	}
}

func TestAbilitiesArityMismatch(t *testing.T) {
	fx := buildFixture(t)

	tests := []struct {
		name string
		tok  format.SignatureToken
	}{
		{"too few arguments", format.StructInstantiationToken(fx.pair, format.SignatureToken{Kind: format.TokenU8})},
		{"too many arguments", format.StructInstantiationToken(fx.coin,
			format.SignatureToken{Kind: format.TokenU8},
			format.SignatureToken{Kind: format.TokenU8})},
		{"nested mismatch propagates", format.VectorToken(
			format.StructInstantiationToken(fx.pair, format.SignatureToken{Kind: format.TokenU8}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.module.Abilities(&tt.tok, nil)
			if err == nil {
				t.Fatal("expected arity mismatch error")
			}
			var ferr *fmterrors.Error
			if !errors.As(err, &ferr) {
				t.Fatalf("error %T is not a structured error", err)
			}
			if ferr.Kind != fmterrors.KindArityMismatch {
				t.Errorf("Kind = %v, want %v", ferr.Kind, fmterrors.KindArityMismatch)
			}
		})
	}
}

func TestAbilitiesDeclaredSetMatchesHandle(t *testing.T) {
	fx := buildFixture(t)
	m := fx.module

	// For every non-generic struct handle, the engine's answer equals the
	// declared set verbatim.
	for i, handle := range m.StructHandlesView() {
		if len(handle.TypeParameters) != 0 {
			continue
		}
		tok := format.StructToken(format.StructHandleIndex(i))
		got, err := m.Abilities(&tok, nil)
		if err != nil {
			t.Fatalf("Abilities(struct[%d]): %v", i, err)
		}
		if got != handle.Abilities {
			t.Errorf("Abilities(struct[%d]) = %v, want declared %v", i, got, handle.Abilities)
		}
	}
}
