package format_test

import (
	"testing"

	"github.com/wippyai/move-binary-format/format"
	"github.com/wippyai/move-binary-format/types"
)

// fixture is a small coin-like module used across the accessor and
// ability tests.
type fixture struct {
	module *format.CompiledModule

	coin   format.StructHandleIndex // Coin<phantom T>: store, key
	pair   format.StructHandleIndex // Pair<T0, T1>: copy, drop, store
	wallet format.StructHandleIndex // Wallet: key
	marker format.StructHandleIndex // Marker<phantom T>: copy, drop, store, key
	hot    format.StructHandleIndex // Hot: no abilities

	coinDef   format.StructDefinitionIndex
	walletDef format.StructDefinitionIndex
	clockDef  format.StructDefinitionIndex // native

	transfer format.FunctionHandleIndex
}

func buildFixture(t *testing.T) *fixture {
	t.Helper()

	addr1 := types.MustAddress("0x1")
	addr2 := types.MustAddress("0x2")

	b, err := format.NewModuleBuilder(addr2, types.MustIdentifier("coin"))
	if err != nil {
		t.Fatalf("NewModuleBuilder: %v", err)
	}

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("build fixture: %v", err)
		}
	}

	_, err = b.AddModuleHandle(addr1, types.MustIdentifier("option"))
	must(err)
	_, err = b.AddModuleHandle(addr2, types.MustIdentifier("balance"))
	must(err)
	must(b.AddFriendDecl(addr2, types.MustIdentifier("treasury")))

	fx := &fixture{}

	fx.coin, err = b.AddStructHandle(0, types.MustIdentifier("Coin"),
		format.AbilitySet(format.AbilityStore|format.AbilityKey),
		[]format.StructTypeParameter{{IsPhantom: true}})
	must(err)

	fx.pair, err = b.AddStructHandle(0, types.MustIdentifier("Pair"),
		format.AbilitySetPrimitives,
		[]format.StructTypeParameter{{}, {}})
	must(err)

	fx.wallet, err = b.AddStructHandle(0, types.MustIdentifier("Wallet"),
		format.AbilitySet(format.AbilityKey), nil)
	must(err)

	fx.marker, err = b.AddStructHandle(0, types.MustIdentifier("Marker"),
		format.AbilitySetAll,
		[]format.StructTypeParameter{{IsPhantom: true}})
	must(err)

	fx.hot, err = b.AddStructHandle(0, types.MustIdentifier("Hot"), format.AbilitySetEmpty, nil)
	must(err)

	clock, err := b.AddStructHandle(0, types.MustIdentifier("Clock"),
		format.AbilitySet(format.AbilityKey), nil)
	must(err)

	fx.coinDef, err = b.AddStructDef(fx.coin, []format.FieldSpec{
		{Name: types.MustIdentifier("value"), Type: format.SignatureToken{Kind: format.TokenU64}},
	})
	must(err)

	fx.walletDef, err = b.AddStructDef(fx.wallet, []format.FieldSpec{
		{Name: types.MustIdentifier("balance"), Type: format.SignatureToken{Kind: format.TokenU64}},
	})
	must(err)

	fx.clockDef, err = b.AddNativeStructDef(clock)
	must(err)

	fx.transfer, err = b.AddFunctionHandle(0, types.MustIdentifier("transfer"),
		format.Signature{
			{Kind: format.TokenAddress},
			{Kind: format.TokenU64},
		},
		format.Signature{}, nil)
	must(err)

	_, err = b.AddFunctionDef(fx.transfer, format.VisibilityPublic, true, nil,
		format.Signature{{Kind: format.TokenU64}}, []byte{0x01, 0x02})
	must(err)

	_, err = b.AddConstant(format.SignatureToken{Kind: format.TokenU64}, []byte{0, 0, 0, 0, 0, 0, 0, 1})
	must(err)

	fx.module = b.Build()
	return fx
}
