package main

import (
	"github.com/wippyai/move-binary-format/format"
	"github.com/wippyai/move-binary-format/types"
)

// buildSampleModule assembles a representative coin module so the
// inspector has something to walk. There is no deserializer in this
// library, so the fixture is built through the ModuleBuilder the same way
// the tests build theirs.
func buildSampleModule() (*format.CompiledModule, error) {
	std := types.MustAddress("0x1")
	self := types.MustAddress("0x2")

	b, err := format.NewModuleBuilder(self, types.MustIdentifier("coin"))
	if err != nil {
		return nil, err
	}

	if _, err := b.AddModuleHandle(std, types.MustIdentifier("option")); err != nil {
		return nil, err
	}
	if _, err := b.AddModuleHandle(self, types.MustIdentifier("balance")); err != nil {
		return nil, err
	}
	if err := b.AddFriendDecl(self, types.MustIdentifier("treasury")); err != nil {
		return nil, err
	}

	coin, err := b.AddStructHandle(0, types.MustIdentifier("Coin"),
		format.AbilitySet(format.AbilityStore|format.AbilityKey),
		[]format.StructTypeParameter{{IsPhantom: true}})
	if err != nil {
		return nil, err
	}
	supply, err := b.AddStructHandle(0, types.MustIdentifier("Supply"),
		format.AbilitySet(format.AbilityStore),
		[]format.StructTypeParameter{{IsPhantom: true}})
	if err != nil {
		return nil, err
	}
	pair, err := b.AddStructHandle(0, types.MustIdentifier("Pair"),
		format.AbilitySetPrimitives,
		[]format.StructTypeParameter{{}, {}})
	if err != nil {
		return nil, err
	}
	treasuryCap, err := b.AddStructHandle(0, types.MustIdentifier("TreasuryCap"),
		format.AbilitySet(format.AbilityStore|format.AbilityKey),
		[]format.StructTypeParameter{{IsPhantom: true}})
	if err != nil {
		return nil, err
	}
	guardian, err := b.AddStructHandle(0, types.MustIdentifier("Guardian"), format.AbilitySetEmpty, nil)
	if err != nil {
		return nil, err
	}

	u64 := format.SignatureToken{Kind: format.TokenU64}

	if _, err := b.AddStructDef(coin, []format.FieldSpec{
		{Name: types.MustIdentifier("value"), Type: u64},
	}); err != nil {
		return nil, err
	}
	if _, err := b.AddStructDef(supply, []format.FieldSpec{
		{Name: types.MustIdentifier("total"), Type: u64},
	}); err != nil {
		return nil, err
	}
	if _, err := b.AddStructDef(pair, []format.FieldSpec{
		{Name: types.MustIdentifier("first"), Type: format.TypeParameterToken(0)},
		{Name: types.MustIdentifier("second"), Type: format.TypeParameterToken(1)},
	}); err != nil {
		return nil, err
	}
	if _, err := b.AddStructDef(treasuryCap, []format.FieldSpec{
		{Name: types.MustIdentifier("supply"), Type: format.StructInstantiationToken(supply, format.TypeParameterToken(0))},
	}); err != nil {
		return nil, err
	}
	if _, err := b.AddNativeStructDef(guardian); err != nil {
		return nil, err
	}

	mint, err := b.AddFunctionHandle(0, types.MustIdentifier("mint"),
		format.Signature{
			format.MutableReferenceToken(format.StructInstantiationToken(treasuryCap, format.TypeParameterToken(0))),
			u64,
		},
		format.Signature{format.StructInstantiationToken(coin, format.TypeParameterToken(0))},
		[]format.AbilitySet{format.AbilitySetEmpty})
	if err != nil {
		return nil, err
	}
	if _, err := b.AddFunctionDef(mint, format.VisibilityPublic, false, nil,
		format.Signature{u64}, []byte{0x0B, 0x00, 0x01, 0x02}); err != nil {
		return nil, err
	}

	value, err := b.AddFunctionHandle(0, types.MustIdentifier("value"),
		format.Signature{format.ReferenceToken(format.StructInstantiationToken(coin, format.TypeParameterToken(0)))},
		format.Signature{u64},
		[]format.AbilitySet{format.AbilitySetEmpty})
	if err != nil {
		return nil, err
	}
	if _, err := b.AddFunctionDef(value, format.VisibilityPublic, false, nil, nil, []byte{0x0B, 0x00}); err != nil {
		return nil, err
	}

	if _, err := b.AddConstant(u64, []byte{0x40, 0x42, 0x0F, 0, 0, 0, 0, 0}); err != nil {
		return nil, err
	}

	return b.Build(), nil
}
