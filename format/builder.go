package format

import (
	"fortio.org/safecast"

	"github.com/wippyai/move-binary-format/errors"
	"github.com/wippyai/move-binary-format/types"
)

// ModuleBuilder assembles a CompiledModule pool by pool. It is the
// module-under-construction wrapper: it satisfies ModuleAccess, so the
// whole accessor surface works on a partially built module, which is how
// tests and tools assemble fixtures without a deserializer.
//
// Identifiers and addresses are interned; handles and definitions are
// appended in call order. All pool growth is guarded against overflowing
// the 16-bit index range.
type ModuleBuilder struct {
	m CompiledModule
}

// NewModuleBuilder starts a module named name published at addr, seeding
// the identifier, address, and module handle pools with the self handle.
func NewModuleBuilder(addr types.AccountAddress, name types.Identifier) (*ModuleBuilder, error) {
	if !name.Valid() {
		return nil, errors.InvalidData(errors.PhaseDeserialize, "identifiers", "invalid module name "+string(name))
	}
	b := &ModuleBuilder{}
	b.m.Version = VersionMax
	b.m.Identifiers = append(b.m.Identifiers, name)
	b.m.AddressIdentifiers = append(b.m.AddressIdentifiers, addr)
	b.m.ModuleHandles = append(b.m.ModuleHandles, ModuleHandle{Address: 0, Name: 0})
	b.m.SelfModuleHandleIndex = 0
	return b, nil
}

// AsModule exposes the module under construction, satisfying ModuleAccess.
func (b *ModuleBuilder) AsModule() *CompiledModule {
	return &b.m
}

// Build returns the assembled module. The builder must not be used after.
func (b *ModuleBuilder) Build() *CompiledModule {
	return &b.m
}

// AddIdentifier interns an identifier and returns its pool index.
func (b *ModuleBuilder) AddIdentifier(id types.Identifier) (IdentifierIndex, error) {
	if !id.Valid() {
		return 0, errors.InvalidData(errors.PhaseDeserialize, "identifiers", "invalid identifier "+string(id))
	}
	for i, existing := range b.m.Identifiers {
		if existing == id {
			return IdentifierIndex(i), nil
		}
	}
	idx, err := safecast.Conv[uint16](len(b.m.Identifiers))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "identifiers", len(b.m.Identifiers))
	}
	b.m.Identifiers = append(b.m.Identifiers, id)
	return IdentifierIndex(idx), nil
}

// AddAddress interns an account address and returns its pool index.
func (b *ModuleBuilder) AddAddress(addr types.AccountAddress) (AddressIdentifierIndex, error) {
	for i, existing := range b.m.AddressIdentifiers {
		if existing == addr {
			return AddressIdentifierIndex(i), nil
		}
	}
	idx, err := safecast.Conv[uint16](len(b.m.AddressIdentifiers))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "address_identifiers", len(b.m.AddressIdentifiers))
	}
	b.m.AddressIdentifiers = append(b.m.AddressIdentifiers, addr)
	return AddressIdentifierIndex(idx), nil
}

// AddModuleHandle appends a handle for the module named name at addr and
// returns its index. The address and name are interned as needed.
func (b *ModuleBuilder) AddModuleHandle(addr types.AccountAddress, name types.Identifier) (ModuleHandleIndex, error) {
	addrIdx, err := b.AddAddress(addr)
	if err != nil {
		return 0, err
	}
	nameIdx, err := b.AddIdentifier(name)
	if err != nil {
		return 0, err
	}
	idx, err := safecast.Conv[uint16](len(b.m.ModuleHandles))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "module_handles", len(b.m.ModuleHandles))
	}
	b.m.ModuleHandles = append(b.m.ModuleHandles, ModuleHandle{Address: addrIdx, Name: nameIdx})
	return ModuleHandleIndex(idx), nil
}

// AddFriendDecl declares the module named name at addr as a friend.
func (b *ModuleBuilder) AddFriendDecl(addr types.AccountAddress, name types.Identifier) error {
	addrIdx, err := b.AddAddress(addr)
	if err != nil {
		return err
	}
	nameIdx, err := b.AddIdentifier(name)
	if err != nil {
		return err
	}
	b.m.FriendDecls = append(b.m.FriendDecls, ModuleHandle{Address: addrIdx, Name: nameIdx})
	return nil
}

// AddStructHandle declares a struct on the module handle at module.
func (b *ModuleBuilder) AddStructHandle(module ModuleHandleIndex, name types.Identifier, abilities AbilitySet, typeParams []StructTypeParameter) (StructHandleIndex, error) {
	if int(module) >= len(b.m.ModuleHandles) {
		return 0, errors.OutOfBounds(errors.PhaseDeserialize, "module_handles", int(module), len(b.m.ModuleHandles))
	}
	nameIdx, err := b.AddIdentifier(name)
	if err != nil {
		return 0, err
	}
	idx, err := safecast.Conv[uint16](len(b.m.StructHandles))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "struct_handles", len(b.m.StructHandles))
	}
	b.m.StructHandles = append(b.m.StructHandles, StructHandle{
		Module:         module,
		Name:           nameIdx,
		Abilities:      abilities,
		TypeParameters: typeParams,
	})
	return StructHandleIndex(idx), nil
}

// FieldSpec names and types one field for AddStructDef.
type FieldSpec struct {
	Name types.Identifier
	Type SignatureToken
}

// AddStructDef binds a struct handle to a declared field list.
func (b *ModuleBuilder) AddStructDef(handle StructHandleIndex, fields []FieldSpec) (StructDefinitionIndex, error) {
	if int(handle) >= len(b.m.StructHandles) {
		return 0, errors.OutOfBounds(errors.PhaseDeserialize, "struct_handles", int(handle), len(b.m.StructHandles))
	}
	defs := make([]FieldDefinition, 0, len(fields))
	for _, f := range fields {
		nameIdx, err := b.AddIdentifier(f.Name)
		if err != nil {
			return 0, err
		}
		defs = append(defs, FieldDefinition{Name: nameIdx, Signature: f.Type})
	}
	idx, err := safecast.Conv[uint16](len(b.m.StructDefs))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "struct_defs", len(b.m.StructDefs))
	}
	b.m.StructDefs = append(b.m.StructDefs, StructDefinition{
		StructHandle:     handle,
		FieldInformation: StructFieldInformation{Kind: FieldsDeclared, Fields: defs},
	})
	return StructDefinitionIndex(idx), nil
}

// AddNativeStructDef binds a struct handle to a native body.
func (b *ModuleBuilder) AddNativeStructDef(handle StructHandleIndex) (StructDefinitionIndex, error) {
	if int(handle) >= len(b.m.StructHandles) {
		return 0, errors.OutOfBounds(errors.PhaseDeserialize, "struct_handles", int(handle), len(b.m.StructHandles))
	}
	idx, err := safecast.Conv[uint16](len(b.m.StructDefs))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "struct_defs", len(b.m.StructDefs))
	}
	b.m.StructDefs = append(b.m.StructDefs, StructDefinition{
		StructHandle:     handle,
		FieldInformation: StructFieldInformation{Kind: FieldsNative},
	})
	return StructDefinitionIndex(idx), nil
}

// AddSignature appends a signature and returns its index.
func (b *ModuleBuilder) AddSignature(sig Signature) (SignatureIndex, error) {
	idx, err := safecast.Conv[uint16](len(b.m.Signatures))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "signatures", len(b.m.Signatures))
	}
	b.m.Signatures = append(b.m.Signatures, sig)
	return SignatureIndex(idx), nil
}

// AddFunctionHandle declares a function on the module handle at module.
// The parameter and return signatures are appended to the signature pool.
func (b *ModuleBuilder) AddFunctionHandle(module ModuleHandleIndex, name types.Identifier, params, returns Signature, typeParams []AbilitySet) (FunctionHandleIndex, error) {
	if int(module) >= len(b.m.ModuleHandles) {
		return 0, errors.OutOfBounds(errors.PhaseDeserialize, "module_handles", int(module), len(b.m.ModuleHandles))
	}
	nameIdx, err := b.AddIdentifier(name)
	if err != nil {
		return 0, err
	}
	paramsIdx, err := b.AddSignature(params)
	if err != nil {
		return 0, err
	}
	returnsIdx, err := b.AddSignature(returns)
	if err != nil {
		return 0, err
	}
	idx, err := safecast.Conv[uint16](len(b.m.FunctionHandles))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "function_handles", len(b.m.FunctionHandles))
	}
	b.m.FunctionHandles = append(b.m.FunctionHandles, FunctionHandle{
		Module:         module,
		Name:           nameIdx,
		Parameters:     paramsIdx,
		Return:         returnsIdx,
		TypeParameters: typeParams,
	})
	return FunctionHandleIndex(idx), nil
}

// AddFunctionDef binds a function handle to a body. A nil code slice
// produces a native function definition.
func (b *ModuleBuilder) AddFunctionDef(handle FunctionHandleIndex, vis Visibility, isEntry bool, acquires []StructDefinitionIndex, locals Signature, code []byte) (FunctionDefinitionIndex, error) {
	if int(handle) >= len(b.m.FunctionHandles) {
		return 0, errors.OutOfBounds(errors.PhaseDeserialize, "function_handles", int(handle), len(b.m.FunctionHandles))
	}
	def := FunctionDefinition{
		Function:                handle,
		Visibility:              vis,
		IsEntry:                 isEntry,
		AcquiresGlobalResources: acquires,
	}
	if code != nil {
		localsIdx, err := b.AddSignature(locals)
		if err != nil {
			return 0, err
		}
		def.Code = &CodeUnit{Locals: localsIdx, Code: code}
	}
	idx, err := safecast.Conv[uint16](len(b.m.FunctionDefs))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "function_defs", len(b.m.FunctionDefs))
	}
	b.m.FunctionDefs = append(b.m.FunctionDefs, def)
	return FunctionDefinitionIndex(idx), nil
}

// AddConstant appends a typed constant and returns its index.
func (b *ModuleBuilder) AddConstant(tok SignatureToken, data []byte) (ConstantPoolIndex, error) {
	idx, err := safecast.Conv[uint16](len(b.m.ConstantPool))
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDeserialize, "constant_pool", len(b.m.ConstantPool))
	}
	b.m.ConstantPool = append(b.m.ConstantPool, Constant{Type: tok, Data: data})
	return ConstantPoolIndex(idx), nil
}
