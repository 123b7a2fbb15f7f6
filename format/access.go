package format

import (
	"fmt"

	"github.com/wippyai/move-binary-format/types"
)

// ModuleAccess is implemented by any type that owns or can vend a compiled
// module: the module itself, a cached entry, or a module under
// construction. Every accessor operation is a method on *CompiledModule,
// so a wrapper satisfying this interface inherits the full surface either
// through embedding or through an AsModule call at the use site.
//
// Implementations must be safe for concurrent reads; verification of many
// modules proceeds in parallel.
type ModuleAccess interface {
	// AsModule returns the underlying compiled module.
	AsModule() *CompiledModule
}

// AsModule returns the module itself, satisfying ModuleAccess.
func (m *CompiledModule) AsModule() *CompiledModule {
	return m
}

// assertf panics with a formatted message when an internal invariant is
// violated. Active only under the movedebug build tag; without it, a
// malformed index still fails loudly through the runtime's slice bounds
// check, just with a less descriptive message.
func assertf(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		panic("format: invariant violation: " + fmt.Sprintf(format, args...))
	}
}

// SelfHandleIdx returns the index of the module's own handle.
func (m *CompiledModule) SelfHandleIdx() ModuleHandleIndex {
	return m.SelfModuleHandleIndex
}

// SelfHandle returns the handle describing the module itself.
func (m *CompiledModule) SelfHandle() *ModuleHandle {
	handle := m.ModuleHandleAt(m.SelfHandleIdx())
	assertf(int(handle.Address) < len(m.AddressIdentifiers), "self handle address %d out of range", handle.Address)
	assertf(int(handle.Name) < len(m.Identifiers), "self handle name %d out of range", handle.Name)
	return handle
}

// Name returns the name of the module.
func (m *CompiledModule) Name() types.Identifier {
	return m.IdentifierAt(m.SelfHandle().Name)
}

// Address returns the address the module is published at.
func (m *CompiledModule) Address() types.AccountAddress {
	return m.AddressIdentifierAt(m.SelfHandle().Address)
}

// StructName resolves a struct definition's index to its declared name.
func (m *CompiledModule) StructName(idx StructDefinitionIndex) types.Identifier {
	def := m.StructDefAt(idx)
	handle := m.StructHandleAt(def.StructHandle)
	return m.IdentifierAt(handle.Name)
}

// ModuleHandleAt returns the module handle at idx.
func (m *CompiledModule) ModuleHandleAt(idx ModuleHandleIndex) *ModuleHandle {
	handle := &m.ModuleHandles[idx]
	assertf(int(handle.Address) < len(m.AddressIdentifiers), "module handle %d: address %d out of range", idx, handle.Address)
	assertf(int(handle.Name) < len(m.Identifiers), "module handle %d: name %d out of range", idx, handle.Name)
	return handle
}

// StructHandleAt returns the struct handle at idx.
func (m *CompiledModule) StructHandleAt(idx StructHandleIndex) *StructHandle {
	handle := &m.StructHandles[idx]
	assertf(int(handle.Module) < len(m.ModuleHandles), "struct handle %d: module %d out of range", idx, handle.Module)
	return handle
}

// FunctionHandleAt returns the function handle at idx.
func (m *CompiledModule) FunctionHandleAt(idx FunctionHandleIndex) *FunctionHandle {
	handle := &m.FunctionHandles[idx]
	assertf(int(handle.Parameters) < len(m.Signatures), "function handle %d: parameters %d out of range", idx, handle.Parameters)
	assertf(int(handle.Return) < len(m.Signatures), "function handle %d: return %d out of range", idx, handle.Return)
	return handle
}

// FieldHandleAt returns the field handle at idx.
func (m *CompiledModule) FieldHandleAt(idx FieldHandleIndex) *FieldHandle {
	handle := &m.FieldHandles[idx]
	assertf(int(handle.Owner) < len(m.StructDefs), "field handle %d: owner %d out of range", idx, handle.Owner)
	return handle
}

// StructInstantiationAt returns the struct definition instantiation at idx.
func (m *CompiledModule) StructInstantiationAt(idx StructDefInstantiationIndex) *StructDefInstantiation {
	return &m.StructDefInstantiations[idx]
}

// FunctionInstantiationAt returns the function instantiation at idx.
func (m *CompiledModule) FunctionInstantiationAt(idx FunctionInstantiationIndex) *FunctionInstantiation {
	return &m.FunctionInstantiations[idx]
}

// FieldInstantiationAt returns the field instantiation at idx.
func (m *CompiledModule) FieldInstantiationAt(idx FieldInstantiationIndex) *FieldInstantiation {
	return &m.FieldInstantiations[idx]
}

// SignatureAt returns the signature at idx.
func (m *CompiledModule) SignatureAt(idx SignatureIndex) *Signature {
	return &m.Signatures[idx]
}

// IdentifierAt returns the identifier at idx.
func (m *CompiledModule) IdentifierAt(idx IdentifierIndex) types.Identifier {
	return m.Identifiers[idx]
}

// AddressIdentifierAt returns the address at idx.
func (m *CompiledModule) AddressIdentifierAt(idx AddressIdentifierIndex) types.AccountAddress {
	return m.AddressIdentifiers[idx]
}

// ConstantAt returns the constant at idx.
func (m *CompiledModule) ConstantAt(idx ConstantPoolIndex) *Constant {
	return &m.ConstantPool[idx]
}

// StructDefAt returns the struct definition at idx.
func (m *CompiledModule) StructDefAt(idx StructDefinitionIndex) *StructDefinition {
	return &m.StructDefs[idx]
}

// FunctionDefAt returns the function definition at idx.
func (m *CompiledModule) FunctionDefAt(idx FunctionDefinitionIndex) *FunctionDefinition {
	def := &m.FunctionDefs[idx]
	assertf(int(def.Function) < len(m.FunctionHandles), "function def %d: handle %d out of range", idx, def.Function)
	assertf(def.Code == nil || int(def.Code.Locals) < len(m.Signatures), "function def %d: locals signature out of range", idx)
	return def
}

// Bulk accessors expose each pool as an ordered view for iteration.
// Callers must not mutate the returned slices.

func (m *CompiledModule) ModuleHandlesView() []ModuleHandle { return m.ModuleHandles }

func (m *CompiledModule) StructHandlesView() []StructHandle { return m.StructHandles }

func (m *CompiledModule) FunctionHandlesView() []FunctionHandle { return m.FunctionHandles }

func (m *CompiledModule) FieldHandlesView() []FieldHandle { return m.FieldHandles }

func (m *CompiledModule) StructInstantiationsView() []StructDefInstantiation {
	return m.StructDefInstantiations
}

func (m *CompiledModule) FunctionInstantiationsView() []FunctionInstantiation {
	return m.FunctionInstantiations
}

func (m *CompiledModule) FieldInstantiationsView() []FieldInstantiation {
	return m.FieldInstantiations
}

func (m *CompiledModule) SignaturesView() []Signature { return m.Signatures }

func (m *CompiledModule) ConstantPoolView() []Constant { return m.ConstantPool }

func (m *CompiledModule) IdentifiersView() []types.Identifier { return m.Identifiers }

func (m *CompiledModule) AddressIdentifiersView() []types.AccountAddress {
	return m.AddressIdentifiers
}

func (m *CompiledModule) StructDefsView() []StructDefinition { return m.StructDefs }

func (m *CompiledModule) FunctionDefsView() []FunctionDefinition { return m.FunctionDefs }

func (m *CompiledModule) FriendDeclsView() []ModuleHandle { return m.FriendDecls }

// ModuleIDForHandle projects a module handle to its global module id.
func (m *CompiledModule) ModuleIDForHandle(handle *ModuleHandle) types.ModuleID {
	return types.NewModuleID(m.AddressIdentifierAt(handle.Address), m.IdentifierAt(handle.Name))
}

// SelfID returns the module's own global id.
func (m *CompiledModule) SelfID() types.ModuleID {
	return m.ModuleIDForHandle(m.SelfHandle())
}

// ImmediateDependencies returns the module ids of every module handle
// except the module's own, preserving pool order. Handles are compared by
// value, so two distinct entries resolving to the same id both survive.
func (m *CompiledModule) ImmediateDependencies() []types.ModuleID {
	self := *m.SelfHandle()
	deps := make([]types.ModuleID, 0, len(m.ModuleHandles))
	for i := range m.ModuleHandles {
		if m.ModuleHandles[i] == self {
			continue
		}
		deps = append(deps, m.ModuleIDForHandle(&m.ModuleHandles[i]))
	}
	return deps
}

// ImmediateFriends returns the module ids of every declared friend module.
func (m *CompiledModule) ImmediateFriends() []types.ModuleID {
	friends := make([]types.ModuleID, 0, len(m.FriendDecls))
	for i := range m.FriendDecls {
		friends = append(friends, m.ModuleIDForHandle(&m.FriendDecls[i]))
	}
	return friends
}

// FindStructDef returns the first struct definition implementing the given
// handle, or nil.
func (m *CompiledModule) FindStructDef(idx StructHandleIndex) *StructDefinition {
	for i := range m.StructDefs {
		if m.StructDefs[i].StructHandle == idx {
			return &m.StructDefs[i]
		}
	}
	return nil
}

// FindStructDefByName returns the first struct definition whose resolved
// name equals name, or nil. Linear scan; struct counts per module are small
// and this path is not execution-hot.
func (m *CompiledModule) FindStructDefByName(name types.Identifier) *StructDefinition {
	for i := range m.StructDefs {
		handle := m.StructHandleAt(m.StructDefs[i].StructHandle)
		if m.IdentifierAt(handle.Name) == name {
			return &m.StructDefs[i]
		}
	}
	return nil
}
