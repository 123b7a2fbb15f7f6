package format

import "github.com/wippyai/move-binary-format/types"

// Binary format versions. Version is carried on every CompiledModule and
// gates which features a deserializer accepts; this layer only exposes it.
const (
	Version1 uint32 = 1
	Version2 uint32 = 2
	Version3 uint32 = 3
	Version4 uint32 = 4
	Version5 uint32 = 5
	Version6 uint32 = 6
	Version7 uint32 = 7

	VersionMin = Version1
	VersionMax = Version7
)

// CompiledModule is the in-memory representation of a decoded module.
//
// Every pool is an ordered, 0-based, densely indexed sequence. Index fields
// throughout the model are positions into a specific pool determined by the
// index's type. A CompiledModule is populated once by the deserializer and
// never mutated afterward; it is safe to share across goroutines for reads.
type CompiledModule struct {
	// Version of the binary format this module was decoded from.
	Version uint32

	// SelfModuleHandleIndex is the handle describing this module itself.
	SelfModuleHandleIndex ModuleHandleIndex

	ModuleHandles   []ModuleHandle
	StructHandles   []StructHandle
	FunctionHandles []FunctionHandle
	FieldHandles    []FieldHandle

	FriendDecls []ModuleHandle

	StructDefInstantiations []StructDefInstantiation
	FunctionInstantiations  []FunctionInstantiation
	FieldInstantiations     []FieldInstantiation

	Signatures []Signature

	Identifiers        []types.Identifier
	AddressIdentifiers []types.AccountAddress
	ConstantPool       []Constant

	StructDefs   []StructDefinition
	FunctionDefs []FunctionDefinition
}

// ModuleHandle is a reference to a module, either this one or a dependency.
type ModuleHandle struct {
	// Address is the index of the publishing address in AddressIdentifiers.
	Address AddressIdentifierIndex
	// Name is the index of the module name in Identifiers.
	Name IdentifierIndex
}

// StructTypeParameter declares one generic parameter of a struct handle.
type StructTypeParameter struct {
	// Constraints are the abilities any type argument must satisfy.
	Constraints AbilitySet
	// IsPhantom marks a parameter that never appears in the struct's
	// representation and therefore does not constrain its abilities.
	IsPhantom bool
}

// StructHandle declares a struct's identity, generic arity, and ability
// contract without its field layout.
type StructHandle struct {
	// Module is the handle of the module declaring the struct.
	Module ModuleHandleIndex
	// Name is the index of the struct name in Identifiers.
	Name IdentifierIndex
	// Abilities declared on the struct.
	Abilities AbilitySet
	// TypeParameters declared on the struct, in order.
	TypeParameters []StructTypeParameter
}

// FunctionHandle declares a function's external signature.
type FunctionHandle struct {
	// Module is the handle of the module declaring the function.
	Module ModuleHandleIndex
	// Name is the index of the function name in Identifiers.
	Name IdentifierIndex
	// Parameters is the signature holding the argument types.
	Parameters SignatureIndex
	// Return is the signature holding the return types.
	Return SignatureIndex
	// TypeParameters holds the ability constraints of each declared
	// type parameter, in order.
	TypeParameters []AbilitySet
}

// FieldHandle locates one field within a struct definition.
type FieldHandle struct {
	// Owner is the struct definition declaring the field.
	Owner StructDefinitionIndex
	// Field is the offset of the field within the owner's field list.
	Field MemberCount
}

// StructDefInstantiation pairs a generic struct definition with concrete
// type arguments.
type StructDefInstantiation struct {
	Def StructDefinitionIndex
	// TypeParameters is the signature holding the type argument tokens.
	TypeParameters SignatureIndex
}

// FunctionInstantiation pairs a generic function handle with concrete
// type arguments.
type FunctionInstantiation struct {
	Handle FunctionHandleIndex
	// TypeParameters is the signature holding the type argument tokens.
	TypeParameters SignatureIndex
}

// FieldInstantiation pairs a field handle on a generic struct with the
// enclosing instantiation's type arguments.
type FieldInstantiation struct {
	Handle FieldHandleIndex
	// TypeParameters is the signature holding the type argument tokens.
	TypeParameters SignatureIndex
}

// Signature is an ordered list of types, used for function parameters,
// returns, locals, and instantiation type arguments.
type Signature []SignatureToken

// Constant is a compile-time literal: a type paired with its serialized
// representation. The data is opaque to this layer.
type Constant struct {
	Type SignatureToken
	Data []byte
}

// FieldDefinition declares one named, typed field of a struct.
type FieldDefinition struct {
	// Name is the index of the field name in Identifiers.
	Name IdentifierIndex
	// Signature is the field's type.
	Signature SignatureToken
}

// Field information kinds.
// FieldsNative marks a struct whose layout lives in the host; FieldsDeclared
// carries an explicit field list.
const (
	FieldsNative   byte = 0
	FieldsDeclared byte = 1
)

// StructFieldInformation describes a struct definition's body: either a
// native struct or a declared list of fields.
type StructFieldInformation struct {
	Fields []FieldDefinition
	Kind   byte
}

// StructDefinition binds a struct handle to its concrete body.
type StructDefinition struct {
	// StructHandle is the handle this definition implements.
	StructHandle StructHandleIndex
	// FieldInformation is the struct's body.
	FieldInformation StructFieldInformation
}

// DeclaredFieldCount returns the number of declared fields, or 0 for a
// native struct.
func (d *StructDefinition) DeclaredFieldCount() int {
	if d.FieldInformation.Kind != FieldsDeclared {
		return 0
	}
	return len(d.FieldInformation.Fields)
}

// FieldAt returns the i-th declared field, or nil if the struct is native
// or the offset is out of range.
func (d *StructDefinition) FieldAt(i MemberCount) *FieldDefinition {
	if d.FieldInformation.Kind != FieldsDeclared || int(i) >= len(d.FieldInformation.Fields) {
		return nil
	}
	return &d.FieldInformation.Fields[i]
}

// Visibility restricts where a function may be invoked from.
type Visibility byte

const (
	// VisibilityPrivate functions can only be called within the module.
	VisibilityPrivate Visibility = 0
	// VisibilityPublic functions can be called from any module.
	VisibilityPublic Visibility = 1
	// VisibilityFriend functions can be called from declared friend modules.
	VisibilityFriend Visibility = 2
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityPublic:
		return "public"
	case VisibilityFriend:
		return "friend"
	default:
		return "unknown"
	}
}

// CodeUnit holds a function body: a locals signature plus the serialized
// bytecode. Instruction decoding belongs to the interpreter, so the body
// stays opaque here.
type CodeUnit struct {
	// Locals is the signature declaring the function's local slots.
	Locals SignatureIndex
	// Code is the raw bytecode.
	Code []byte
}

// FunctionDefinition binds a function handle to its body and access policy.
type FunctionDefinition struct {
	// Function is the handle this definition implements.
	Function FunctionHandleIndex
	// Visibility of the function.
	Visibility Visibility
	// IsEntry marks a function callable as a transaction entry point.
	IsEntry bool
	// AcquiresGlobalResources lists the struct definitions the body reads
	// from or writes to in global storage.
	AcquiresGlobalResources []StructDefinitionIndex
	// Code is nil for native functions.
	Code *CodeUnit
}

// IsNative reports whether the function's implementation lives in the host.
func (d *FunctionDefinition) IsNative() bool {
	return d.Code == nil
}
