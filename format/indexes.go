package format

// Index types for the module's pools. Each pool gets its own named type so
// an index can never be used against the wrong table without an explicit
// conversion.

type (
	// ModuleHandleIndex indexes into CompiledModule.ModuleHandles.
	ModuleHandleIndex uint16
	// StructHandleIndex indexes into CompiledModule.StructHandles.
	StructHandleIndex uint16
	// FunctionHandleIndex indexes into CompiledModule.FunctionHandles.
	FunctionHandleIndex uint16
	// FieldHandleIndex indexes into CompiledModule.FieldHandles.
	FieldHandleIndex uint16
	// StructDefInstantiationIndex indexes into CompiledModule.StructDefInstantiations.
	StructDefInstantiationIndex uint16
	// FunctionInstantiationIndex indexes into CompiledModule.FunctionInstantiations.
	FunctionInstantiationIndex uint16
	// FieldInstantiationIndex indexes into CompiledModule.FieldInstantiations.
	FieldInstantiationIndex uint16
	// SignatureIndex indexes into CompiledModule.Signatures.
	SignatureIndex uint16
	// IdentifierIndex indexes into CompiledModule.Identifiers.
	IdentifierIndex uint16
	// AddressIdentifierIndex indexes into CompiledModule.AddressIdentifiers.
	AddressIdentifierIndex uint16
	// ConstantPoolIndex indexes into CompiledModule.ConstantPool.
	ConstantPoolIndex uint16
	// StructDefinitionIndex indexes into CompiledModule.StructDefs.
	StructDefinitionIndex uint16
	// FunctionDefinitionIndex indexes into CompiledModule.FunctionDefs.
	FunctionDefinitionIndex uint16
	// TypeParameterIndex is the position of a type parameter within the
	// declaring struct or function handle.
	TypeParameterIndex uint16
	// MemberCount counts members (fields, type parameters) of a declaration.
	MemberCount uint16
)

// TableIndexMax is the largest value any pool index can take.
const TableIndexMax = 0xFFFF
