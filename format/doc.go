// Package format defines the in-memory representation of a compiled
// module and the read-only operations layered on top of it.
//
// # Module Structure
//
// A CompiledModule is a set of index pools populated once by a
// deserializer and immutable afterward:
//
//	module.ModuleHandles        []ModuleHandle        // this module and its dependencies
//	module.StructHandles        []StructHandle        // struct identity + ability contracts
//	module.FunctionHandles      []FunctionHandle      // function signatures
//	module.Signatures           []Signature           // type lists
//	module.Identifiers          []types.Identifier    // interned names
//	module.AddressIdentifiers   []types.AccountAddress
//	module.StructDefs           []StructDefinition    // handle -> field layout
//	module.FunctionDefs         []FunctionDefinition  // handle -> body
//
// Handles and definitions reference each other by typed indices into these
// pools. The accessor methods (ModuleHandleAt, StructHandleAt, ...) resolve
// indices and re-validate the transitive invariants of what they return;
// those checks are assertions, not recoverable errors, because a module is
// expected to have passed structural verification before reaching this
// layer. Build with -tags movedebug to enable them.
//
// # Abilities
//
// AbilitySet is the capability contract of a type: copy, drop, store, key.
// Abilities computes the effective ability set of an arbitrary type
// expression, recursing through vectors and struct instantiations:
//
//	abilities, err := module.Abilities(&token, constraints)
//
// Generic containers keep an ability only if every non-phantom type
// argument has it too; see PolymorphicAbilities.
//
// # Wrappers
//
// ModuleAccess abstracts over anything that can vend a *CompiledModule.
// ModuleBuilder is one such wrapper: it assembles a module pool by pool
// and exposes the accessor surface while construction is in progress.
//
// # Thread Safety
//
// CompiledModule is immutable after construction and safe for concurrent
// reads. ModuleBuilder is NOT safe for concurrent use.
package format
