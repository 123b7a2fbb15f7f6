package format

import "github.com/wippyai/move-binary-format/errors"

// Abilities computes the ability set of a type expression. constraints
// supplies the declared ability constraints of the enclosing generic
// context, one entry per type parameter, indexed by position.
//
// A type parameter index outside constraints is a caller defect and
// panics. A struct instantiation whose argument count disagrees with its
// handle's declared arity returns a validation error, because argument
// lists originate at instantiation sites that may not have been verified
// yet.
//
// Recursion depth equals the nesting depth of the type expression; callers
// analyzing untrusted types must bound that depth before calling.
func (m *CompiledModule) Abilities(ty *SignatureToken, constraints []AbilitySet) (AbilitySet, error) {
	switch ty.Kind {
	case TokenBool, TokenU8, TokenU16, TokenU32, TokenU64, TokenU128, TokenU256, TokenAddress:
		return AbilitySetPrimitives, nil

	case TokenReference, TokenMutableReference:
		return AbilitySetReferences, nil

	case TokenSigner:
		return AbilitySetSigner, nil

	case TokenTypeParameter:
		assertf(int(ty.TypeParam) < len(constraints), "type parameter %d outside constraint context of %d", ty.TypeParam, len(constraints))
		return constraints[ty.TypeParam], nil

	case TokenVector:
		elem, err := m.Abilities(ty.Elem, constraints)
		if err != nil {
			return AbilitySetEmpty, err
		}
		return PolymorphicAbilities(AbilitySetVector, []bool{false}, []AbilitySet{elem})

	case TokenStruct:
		// Non-generic struct: the declared set is authoritative.
		return m.StructHandleAt(ty.Struct).Abilities, nil

	case TokenStructInstantiation:
		handle := m.StructHandleAt(ty.Struct)
		typeArgs := make([]AbilitySet, len(ty.TypeArgs))
		for i := range ty.TypeArgs {
			abilities, err := m.Abilities(&ty.TypeArgs[i], constraints)
			if err != nil {
				return AbilitySetEmpty, err
			}
			typeArgs[i] = abilities
		}
		phantom := make([]bool, len(handle.TypeParameters))
		for i, param := range handle.TypeParameters {
			phantom[i] = param.IsPhantom
		}
		return PolymorphicAbilities(handle.Abilities, phantom, typeArgs)

	default:
		return AbilitySetEmpty, errors.Malformed(errors.PhaseVerify, "unknown signature token kind "+ty.Kind.String())
	}
}
