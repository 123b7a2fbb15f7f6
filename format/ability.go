package format

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/move-binary-format/errors"
)

// Ability is a single capability a type can carry: it controls whether
// values may be duplicated, discarded, stored, or used as a storage key.
type Ability uint8

const (
	// AbilityCopy allows values to be duplicated.
	AbilityCopy Ability = 0x1
	// AbilityDrop allows values to be discarded.
	AbilityDrop Ability = 0x2
	// AbilityStore allows values to be persisted inside other values.
	AbilityStore Ability = 0x4
	// AbilityKey allows values to serve as top-level global storage keys.
	AbilityKey Ability = 0x8
)

func (a Ability) String() string {
	switch a {
	case AbilityCopy:
		return "copy"
	case AbilityDrop:
		return "drop"
	case AbilityStore:
		return "store"
	case AbilityKey:
		return "key"
	default:
		return "unknown"
	}
}

// AbilitySet is a set of abilities, stored as a bitset.
type AbilitySet uint8

const (
	// AbilitySetEmpty is the empty ability set.
	AbilitySetEmpty AbilitySet = 0
	// AbilitySetPrimitives is the ability set of primitive types
	// (bool, integers, address).
	AbilitySetPrimitives = AbilitySet(AbilityCopy | AbilityDrop | AbilityStore)
	// AbilitySetReferences is the ability set of references.
	AbilitySetReferences = AbilitySet(AbilityCopy | AbilityDrop)
	// AbilitySetSigner is the ability set of the signer type.
	AbilitySetSigner = AbilitySet(AbilityDrop)
	// AbilitySetVector is the declared ability set of the built-in vector
	// type constructor.
	AbilitySetVector = AbilitySet(AbilityCopy | AbilityDrop | AbilityStore)
	// AbilitySetAll contains every ability.
	AbilitySetAll = AbilitySet(AbilityCopy | AbilityDrop | AbilityStore | AbilityKey)
)

// allAbilities is the iteration order used by String.
var allAbilities = [...]Ability{AbilityCopy, AbilityDrop, AbilityStore, AbilityKey}

// Has reports whether the set contains a.
func (s AbilitySet) Has(a Ability) bool {
	return s&AbilitySet(a) != 0
}

// HasCopy reports whether the set contains the copy ability.
func (s AbilitySet) HasCopy() bool { return s.Has(AbilityCopy) }

// HasDrop reports whether the set contains the drop ability.
func (s AbilitySet) HasDrop() bool { return s.Has(AbilityDrop) }

// HasStore reports whether the set contains the store ability.
func (s AbilitySet) HasStore() bool { return s.Has(AbilityStore) }

// HasKey reports whether the set contains the key ability.
func (s AbilitySet) HasKey() bool { return s.Has(AbilityKey) }

// Union returns the set containing the abilities of both sets.
func (s AbilitySet) Union(o AbilitySet) AbilitySet {
	return s | o
}

// Intersect returns the set containing the abilities present in both sets.
func (s AbilitySet) Intersect(o AbilitySet) AbilitySet {
	return s & o
}

// Remove returns the set without a.
func (s AbilitySet) Remove(a Ability) AbilitySet {
	return s &^ AbilitySet(a)
}

// IsSubset reports whether every ability in s is also in o.
func (s AbilitySet) IsSubset(o AbilitySet) bool {
	return s&o == s
}

// IsEmpty reports whether the set contains no abilities.
func (s AbilitySet) IsEmpty() bool {
	return s == AbilitySetEmpty
}

// String renders the set as "[copy, drop]".
func (s AbilitySet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for _, a := range allAbilities {
		if !s.Has(a) {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
		first = false
	}
	b.WriteByte(']')
	return b.String()
}

// PolymorphicAbilities computes the ability set of a generic type
// instantiation. An ability survives iff the declared set contains it and
// every non-phantom type argument's set contains it as well. Phantom
// positions impose no constraint: they are proven never to be stored in
// the container's representation.
//
// phantom and typeArgs must have equal length; a mismatch is a recoverable
// validation error because argument lists originate at instantiation sites
// that may not have been verified yet.
func PolymorphicAbilities(declared AbilitySet, phantom []bool, typeArgs []AbilitySet) (AbilitySet, error) {
	if len(phantom) != len(typeArgs) {
		Logger().Debug("type argument arity mismatch",
			zap.Int("declared", len(phantom)),
			zap.Int("given", len(typeArgs)))
		return AbilitySetEmpty, errors.ArityMismatch(errors.PhaseVerify, len(phantom), len(typeArgs))
	}
	abilities := declared
	for i, isPhantom := range phantom {
		if isPhantom {
			continue
		}
		abilities = abilities.Intersect(typeArgs[i])
	}
	return abilities, nil
}
