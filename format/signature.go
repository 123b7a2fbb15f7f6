package format

import (
	"fmt"
	"strings"
)

// TokenKind discriminates SignatureToken variants.
type TokenKind uint8

const (
	TokenBool TokenKind = iota
	TokenU8
	TokenU16
	TokenU32
	TokenU64
	TokenU128
	TokenU256
	TokenAddress
	TokenSigner
	TokenVector
	TokenStruct
	TokenStructInstantiation
	TokenReference
	TokenMutableReference
	TokenTypeParameter
)

var tokenKindNames = [...]string{
	TokenBool:                "bool",
	TokenU8:                  "u8",
	TokenU16:                 "u16",
	TokenU32:                 "u32",
	TokenU64:                 "u64",
	TokenU128:                "u128",
	TokenU256:                "u256",
	TokenAddress:             "address",
	TokenSigner:              "signer",
	TokenVector:              "vector",
	TokenStruct:              "struct",
	TokenStructInstantiation: "struct_instantiation",
	TokenReference:           "reference",
	TokenMutableReference:    "mutable_reference",
	TokenTypeParameter:       "type_parameter",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// SignatureToken is a type expression. It is a tree: Vector and the two
// reference variants hold one nested token through Elem, and
// StructInstantiation holds a list of type arguments.
type SignatureToken struct {
	// Elem is the nested token for Vector, Reference, and MutableReference.
	Elem *SignatureToken
	// TypeArgs are the type arguments for StructInstantiation.
	TypeArgs []SignatureToken
	// Struct is the handle for Struct and StructInstantiation.
	Struct StructHandleIndex
	// TypeParam is the position for TypeParameter.
	TypeParam TypeParameterIndex
	Kind      TokenKind
}

// Constructors for the composite variants. Primitive tokens are cheap to
// build as literals: SignatureToken{Kind: TokenU64}.

// VectorToken returns a vector type over elem.
func VectorToken(elem SignatureToken) SignatureToken {
	return SignatureToken{Kind: TokenVector, Elem: &elem}
}

// ReferenceToken returns an immutable reference to inner.
func ReferenceToken(inner SignatureToken) SignatureToken {
	return SignatureToken{Kind: TokenReference, Elem: &inner}
}

// MutableReferenceToken returns a mutable reference to inner.
func MutableReferenceToken(inner SignatureToken) SignatureToken {
	return SignatureToken{Kind: TokenMutableReference, Elem: &inner}
}

// StructToken returns a non-generic struct type.
func StructToken(idx StructHandleIndex) SignatureToken {
	return SignatureToken{Kind: TokenStruct, Struct: idx}
}

// StructInstantiationToken returns a generic struct type applied to args.
func StructInstantiationToken(idx StructHandleIndex, args ...SignatureToken) SignatureToken {
	return SignatureToken{Kind: TokenStructInstantiation, Struct: idx, TypeArgs: args}
}

// TypeParameterToken returns a reference to the i-th ambient type parameter.
func TypeParameterToken(i TypeParameterIndex) SignatureToken {
	return SignatureToken{Kind: TokenTypeParameter, TypeParam: i}
}

// IsPrimitive reports whether the token is a primitive value type
// (bool, an integer, or address).
func (t *SignatureToken) IsPrimitive() bool {
	switch t.Kind {
	case TokenBool, TokenU8, TokenU16, TokenU32, TokenU64, TokenU128, TokenU256, TokenAddress:
		return true
	default:
		return false
	}
}

// IsReference reports whether the token is a reference of either mutability.
func (t *SignatureToken) IsReference() bool {
	return t.Kind == TokenReference || t.Kind == TokenMutableReference
}

// String renders the token without resolving handles, so struct types show
// their handle index: "vector<struct[2]<u8, T0>>".
func (t *SignatureToken) String() string {
	switch t.Kind {
	case TokenVector:
		return "vector<" + t.Elem.String() + ">"
	case TokenReference:
		return "&" + t.Elem.String()
	case TokenMutableReference:
		return "&mut " + t.Elem.String()
	case TokenStruct:
		return fmt.Sprintf("struct[%d]", t.Struct)
	case TokenStructInstantiation:
		args := make([]string, len(t.TypeArgs))
		for i := range t.TypeArgs {
			args[i] = t.TypeArgs[i].String()
		}
		return fmt.Sprintf("struct[%d]<%s>", t.Struct, strings.Join(args, ", "))
	case TokenTypeParameter:
		return fmt.Sprintf("T%d", t.TypeParam)
	default:
		return t.Kind.String()
	}
}
