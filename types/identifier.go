package types

import "fmt"

// Identifier is the name of a module, struct, function, or field.
// A valid identifier is non-empty, starts with a letter or underscore,
// and continues with letters, digits, or underscores.
type Identifier string

// NewIdentifier validates s and returns it as an Identifier.
func NewIdentifier(s string) (Identifier, error) {
	if !ValidIdentifier(s) {
		return "", fmt.Errorf("invalid identifier %q", s)
	}
	return Identifier(s), nil
}

// MustIdentifier validates s and panics on failure.
// Intended for tests and static initializers.
func MustIdentifier(s string) Identifier {
	id, err := NewIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ValidIdentifier reports whether s is a well-formed identifier.
func ValidIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Valid reports whether the identifier is well-formed. Useful when an
// Identifier was produced by conversion rather than NewIdentifier.
func (id Identifier) Valid() bool {
	return ValidIdentifier(string(id))
}

func (id Identifier) String() string {
	return string(id)
}
