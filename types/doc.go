// Package types provides the core identity primitives shared across the
// binary format: account addresses, identifiers, and module ids.
//
// All three types are small comparable values. They carry no pointers and
// are safe to copy, compare with ==, and use as map keys.
package types
