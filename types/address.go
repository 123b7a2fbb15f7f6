package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLen is the length of an account address in bytes.
const AddressLen = 32

// AccountAddress is a fixed-length account address.
type AccountAddress [AddressLen]byte

// ZeroAddress is the all-zero address.
var ZeroAddress = AccountAddress{}

// AddressFromBytes builds an address from a byte slice.
// The slice must be exactly AddressLen bytes.
func AddressFromBytes(b []byte) (AccountAddress, error) {
	var a AccountAddress
	if len(b) != AddressLen {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLen, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromHex parses a hex-encoded address. A leading "0x" is optional
// and short inputs are left-padded with zeros, so "0x1" and "01" are both
// valid.
func AddressFromHex(s string) (AccountAddress, error) {
	var a AccountAddress
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return a, fmt.Errorf("empty address literal")
	}
	if len(s) > 2*AddressLen {
		return a, fmt.Errorf("address literal too long: %d hex digits (max %d)", len(s), 2*AddressLen)
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("invalid address literal: %w", err)
	}
	copy(a[AddressLen-len(b):], b)
	return a, nil
}

// MustAddress parses a hex address and panics on failure.
// Intended for tests and static initializers.
func MustAddress(s string) AccountAddress {
	a, err := AddressFromHex(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes returns the address as a byte slice.
func (a AccountAddress) Bytes() []byte {
	return a[:]
}

// String returns the canonical form: "0x" followed by the full
// lowercase hex encoding.
func (a AccountAddress) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ShortString returns "0x" followed by the hex encoding with leading
// zeros trimmed. The zero address renders as "0x0".
func (a AccountAddress) ShortString() string {
	s := strings.TrimLeft(hex.EncodeToString(a[:]), "0")
	if s == "" {
		s = "0"
	}
	return "0x" + s
}

// IsZero reports whether the address is the all-zero address.
func (a AccountAddress) IsZero() bool {
	return a == ZeroAddress
}
