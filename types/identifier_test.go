package types_test

import (
	"testing"

	"github.com/wippyai/move-binary-format/types"
)

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"Coin", true},
		{"coin", true},
		{"_", true},
		{"_reserved", true},
		{"snake_case_99", true},
		{"UPPER", true},
		{"", false},
		{"9lives", false},
		{"has-dash", false},
		{"has space", false},
		{"ünïcode", false},
		{"a::b", false},
	}

	for _, tt := range tests {
		if got := types.ValidIdentifier(tt.in); got != tt.valid {
			t.Errorf("ValidIdentifier(%q) = %v, want %v", tt.in, got, tt.valid)
		}
	}
}

func TestNewIdentifier(t *testing.T) {
	id, err := types.NewIdentifier("Balance")
	if err != nil {
		t.Fatalf("NewIdentifier: %v", err)
	}
	if id.String() != "Balance" {
		t.Errorf("String() = %q, want %q", id.String(), "Balance")
	}
	if !id.Valid() {
		t.Error("Valid() = false for well-formed identifier")
	}

	if _, err := types.NewIdentifier("1bad"); err == nil {
		t.Error("NewIdentifier(\"1bad\") expected error")
	}
}

func TestModuleIDString(t *testing.T) {
	id := types.NewModuleID(types.MustAddress("0x2"), types.MustIdentifier("coin"))
	if got := id.String(); got != "0x2::coin" {
		t.Errorf("ModuleID.String() = %q, want %q", got, "0x2::coin")
	}

	other := types.NewModuleID(types.MustAddress("0x2"), types.MustIdentifier("coin"))
	if id != other {
		t.Error("identical module ids compare unequal")
	}
}
