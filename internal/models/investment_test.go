package models

import (
	"encoding/json"
	"strings"
	"testing"

	apperrors "doblink/internal/errors"
)

func TestParseInvestmentStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    InvestmentStatus
		wantErr bool
	}{
		{"pending", InvestmentStatusPending, false},
		{"completed", InvestmentStatusCompleted, false},
		{"failed", InvestmentStatusFailed, false},
		{"Completed", "", true},
		{"cancelled", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInvestmentStatus(tt.input)
			if tt.wantErr {
				if apperrors.Code(err) != "INVALID_STATUS" {
					t.Fatalf("expected INVALID_STATUS, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvestmentDecodeRejectsUnknownStatus(t *testing.T) {
	var inv Investment
	err := json.Unmarshal([]byte(`{"id":1,"status":"refunded"}`), &inv)
	if err == nil {
		t.Fatal("expected decode error for unknown status")
	}

	err = json.Unmarshal([]byte(`{"id":1,"status":"completed"}`), &inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Status != InvestmentStatusCompleted {
		t.Errorf("expected completed, got %q", inv.Status)
	}
}

func TestTokenConfigAllows(t *testing.T) {
	cfg := TokenConfig{MinInvestment: 10_000_000, MaxInvestment: 100_000_000_000}

	tests := []struct {
		amount int64
		want   bool
	}{
		{5_000_000, false},
		{10_000_000, true},
		{50_000_000, true},
		{100_000_000_000, true},
		{200_000_000_000, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := cfg.Allows(tt.amount); got != tt.want {
			t.Errorf("Allows(%d) = %v, want %v", tt.amount, got, tt.want)
		}
	}

	inverted := TokenConfig{MinInvestment: 100, MaxInvestment: 10}
	if inverted.Allows(50) {
		t.Error("an inverted band should reject every amount")
	}
}

func TestIsValidAddress(t *testing.T) {
	valid := "G" + strings.Repeat("A", 55)
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"valid", valid, true},
		{"base32_digits", "G" + strings.Repeat("7", 55), true},
		{"too_short", valid[:55], false},
		{"too_long", valid + "A", false},
		{"wrong_prefix", "S" + strings.Repeat("A", 55), false},
		{"lowercase", "g" + strings.Repeat("a", 55), false},
		{"non_base32_digit", "G" + strings.Repeat("1", 55), false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidAddress(tt.addr); got != tt.want {
				t.Errorf("IsValidAddress(%q) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestAddressEqual(t *testing.T) {
	a := Address("G" + strings.Repeat("A", 55))
	b := Address("G" + strings.Repeat("B", 55))

	if !a.Equal(a) {
		t.Error("address should equal itself")
	}
	if a.Equal(b) {
		t.Error("distinct addresses should not be equal")
	}
	if !Address("").IsZero() {
		t.Error("empty address should be zero")
	}
}
