// Package valueobjects_test tests value objects through their public API.
package valueobjects_test

import (
	"testing"

	"github.com/Haleralex/pricecalc/internal/domain/valueobjects"
)

// TestNewCurrency_Success tests successful currency creation.
func TestNewCurrency_Success(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "EUR", code: "EUR", want: "EUR"},
		{name: "USD", code: "USD", want: "USD"},
		{name: "GBP", code: "GBP", want: "GBP"},
		{name: "lowercase", code: "eur", want: "EUR"},
		{name: "mixed case", code: "uSd", want: "USD"},
		{name: "padded", code: " gbp ", want: "GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curr, err := valueobjects.NewCurrency(tt.code)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if curr.Code() != tt.want {
				t.Errorf("Code() = %v, want %v", curr.Code(), tt.want)
			}
		})
	}
}

// TestNewCurrency_Invalid tests invalid currency codes.
func TestNewCurrency_Invalid(t *testing.T) {
	invalidCodes := []string{
		"XXX",
		"",
		"JPY",
		"BTC",
		"EURO",
		"123",
	}

	for _, code := range invalidCodes {
		t.Run(code, func(t *testing.T) {
			_, err := valueobjects.NewCurrency(code)
			if err != valueobjects.ErrInvalidCurrency {
				t.Errorf("Expected ErrInvalidCurrency, got %v", err)
			}
			if valueobjects.IsSupportedCurrency(code) {
				t.Errorf("IsSupportedCurrency(%q) = true", code)
			}
		})
	}
}

func TestSupportedCurrencyCodes(t *testing.T) {
	codes := valueobjects.SupportedCurrencyCodes()
	want := []string{"EUR", "USD", "GBP"}
	if len(codes) != len(want) {
		t.Fatalf("got %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %s, want %s", i, codes[i], want[i])
		}
	}

	// Callers cannot mutate the package list.
	codes[0] = "GBP"
	if valueobjects.SupportedCurrencyCodes()[0] != "EUR" {
		t.Error("SupportedCurrencyCodes must return a copy")
	}
}

func TestCurrency_IsZero(t *testing.T) {
	if !(valueobjects.Currency{}).IsZero() {
		t.Error("zero Currency should report IsZero")
	}
	if valueobjects.EUR.IsZero() {
		t.Error("EUR should not report IsZero")
	}
	if curr, err := valueobjects.NewCurrency("jpy"); err == nil || !curr.IsZero() {
		t.Errorf("NewCurrency(jpy) = %v, %v", curr, err)
	}
}
