// Package valueobjects contains immutable value objects that represent domain concepts
// without identity. They are compared by their values, not by identity.
//
// SOLID Principles Applied:
// - SRP: Currency only handles currency validation and representation
// - OCP: Can extend supported currencies without modifying existing code
package valueobjects

import (
	"errors"
	"strings"
)

// Currency represents one of the currency codes the converter supports.
// It's a value object - immutable and validated on creation.
type Currency struct {
	code string // Private field ensures immutability
}

// Supported currencies
var (
	EUR = Currency{code: "EUR"}
	USD = Currency{code: "USD"}
	GBP = Currency{code: "GBP"}
)

// supportedCurrencies lists the allowed codes in display order.
var supportedCurrencies = []Currency{EUR, USD, GBP}

// ErrInvalidCurrency is returned when an unsupported currency code is provided.
var ErrInvalidCurrency = errors.New("invalid currency code")

// NewCurrency creates a Currency from a case-insensitive code.
//
// Example:
//
//	curr, err := NewCurrency("eur") // EUR
func NewCurrency(code string) (Currency, error) {
	code = NormalizeCurrencyCode(code)
	for _, c := range supportedCurrencies {
		if c.code == code {
			return c, nil
		}
	}
	return Currency{}, ErrInvalidCurrency
}

// NormalizeCurrencyCode trims and uppercases a raw code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsSupportedCurrency reports whether code (any casing) is supported.
func IsSupportedCurrency(code string) bool {
	_, err := NewCurrency(code)
	return err == nil
}

// SupportedCurrencyCodes returns the supported codes in display order.
func SupportedCurrencyCodes() []string {
	codes := make([]string, len(supportedCurrencies))
	for i, c := range supportedCurrencies {
		codes[i] = c.code
	}
	return codes
}

// Code returns the uppercase currency code.
func (c Currency) Code() string {
	return c.code
}

// String implements fmt.Stringer interface for readable output.
func (c Currency) String() string {
	return c.code
}

// IsZero reports whether c is the zero Currency, which stands for an
// unsupported or missing code.
func (c Currency) IsZero() bool {
	return c.code == ""
}
