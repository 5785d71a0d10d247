package valueobjects_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/Haleralex/pricecalc/internal/domain/valueobjects"
	"github.com/shopspring/decimal"
)

func TestParseNumber_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"integer string", "100", 100},
		{"decimal string", "33.33", 33.33},
		{"padded string", " 50.5 ", 50.5},
		{"negative string", "-10", -10},
		{"exponent", "1e3", 1000},
		{"zero", "0", 0},
		{"float64", 12.5, 12.5},
		{"float32", float32(0.5), 0.5},
		{"int", 42, 42},
		{"int64", int64(7), 7},
		{"uint", uint(3), 3},
		{"json number", json.Number("20"), 20},
		{"decimal", decimal.RequireFromString("5.5"), 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := valueobjects.ParseNumber(tt.raw)
			if err != nil {
				t.Fatalf("ParseNumber(%v) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want error
	}{
		{"nil", nil, valueobjects.ErrMissingNumber},
		{"empty", "", valueobjects.ErrInvalidNumber},
		{"blank", "   ", valueobjects.ErrInvalidNumber},
		{"letters", "abc", valueobjects.ErrInvalidNumber},
		{"trailing garbage", "100abc", valueobjects.ErrInvalidNumber},
		{"NaN float", math.NaN(), valueobjects.ErrNotFinite},
		{"Inf float", math.Inf(1), valueobjects.ErrNotFinite},
		{"bool", true, valueobjects.ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := valueobjects.ParseNumber(tt.raw)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseNumber(%v) error = %v, want %v", tt.raw, err, tt.want)
			}
		})
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{110.00000000000001, 110},
		{55.550000000000004, 55.55},
		{39.996, 40},
		{29.997, 30},
		{0, 0},
		{1.005, 1.01},
		{2.5, 2.5},
		{88.0, 88},
		{0.125, 0.13},
	}

	for _, tt := range tests {
		if got := valueobjects.RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if !math.IsInf(valueobjects.RoundCents(math.Inf(1)), 1) {
		t.Error("RoundCents must pass infinities through")
	}
}

func TestPercentageOf(t *testing.T) {
	if got := valueobjects.PercentageOf(100, 20); got != 20 {
		t.Errorf("PercentageOf(100, 20) = %v", got)
	}
	if got := valueobjects.PercentageOf(100, 0); got != 0 {
		t.Errorf("PercentageOf(100, 0) = %v", got)
	}
}
