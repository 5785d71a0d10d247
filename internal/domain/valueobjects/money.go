// Package valueobjects - amounts and percentages as they enter and leave the calculators.
//
// Inputs arrive as query strings or loosely typed numbers; outputs are
// monetary amounts rounded to cents. Parsing and rounding go through
// shopspring/decimal so that "0.1" is read as 0.1 and 55.550000000000004
// is reported as 55.55.
package valueobjects

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CentsPlaces is the number of decimal places of every output amount.
const CentsPlaces = 2

// Common errors for numeric parsing
var (
	ErrMissingNumber = errors.New("number is missing")
	ErrInvalidNumber = errors.New("invalid number format")
	ErrNotFinite     = errors.New("number is not finite")
)

// ParseNumber interprets a raw input as a finite real number.
//
// Accepted inputs: decimal strings ("100", "33.33", "1e3", surrounding
// spaces ignored), Go integer and float types, json.Number and
// decimal.Decimal. NaN and infinities are rejected.
func ParseNumber(raw any) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, ErrMissingNumber
	case string:
		return parseDecimalString(v)
	case json.Number:
		return parseDecimalString(v.String())
	case decimal.Decimal:
		return finite(v.InexactFloat64())
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case *string:
		if v == nil {
			return 0, ErrMissingNumber
		}
		return parseDecimalString(*v)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidNumber, raw)
	}
}

func parseDecimalString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return finite(d.InexactFloat64())
}

func finite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotFinite
	}
	return f, nil
}

// RoundCents rounds an amount to two decimal places, half away from zero,
// using the shortest decimal representation of f.
// Non-finite values are returned unchanged.
func RoundCents(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	return decimal.NewFromFloat(f).Round(CentsPlaces).InexactFloat64()
}

// Percentage bounds shared by VAT and discount rules.
const (
	MinPercentage = 0.0
	MaxPercentage = 100.0
)

// PercentageOf returns value*pct/100 without rounding.
func PercentageOf(value, pct float64) float64 {
	return value * pct / 100
}
