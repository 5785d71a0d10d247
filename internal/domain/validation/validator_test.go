package validation

import (
	"errors"
	"math"
	"testing"

	domainerrors "github.com/Haleralex/pricecalc/internal/domain/errors"
)

func TestValidator_Number(t *testing.T) {
	tests := []struct {
		name       string
		raw        any
		constraint string
		want       float64
		wantValid  bool
	}{
		{"positive ok", "10", Positive, 10, true},
		{"positive zero", "0", Positive, 0, false},
		{"positive negative", -1, Positive, -1, false},
		{"non-negative zero", 0, NonNegative, 0, true},
		{"non-negative negative", "-0.01", NonNegative, -0.01, false},
		{"percentage lower bound", "0", Percentage, 0, true},
		{"percentage upper bound", "100", Percentage, 100, true},
		{"percentage above", "100.01", Percentage, 100.01, false},
		{"open percentage below", "99.99", OpenPercentage, 99.99, true},
		{"open percentage at bound", "100", OpenPercentage, 100, false},
		{"not a number", "abc", Positive, 0, false},
		{"missing", nil, NonNegative, 0, false},
		{"no constraint", "-5", "", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			got := v.Number("field", tt.raw, tt.constraint, "bad field")

			if got != tt.want {
				t.Errorf("Number() = %v, want %v", got, tt.want)
			}
			if v.Valid() != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", v.Valid(), tt.wantValid)
			}
			if !tt.wantValid && len(v.Errors()) != 1 {
				t.Errorf("expected exactly one message, got %v", v.Errors())
			}
		})
	}
}

func TestValidator_Currency(t *testing.T) {
	tests := []struct {
		name      string
		raw       any
		want      string
		wantValid bool
	}{
		{"upper", "EUR", "EUR", true},
		{"lower", "usd", "USD", true},
		{"padded", " gbp", "GBP", true},
		{"unsupported", "JPY", "", false},
		{"empty", "", "", false},
		{"missing", nil, "", false},
		{"not a string", 12, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			got := v.Currency("from", tt.raw, "bad currency")
			if got.Code() != tt.want {
				t.Errorf("Currency() = %q, want %q", got.Code(), tt.want)
			}
			if v.Valid() != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", v.Valid(), tt.wantValid)
			}
		})
	}
}

func TestValidator_AccumulatesWithoutShortCircuit(t *testing.T) {
	v := New()
	v.Currency("from", "XXX", "bad from")
	v.Currency("to", "YYY", "bad to")
	v.Number("amount", "abc", Positive, "bad amount")
	v.Check(false, "pair", "bad pair")

	errs := v.Errors()
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(errs), errs)
	}
	if got := v.Err().Error(); got != "bad from, bad to, bad amount, bad pair" {
		t.Errorf("Err() = %q", got)
	}
	if !domainerrors.IsValidationError(v.Err()) {
		t.Error("Err() should be a validation error")
	}
}

func TestValidator_ValidHasNilErr(t *testing.T) {
	v := New()
	v.Number("amount", "1", Positive, "bad")
	v.Check(true, "x", "never")
	if v.Err() != nil {
		t.Errorf("Err() = %v, want nil", v.Err())
	}
}

type pair struct {
	a, b float64
}

func TestValidate(t *testing.T) {
	res := Validate(func(v *Validator) pair {
		return pair{
			a: v.Number("a", "1", NonNegative, "bad a"),
			b: v.Number("b", "2", NonNegative, "bad b"),
		}
	})
	if !res.IsValid() || res.Err() != nil {
		t.Fatalf("expected valid result, got %v", res.Errors)
	}
	if res.Value.a != 1 || res.Value.b != 2 {
		t.Errorf("Value = %+v", res.Value)
	}

	res = Validate(func(v *Validator) pair {
		return pair{
			a: v.Number("a", "x", NonNegative, "bad a"),
			b: v.Number("b", "y", NonNegative, "bad b"),
		}
	})
	if res.IsValid() {
		t.Fatal("expected invalid result")
	}
	if len(res.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", res.Errors)
	}
}

func TestRun(t *testing.T) {
	rules := func(raw string) func(v *Validator) float64 {
		return func(v *Validator) float64 {
			return v.Number("n", raw, NonNegative, "bad n")
		}
	}

	t.Run("computes on valid input", func(t *testing.T) {
		got, err := Run(rules("4"), func(n float64) (float64, error) {
			return n * 2, nil
		})
		if err != nil || got != 8 {
			t.Fatalf("Run() = %v, %v", got, err)
		}
	})

	t.Run("skips compute on invalid input", func(t *testing.T) {
		called := false
		_, err := Run(rules("-4"), func(n float64) (float64, error) {
			called = true
			return n, nil
		})
		if called {
			t.Error("compute must not run on invalid input")
		}
		if !domainerrors.IsValidationError(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("propagates compute error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Run(rules("1"), func(float64) (float64, error) {
			return 0, boom
		})
		if !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})
}

func TestFinite(t *testing.T) {
	if err := Finite("ht", 0, 1e308, -5); err != nil {
		t.Errorf("Finite() on finite values = %v", err)
	}

	for _, bad := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		err := Finite("ht", 1, bad)
		errs, ok := domainerrors.AsValidationErrors(err)
		if !ok || len(errs) != 1 {
			t.Fatalf("Finite(%v) = %v, want one validation error", bad, err)
		}
		if errs[0].Field != "ht" || errs[0].Message != MsgResultOutOfRange {
			t.Errorf("Finite(%v) = %+v", bad, errs[0])
		}
	}
}
