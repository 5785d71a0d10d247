// Package validation implements the validate-then-compute shape shared by
// every calculator.
//
// A Validator collects one message per violated rule and never
// short-circuits: every field is parsed and checked, and all violations are
// reported together. Range and membership rules are expressed as
// go-playground/validator tags ("gte=0,lte=100", "currency") and evaluated
// with validator.Var.
package validation

import (
	"math"
	"sync"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/Haleralex/pricecalc/internal/domain/errors"
	"github.com/Haleralex/pricecalc/internal/domain/valueobjects"
)

// MsgResultOutOfRange is reported when valid inputs produce an amount that
// cannot be represented.
const MsgResultOutOfRange = "Le montant est trop grand pour être calculé"

// Common constraint tags
const (
	Positive       = "gt=0"
	NonNegative    = "gte=0"
	Percentage     = "gte=0,lte=100"
	OpenPercentage = "gte=0,lt=100" // upper bound excluded
	CurrencyCode   = "required,currency"
)

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// Engine returns the shared validator instance with the custom tags registered.
// validator.Validate is safe for concurrent use once configured.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New()
		_ = engine.RegisterValidation("currency", validateCurrency)
	})
	return engine
}

// validateCurrency checks a code against the supported currencies (any casing).
func validateCurrency(fl validator.FieldLevel) bool {
	return valueobjects.IsSupportedCurrency(fl.Field().String())
}

// ============================================
// Validator
// ============================================

// Validator accumulates violations for one operation.
// A Validator is used by a single goroutine for a single request.
type Validator struct {
	errs domainerrors.ValidationErrors
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Number parses raw as a finite real and checks it against constraint.
// On any failure it records message once for field and returns the parsed
// value (zero if parsing failed).
func (v *Validator) Number(field string, raw any, constraint, message string) float64 {
	n, err := valueobjects.ParseNumber(raw)
	if err != nil {
		v.errs.Add(field, message)
		return 0
	}
	if constraint != "" && Engine().Var(n, constraint) != nil {
		v.errs.Add(field, message)
	}
	return n
}

// Currency normalizes raw and checks it against the supported currencies.
// An invalid code yields the zero Currency.
func (v *Validator) Currency(field string, raw any, message string) valueobjects.Currency {
	code, ok := raw.(string)
	if !ok {
		if p, isPtr := raw.(*string); isPtr && p != nil {
			code, ok = *p, true
		}
	}
	code = valueobjects.NormalizeCurrencyCode(code)

	var curr valueobjects.Currency
	if ok && Engine().Var(code, CurrencyCode) == nil {
		curr, _ = valueobjects.NewCurrency(code)
	}
	if curr.IsZero() {
		v.errs.Add(field, message)
	}
	return curr
}

// Check records message for field when ok is false. It is used for
// cross-field rules that the tag engine cannot express.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.errs.Add(field, message)
	}
}

// Valid reports whether no violation was recorded so far.
func (v *Validator) Valid() bool {
	return !v.errs.HasErrors()
}

// Errors returns the recorded violations.
func (v *Validator) Errors() domainerrors.ValidationErrors {
	return v.errs
}

// Err returns the violations as an error, or nil when valid.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return v.errs
}

// ============================================
// Result
// ============================================

// Result is the outcome of validating one set of inputs:
// either valid with parsed values, or invalid with every violation.
type Result[P any] struct {
	Value  P
	Errors domainerrors.ValidationErrors
}

// IsValid reports whether validation succeeded.
func (r Result[P]) IsValid() bool {
	return !r.Errors.HasErrors()
}

// Err returns the violations as an error, or nil when valid.
func (r Result[P]) Err() error {
	if r.IsValid() {
		return nil
	}
	return r.Errors
}

// Validate runs rules against a fresh Validator.
func Validate[P any](rules func(v *Validator) P) Result[P] {
	v := New()
	p := rules(v)
	return Result[P]{Value: p, Errors: v.Errors()}
}

// Run validates with rules and, only if every rule passed, computes the result.
// No computation happens on invalid input.
func Run[P, R any](rules func(v *Validator) P, compute func(p P) (R, error)) (R, error) {
	res := Validate(rules)
	if !res.IsValid() {
		var zero R
		return zero, res.Err()
	}
	return compute(res.Value)
}

// Finite returns a validation error on field when any computed value is NaN
// or infinite, as happens when valid inputs near the float64 limit overflow.
func Finite(field string, values ...float64) error {
	for _, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return domainerrors.ValidationErrors{{Field: field, Message: MsgResultOutOfRange}}
		}
	}
	return nil
}
