// Package errors defines domain-specific error types for the calculators.
// Using typed errors (instead of strings) lets the HTTP layer tell a bad
// input apart from a missing exchange rate or an unexpected failure.
//
// Pattern: Sentinel Errors + Custom Error Types
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the calculation domain
var (
	// ErrValidation marks any failure caused by invalid client input.
	ErrValidation = errors.New("validation failed")

	// ErrRateUnavailable marks a currency pair missing from the rate table.
	ErrRateUnavailable = errors.New("exchange rate not available")
)

// MessageSeparator joins individual validation messages into the display string.
const MessageSeparator = ", "

// ValidationError represents one violated constraint on one input field.
type ValidationError struct {
	Field   string // Field name that failed validation (e.g. "amount")
	Message string // Human-readable message returned to API clients
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors is the accumulated list of violations for one operation.
// It is never partially valid: a non-empty list means the whole input is rejected.
//
// Pattern: Composite Error for Multiple Validations
type ValidationErrors []ValidationError

// Error joins every message with ", " in the order they were recorded.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(e.Messages(), MessageSeparator)
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationErrors.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add appends a validation error.
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Messages returns the individual messages, in order.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// Fields returns the names of the fields that failed, in order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, v := range e {
		fields = append(fields, v.Field)
	}
	return fields
}

// RateUnavailableError is returned when two valid currencies have no entry in
// the rate table. It is a lookup failure, not a validation failure.
type RateUnavailableError struct {
	From string
	To   string
}

// Error implements the error interface.
func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("Taux de conversion non disponible pour %s vers %s", e.From, e.To)
}

// Unwrap exposes ErrRateUnavailable for errors.Is.
func (e *RateUnavailableError) Unwrap() error {
	return ErrRateUnavailable
}

// NewRateUnavailableError creates a new lookup failure for the ordered pair.
func NewRateUnavailableError(from, to string) *RateUnavailableError {
	return &RateUnavailableError{From: from, To: to}
}

// Helper functions for common error checking

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsRateUnavailable checks if an error is a rate lookup failure.
func IsRateUnavailable(err error) bool {
	return errors.Is(err, ErrRateUnavailable)
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return IsValidationError(err) || IsRateUnavailable(err)
}

// AsValidationErrors extracts the violation list from an error chain.
// A single ValidationError is returned as a one-element list.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var list ValidationErrors
	if errors.As(err, &list) {
		return list, true
	}
	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}
