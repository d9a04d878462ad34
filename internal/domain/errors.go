package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgValidation          = "validation failed"
	ErrMsgInvalidUserID       = "user id is required"
	ErrMsgInvalidXP           = "experience must be non-negative"
	ErrMsgInvalidLevel        = "level out of range"
	ErrMsgInvalidActivity     = "invalid activity"
	ErrMsgInvalidGrowthAmount = "growth amount out of range"
	ErrMsgInvalidCrystalValue = "crystal value out of range"
	ErrMsgInvalidGrowthRate   = "crystal growth rate out of range"
	ErrMsgInvalidCurrency     = "currency values must be non-negative"
	ErrMsgInvalidForecastDays = "forecast days out of range"

	// Lookup errors
	ErrMsgUnknownAttribute     = "unknown crystal attribute"
	ErrMsgUnknownGrowthEvent   = "unknown growth event"
	ErrMsgUnknownResonanceType = "unknown resonance type"
	ErrMsgUnknownActivityKind  = "unknown activity kind"

	// Resonance errors
	ErrMsgResonanceNotEligible = "resonance conditions not met"

	// Persistence errors
	ErrMsgStateNotFound = "progression state not found"
	ErrMsgStateExists   = "progression state already exists"
	ErrMsgConflict      = "progression state was modified concurrently"
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrValidation          = errors.New(ErrMsgValidation)
	ErrInvalidUserID       = errors.New(ErrMsgInvalidUserID)
	ErrInvalidXP           = errors.New(ErrMsgInvalidXP)
	ErrInvalidLevel        = errors.New(ErrMsgInvalidLevel)
	ErrInvalidActivity     = errors.New(ErrMsgInvalidActivity)
	ErrInvalidGrowthAmount = errors.New(ErrMsgInvalidGrowthAmount)
	ErrInvalidCrystalValue = errors.New(ErrMsgInvalidCrystalValue)
	ErrInvalidGrowthRate   = errors.New(ErrMsgInvalidGrowthRate)
	ErrInvalidCurrency     = errors.New(ErrMsgInvalidCurrency)
	ErrInvalidForecastDays = errors.New(ErrMsgInvalidForecastDays)

	ErrUnknownAttribute     = errors.New(ErrMsgUnknownAttribute)
	ErrUnknownGrowthEvent   = errors.New(ErrMsgUnknownGrowthEvent)
	ErrUnknownResonanceType = errors.New(ErrMsgUnknownResonanceType)
	ErrUnknownActivityKind  = errors.New(ErrMsgUnknownActivityKind)

	ErrResonanceNotEligible = errors.New(ErrMsgResonanceNotEligible)

	ErrStateNotFound = errors.New(ErrMsgStateNotFound)
	ErrStateExists   = errors.New(ErrMsgStateExists)
	ErrConflict      = errors.New(ErrMsgConflict)
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// ValidationError describes rejected caller input.
// errors.Is matches both ErrValidation and the wrapped sentinel.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
	Err    error
}

// NewValidationError builds a ValidationError around one of the sentinel errors above
func NewValidationError(err error, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
		Err:    err,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", e.Err, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrValidation so callers can branch on the whole class.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsValidation reports whether err was caused by rejected input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
