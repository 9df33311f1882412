package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrOrderLocked        = errors.New("this order has already begun preparation or has been completed and can no longer be edited")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrDateInPast      = errors.New("date cannot be in the past")
	ErrTooSoon         = errors.New("date does not allow enough preparation time")
	ErrInvalidQuantity = errors.New("quantity must be exactly 1")
	ErrInvalidStatus   = errors.New("unknown status")
	ErrRequired        = errors.New("field is required")
	ErrOutOfRange      = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")
)

// ValidationError reports a rejected field. It matches ErrValidationFailed
// and its cause with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	cause  error
}

func newValidationError(field string, cause error, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, cause: cause}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidationFailed, e.cause}
}

// TooSoonError is the cause of a delivery date inside the preparation window.
type TooSoonError struct {
	MinDays int
}

func (e *TooSoonError) Error() string {
	return fmt.Sprintf("date must be at least %d days from today", e.MinDays)
}

func (e *TooSoonError) Is(target error) bool {
	return target == ErrTooSoon
}
