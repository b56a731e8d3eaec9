package services

import (
	"errors"
	"fmt"
	"strings"

	"DocTrackerGo/store"
)

var (
	ErrValidation   = errors.New("invalid request")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("you do not have permission to access this resource")
	ErrConflict     = errors.New("duplicate entry detected")
	ErrNotFound     = store.ErrNotFound
)

// InvalidRangeError is returned for a range token other than 24h, 1w or 1m.
type InvalidRangeError struct {
	Range string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range %q, use %s", e.Range, strings.Join(SupportedRanges, ", "))
}

// CalculationError wraps any fault hit while building productivity metrics,
// typically a failed entry fetch.
type CalculationError struct {
	Err error
}

func (e *CalculationError) Error() string {
	return "error calculating productivity metrics: " + e.Err.Error()
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
