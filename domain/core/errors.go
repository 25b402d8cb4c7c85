package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Lookup errors
	ErrColumnNotFound = errors.New("column not found")

	// Precondition errors
	ErrNonNumericColumn = errors.New("column is not numeric")
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrInvalidInput     = errors.New("invalid input")
)

// Error constructors with context
func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

func NewNonNumericColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrNonNumericColumn, column)
}

func NewInsufficientDataError(column string, reason string) error {
	return fmt.Errorf("%w: column %q: %s", ErrInsufficientData, column, reason)
}

func NewInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

// Error checking helpers
func IsColumnNotFoundError(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrNonNumericColumn) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrInvalidInput)
}
