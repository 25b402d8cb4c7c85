package errors

import (
	"errors"
	"fmt"

	"goeda/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeFor(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode returns the error code for any error, mapping domain sentinels to
// their codes and falling back to INTERNAL_ERROR.
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeFor(err)
}

// Predefined error codes
const (
	CodeColumnNotFound   = "COLUMN_NOT_FOUND"
	CodeNonNumericColumn = "NON_NUMERIC_COLUMN"
	CodeInsufficientData = "INSUFFICIENT_DATA"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeIngestError      = "INGEST_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// CodeFor maps a domain error to its application code
func CodeFor(err error) string {
	switch {
	case errors.Is(err, core.ErrColumnNotFound):
		return CodeColumnNotFound
	case errors.Is(err, core.ErrNonNumericColumn):
		return CodeNonNumericColumn
	case errors.Is(err, core.ErrInsufficientData):
		return CodeInsufficientData
	case errors.Is(err, core.ErrInvalidInput):
		return CodeInvalidInput
	default:
		return CodeInternalError
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func IngestError(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeIngestError,
		Message: message,
		Cause:   cause,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
