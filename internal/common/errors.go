package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrInvalidInput covers missing required inputs: no file, no file
	// pairs, a pair without its paginated document.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedType is returned for file kinds the pipeline does not handle.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrNoData means processing succeeded but produced zero rows, e.g. an
	// invoice filter that matched nothing. Distinct from a hard failure.
	ErrNoData = errors.New("no data found")
	// ErrNotFound covers missing files on disk.
	ErrNotFound = errors.New("resource not found")
	ErrInternal = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
