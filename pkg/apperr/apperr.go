// Package apperr defines the application's structured error type: a code
// plus message plus optional wrapped cause, used throughout the harness
// instead of ad-hoc fmt.Errorf so callers can branch on error category.
package apperr

import (
	"errors"
	"fmt"
)

// Error codes used across the harness.
const (
	CodeUnknown      = "UNKNOWN_ERROR"
	CodeParseError   = "PARSE_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
	CodeGraphError   = "GRAPH_ERROR"
	CodeConfigError  = "CONFIG_ERROR"
	CodeStorageError = "STORAGE_ERROR"
	CodeDBError      = "DATABASE_ERROR"
	CodeTimeout      = "TIMEOUT_ERROR"
	CodeNotFound     = "NOT_FOUND"
)

// AppError represents an application error with a code, message, and
// optional wrapped cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError with no wrapped cause.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Sentinel instances usable with errors.Is.
var (
	ErrParseError   = New(CodeParseError, "parse error")
	ErrInvalidInput = New(CodeInvalidInput, "invalid input")
	ErrGraphError   = New(CodeGraphError, "graph error")
	ErrConfigError  = New(CodeConfigError, "configuration error")
	ErrStorageError = New(CodeStorageError, "storage error")
	ErrDBError      = New(CodeDBError, "database error")
	ErrTimeout      = New(CodeTimeout, "operation timeout")
	ErrNotFound     = New(CodeNotFound, "resource not found")
)

// IsParseError reports whether err is (or wraps) a parse error.
func IsParseError(err error) bool { return errors.Is(err, ErrParseError) }

// IsGraphError reports whether err is (or wraps) a graph error.
func IsGraphError(err error) bool { return errors.Is(err, ErrGraphError) }

// IsStorageError reports whether err is (or wraps) a storage error.
func IsStorageError(err error) bool { return errors.Is(err, ErrStorageError) }

// IsDBError reports whether err is (or wraps) a database error.
func IsDBError(err error) bool { return errors.Is(err, ErrDBError) }

// Code extracts the error code from err, or CodeUnknown if err is not an
// *AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// Message extracts the human-readable message from err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
