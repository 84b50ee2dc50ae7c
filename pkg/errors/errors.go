package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Validation errors (detected before any filesystem mutation)
	ErrInvalidPath       ErrorCode = "INVALID_PATH"
	ErrPathNotFound      ErrorCode = "PATH_NOT_FOUND"
	ErrIdenticalPaths    ErrorCode = "IDENTICAL_PATHS"
	ErrUnsafeContainment ErrorCode = "UNSAFE_CONTAINMENT"
	ErrProtectedPath     ErrorCode = "PROTECTED_PATH"
	ErrTargetExists      ErrorCode = "TARGET_EXISTS"

	// Execution errors
	ErrPermission     ErrorCode = "PERMISSION"
	ErrCrossDevice    ErrorCode = "CROSS_DEVICE"
	ErrRenameFailed   ErrorCode = "RENAME_FAILED"
	ErrPartialFailure ErrorCode = "PARTIAL_FAILURE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// SwapError represents a structured error with code and details.
// Message is the user-facing text printed by the CLI after "Error: ".
type SwapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SwapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SwapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SwapError) Is(target error) bool {
	var targetErr *SwapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SwapError with the given code and message
func New(code ErrorCode, message string) *SwapError {
	return &SwapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SwapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SwapError {
	return &SwapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SwapError
func Wrap(err error, code ErrorCode, message string) *SwapError {
	if err == nil {
		return nil
	}
	return &SwapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SwapError {
	if err == nil {
		return nil
	}
	return &SwapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SwapError) WithDetail(key string, value interface{}) *SwapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var swapErr *SwapError
	if errors.As(err, &swapErr) {
		return swapErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SwapError
func GetErrorCode(err error) ErrorCode {
	var swapErr *SwapError
	if errors.As(err, &swapErr) {
		return swapErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SwapError
func GetErrorDetails(err error) map[string]interface{} {
	var swapErr *SwapError
	if errors.As(err, &swapErr) {
		return swapErr.Details
	}
	return nil
}

// UserMessage returns the human-readable message for an error without the
// internal code prefix. Non-SwapError values fall back to Error().
func UserMessage(err error) string {
	var swapErr *SwapError
	if errors.As(err, &swapErr) {
		return swapErr.Message
	}
	return err.Error()
}
