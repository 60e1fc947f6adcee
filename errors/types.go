package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Child process errors
	ErrCodeSpawnFailed ErrorCode = "SPAWN_FAILED"
	ErrCodeNonZeroExit ErrorCode = "NON_ZERO_EXIT"

	// Output decoding errors
	ErrCodeOutputNotUTF8   ErrorCode = "OUTPUT_NOT_UTF8"
	ErrCodeMalformedOutput ErrorCode = "MALFORMED_OUTPUT"

	// Repository errors
	ErrCodeNotInRepo ErrorCode = "NOT_IN_REPO"

	// General errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// PromptError represents a structured error with context
type PromptError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *PromptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PromptError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *PromptError) WithDetail(key string, value interface{}) *PromptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *PromptError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new PromptError
func New(code ErrorCode, message string) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PromptError
func Wrap(err error, code ErrorCode, message string) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is reports whether any error in err's chain carries the given code.
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from the first PromptError in err's
// chain, or empty when there is none.
func GetCode(err error) ErrorCode {
	var promptErr *PromptError
	if stderrors.As(err, &promptErr) {
		return promptErr.Code
	}
	return ""
}
