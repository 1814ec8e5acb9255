// Package error defines domain-specific errors for the Salon Pulse backend.
package error

import "errors"

// Preference domain errors.
var (
	// ErrMissingClientID is returned when the client identifier header is absent.
	ErrMissingClientID = errors.New("client id is required")
)

// PreferenceErrorCode defines error codes for preference errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type PreferenceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingClientID PreferenceErrorCode = "PRF-010001"

	// Internal errors (99XXXX)
	ErrCodePreferenceInternalError PreferenceErrorCode = "PRF-990001"
)

// PreferenceError represents a preference error with code and message.
type PreferenceError struct {
	Code    PreferenceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PreferenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PreferenceError) Unwrap() error {
	return e.Err
}

// NewPreferenceError creates a new PreferenceError with the given code and message.
func NewPreferenceError(code PreferenceErrorCode, message string, err error) *PreferenceError {
	return &PreferenceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
