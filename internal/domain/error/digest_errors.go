// Package error defines domain-specific errors for the Salon Pulse backend.
package error

import "errors"

// Digest email domain errors.
var (
	// ErrDigestQueueFailed is returned when a digest fails to be queued.
	ErrDigestQueueFailed = errors.New("failed to queue digest")

	// ErrDigestSendFailed is returned when a digest fails to be sent.
	ErrDigestSendFailed = errors.New("failed to send digest")

	// ErrInvalidDigestTemplate is returned when an invalid digest template is specified.
	ErrInvalidDigestTemplate = errors.New("invalid digest template")

	// ErrDigestJobNotFound is returned when a digest job is not found.
	ErrDigestJobNotFound = errors.New("digest job not found")

	// ErrPermanentDigestFailure is returned when a digest fails with a permanent error.
	ErrPermanentDigestFailure = errors.New("permanent digest failure")

	// ErrTemporaryDigestFailure is returned when a digest fails with a temporary error.
	ErrTemporaryDigestFailure = errors.New("temporary digest failure")

	// ErrInvalidDigestRecipient is returned when the digest recipient is missing or malformed.
	ErrInvalidDigestRecipient = errors.New("invalid digest recipient")
)

// DigestErrorCode defines error codes for digest errors.
// Format: DGT-XXYYYY where XX is category and YYYY is specific error.
type DigestErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeDigestQueueFailed DigestErrorCode = "DGT-010001"
	ErrCodeDigestJobNotFound DigestErrorCode = "DGT-010002"

	// Send errors (02XXXX)
	ErrCodeDigestSendFailed       DigestErrorCode = "DGT-020001"
	ErrCodePermanentDigestFailure DigestErrorCode = "DGT-020002"
	ErrCodeTemporaryDigestFailure DigestErrorCode = "DGT-020003"

	// Template errors (03XXXX)
	ErrCodeInvalidDigestTemplate DigestErrorCode = "DGT-030001"
	ErrCodeDigestRenderFailed    DigestErrorCode = "DGT-030002"

	// Validation errors (04XXXX)
	ErrCodeInvalidDigestRecipient DigestErrorCode = "DGT-040001"
)

// DigestError represents a digest error with code and message.
type DigestError struct {
	Code    DigestErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DigestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DigestError) Unwrap() error {
	return e.Err
}

// NewDigestError creates a new DigestError with the given code and message.
func NewDigestError(code DigestErrorCode, message string, err error) *DigestError {
	return &DigestError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
