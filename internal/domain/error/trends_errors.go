// Package error defines domain-specific errors for the Salon Pulse backend.
package error

import "errors"

// Trends domain errors.
var (
	// ErrInvalidRangeSelector is returned when the range selector is not supported.
	ErrInvalidRangeSelector = errors.New("range must be: 7d, 30d, 90d, mtd, or ytd")

	// ErrInvalidComparisonMode is returned when the comparison mode is not supported.
	ErrInvalidComparisonMode = errors.New("mode must be: mom or yoy")

	// ErrInvalidTrendMetric is returned when the metric is not supported for trends.
	ErrInvalidTrendMetric = errors.New("metric must be: revenue or transactions")

	// ErrSeriesUnavailable is returned when one of the two period fetches fails.
	// The comparison is withheld entirely rather than computed against a
	// one-sided zero baseline.
	ErrSeriesUnavailable = errors.New("sales series unavailable")
)

// TrendsErrorCode defines error codes for trend comparison errors.
// Format: TRD-XXYYYY where XX is category and YYYY is specific error.
type TrendsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRangeSelector  TrendsErrorCode = "TRD-010001"
	ErrCodeInvalidComparisonMode TrendsErrorCode = "TRD-010002"
	ErrCodeInvalidTrendMetric    TrendsErrorCode = "TRD-010003"

	// Availability errors (02XXXX)
	ErrCodeSeriesUnavailable TrendsErrorCode = "TRD-020001"

	// Internal errors (99XXXX)
	ErrCodeTrendsInternalError TrendsErrorCode = "TRD-990001"
)

// TrendsError represents a trend comparison error with code and message.
type TrendsError struct {
	Code    TrendsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TrendsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TrendsError) Unwrap() error {
	return e.Err
}

// NewTrendsError creates a new TrendsError with the given code and message.
func NewTrendsError(code TrendsErrorCode, message string, err error) *TrendsError {
	return &TrendsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
