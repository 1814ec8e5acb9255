// Package error defines domain-specific errors for the Salon Pulse backend.
package error

import "errors"

// Forecast domain errors.
var (
	// ErrInvalidHorizon is returned when the horizon is not 3, 6 or 12 months.
	ErrInvalidHorizon = errors.New("horizon must be: 3, 6, or 12")

	// ErrInvalidScenario is returned when the scenario is not supported.
	ErrInvalidScenario = errors.New("scenario must be: conservative, baseline, or optimistic")

	// ErrInvalidForecastMetric is returned when the metric is not supported for forecasts.
	ErrInvalidForecastMetric = errors.New("metric must be: revenue or appointments")

	// ErrForecastUnavailable is returned when the forecast payload cannot be fetched.
	ErrForecastUnavailable = errors.New("forecast data unavailable")
)

// ForecastErrorCode defines error codes for forecast errors.
// Format: FCT-XXYYYY where XX is category and YYYY is specific error.
type ForecastErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHorizon        ForecastErrorCode = "FCT-010001"
	ErrCodeInvalidScenario       ForecastErrorCode = "FCT-010002"
	ErrCodeInvalidForecastMetric ForecastErrorCode = "FCT-010003"

	// Availability errors (02XXXX)
	ErrCodeForecastUnavailable ForecastErrorCode = "FCT-020001"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited ForecastErrorCode = "FCT-030001"

	// Internal errors (99XXXX)
	ErrCodeForecastInternalError ForecastErrorCode = "FCT-990001"
)

// ForecastError represents a forecast error with code and message.
type ForecastError struct {
	Code    ForecastErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ForecastError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError creates a new ForecastError with the given code and message.
func NewForecastError(code ForecastErrorCode, message string, err error) *ForecastError {
	return &ForecastError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
