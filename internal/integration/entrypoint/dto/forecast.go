// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/salon-pulse/backend/internal/application/usecase/forecast"
)

// ForecastResponse represents the response for the forecast API.
type ForecastResponse struct {
	Data ForecastData `json:"data"`
}

// ForecastData represents the data section of the forecast response.
type ForecastData struct {
	Status   string                   `json:"status"`
	Horizon  int                      `json:"horizon"`
	Scenario string                   `json:"scenario"`
	Metric   string                   `json:"metric"`
	Points   []ForecastPointResponse  `json:"points"`
	Summary  *ForecastSummaryResponse `json:"summary,omitempty"`
	Insights []string                 `json:"insights,omitempty"`
}

// ForecastPointResponse represents a single blended chart point.
type ForecastPointResponse struct {
	Label           string   `json:"label"`
	Actual          *float64 `json:"actual,omitempty"`
	Projected       *float64 `json:"projected,omitempty"`
	ConfidenceLower *float64 `json:"confidence_lower,omitempty"`
	ConfidenceUpper *float64 `json:"confidence_upper,omitempty"`
	Kind            string   `json:"kind"`
}

// ForecastSummaryResponse represents the scenario-adjusted summary figures.
type ForecastSummaryResponse struct {
	Revenue           float64  `json:"revenue"`
	RevenueLower      float64  `json:"revenue_lower"`
	RevenueUpper      float64  `json:"revenue_upper"`
	Appointments      int      `json:"appointments"`
	AppointmentsLower int      `json:"appointments_lower"`
	AppointmentsUpper int      `json:"appointments_upper"`
	Momentum          string   `json:"momentum"`
	MonthOverMonth    *float64 `json:"month_over_month,omitempty"`
	YearOverYear      *float64 `json:"year_over_year,omitempty"`
	MonthsAvailable   int      `json:"months_available"`
	TrendFit          *float64 `json:"trend_fit,omitempty"`
}

// ToForecastResponse converts a GetForecastOutput to ForecastResponse DTO.
func ToForecastResponse(output *forecast.GetForecastOutput) ForecastResponse {
	points := make([]ForecastPointResponse, len(output.Points))
	for i, p := range output.Points {
		points[i] = ForecastPointResponse{
			Label:           p.Label,
			Actual:          decimalPtrToFloat(p.Actual),
			Projected:       decimalPtrToFloat(p.Projected),
			ConfidenceLower: decimalPtrToFloat(p.ConfidenceLower),
			ConfidenceUpper: decimalPtrToFloat(p.ConfidenceUpper),
			Kind:            string(p.Kind),
		}
	}

	var summary *ForecastSummaryResponse
	if output.Summary != nil {
		revenue, _ := output.Summary.Revenue.Float64()
		revenueLower, _ := output.Summary.RevenueLower.Float64()
		revenueUpper, _ := output.Summary.RevenueUpper.Float64()

		summary = &ForecastSummaryResponse{
			Revenue:           revenue,
			RevenueLower:      revenueLower,
			RevenueUpper:      revenueUpper,
			Appointments:      output.Summary.Appointments,
			AppointmentsLower: output.Summary.AppointmentsLower,
			AppointmentsUpper: output.Summary.AppointmentsUpper,
			Momentum:          string(output.Summary.Momentum),
			MonthOverMonth:    decimalPtrToFloat(output.Summary.MonthOverMonth),
			YearOverYear:      decimalPtrToFloat(output.Summary.YearOverYear),
			MonthsAvailable:   output.Summary.MonthsAvailable,
			TrendFit:          decimalPtrToFloat(output.Summary.TrendFit),
		}
	}

	return ForecastResponse{
		Data: ForecastData{
			Status:   string(output.Status),
			Horizon:  int(output.Horizon),
			Scenario: string(output.Scenario),
			Metric:   string(output.Metric),
			Points:   points,
			Summary:  summary,
			Insights: output.Insights,
		},
	}
}
