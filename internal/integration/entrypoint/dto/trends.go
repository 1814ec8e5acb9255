// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/salon-pulse/backend/internal/application/usecase/trends"
)

// TrendComparisonResponse represents the response for the trend comparison API.
type TrendComparisonResponse struct {
	Data TrendComparisonData `json:"data"`
}

// TrendComparisonData represents the data section of the trend comparison response.
type TrendComparisonData struct {
	Period  ComparisonPeriodResponse  `json:"period"`
	Label   string                    `json:"label"`
	Metric  string                    `json:"metric"`
	Points  []ComparisonPointResponse `json:"points"`
	Metrics ComparisonMetricsResponse `json:"metrics"`
}

// ComparisonPeriodResponse represents the resolved current and prior ranges.
type ComparisonPeriodResponse struct {
	CurrentFrom string `json:"current_from"`
	CurrentTo   string `json:"current_to"`
	PriorFrom   string `json:"prior_from"`
	PriorTo     string `json:"prior_to"`
}

// ComparisonPointResponse represents one aligned day pair in the response.
type ComparisonPointResponse struct {
	DayIndex     int     `json:"day_index"`
	Label        string  `json:"label"`
	CurrentValue float64 `json:"current_value"`
	PriorValue   float64 `json:"prior_value"`
	CurrentDate  *string `json:"current_date,omitempty"`
	PriorDate    *string `json:"prior_date,omitempty"`
}

// ComparisonMetricsResponse represents the aggregate comparison figures.
type ComparisonMetricsResponse struct {
	CurrentTotal        float64 `json:"current_total"`
	PriorTotal          float64 `json:"prior_total"`
	CurrentDailyAverage float64 `json:"current_daily_average"`
	PriorDailyAverage   float64 `json:"prior_daily_average"`
	PercentChange       float64 `json:"percent_change"`
}

// ToTrendComparisonResponse converts a GetTrendComparisonOutput to TrendComparisonResponse DTO.
func ToTrendComparisonResponse(output *trends.GetTrendComparisonOutput) TrendComparisonResponse {
	points := make([]ComparisonPointResponse, len(output.Points))
	for i, p := range output.Points {
		currentValue, _ := p.CurrentValue.Float64()
		priorValue, _ := p.PriorValue.Float64()

		var currentDate, priorDate *string
		if p.CurrentDate != nil {
			s := p.CurrentDate.Format("2006-01-02")
			currentDate = &s
		}
		if p.PriorDate != nil {
			s := p.PriorDate.Format("2006-01-02")
			priorDate = &s
		}

		points[i] = ComparisonPointResponse{
			DayIndex:     p.DayIndex,
			Label:        p.Label,
			CurrentValue: currentValue,
			PriorValue:   priorValue,
			CurrentDate:  currentDate,
			PriorDate:    priorDate,
		}
	}

	currentTotal, _ := output.Metrics.CurrentTotal.Float64()
	priorTotal, _ := output.Metrics.PriorTotal.Float64()
	currentDailyAverage, _ := output.Metrics.CurrentDailyAverage.Float64()
	priorDailyAverage, _ := output.Metrics.PriorDailyAverage.Float64()
	percentChange, _ := output.Metrics.PercentChange.Float64()

	return TrendComparisonResponse{
		Data: TrendComparisonData{
			Period: ComparisonPeriodResponse{
				CurrentFrom: output.Period.CurrentFrom.Format("2006-01-02"),
				CurrentTo:   output.Period.CurrentTo.Format("2006-01-02"),
				PriorFrom:   output.Period.PriorFrom.Format("2006-01-02"),
				PriorTo:     output.Period.PriorTo.Format("2006-01-02"),
			},
			Label:  output.Label,
			Metric: string(output.Metric),
			Points: points,
			Metrics: ComparisonMetricsResponse{
				CurrentTotal:        currentTotal,
				PriorTotal:          priorTotal,
				CurrentDailyAverage: currentDailyAverage,
				PriorDailyAverage:   priorDailyAverage,
				PercentChange:       percentChange,
			},
		},
	}
}
