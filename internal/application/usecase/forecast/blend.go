// Package forecast contains forecast blending use cases.
package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// trailingActualMonths is how many months of history the blended chart shows.
const trailingActualMonths = 6

// BlendForecast merges trailing actual months with scenario-projected months
// into one ordered chart sequence.
//
// When both at least one actual and at least one projected month exist, the
// last actual point is converted in place into the bridge point: it keeps its
// actual value and additionally carries that same value as projected and as
// both confidence bounds, so the actual and projected lines share the point
// instead of duplicating it.
func BlendForecast(payload *entity.ForecastPayload, scenario entity.Scenario, metric entity.Metric) []entity.ForecastPoint {
	if payload == nil {
		return nil
	}

	actuals := payload.MonthlyActuals
	if len(actuals) > trailingActualMonths {
		actuals = actuals[len(actuals)-trailingActualMonths:]
	}
	projected := payload.MonthlyScenarios[scenario]

	points := make([]entity.ForecastPoint, 0, len(actuals)+len(projected))
	for _, month := range actuals {
		value := month.MetricValue(metric)
		points = append(points, entity.ForecastPoint{
			Label:  month.Period,
			Actual: &value,
			Kind:   entity.PointActual,
		})
	}

	if len(points) > 0 && len(projected) > 0 {
		bridge := &points[len(points)-1]
		bridgeValue := *bridge.Actual
		bridge.Kind = entity.PointBridge
		bridge.Projected = &bridgeValue
		bridge.ConfidenceLower = &bridgeValue
		bridge.ConfidenceUpper = &bridgeValue
	}

	for _, month := range projected {
		value := month.MetricValue(metric)
		lower, upper := confidenceBounds(month, metric, value)
		points = append(points, entity.ForecastPoint{
			Label:           month.Period,
			Projected:       &value,
			ConfidenceLower: lower,
			ConfidenceUpper: upper,
			Kind:            entity.PointProjected,
		})
	}

	return points
}

// confidenceBounds returns the record's own bounds for the metric, defaulting
// to the point value itself (a zero-width band) when the record carries none.
func confidenceBounds(month entity.MonthlyRecord, metric entity.Metric, value decimal.Decimal) (*decimal.Decimal, *decimal.Decimal) {
	lower := value
	upper := value

	if metric == entity.MetricAppointments {
		if month.AppointmentsLower != nil {
			lower = decimal.NewFromInt(int64(*month.AppointmentsLower))
		}
		if month.AppointmentsUpper != nil {
			upper = decimal.NewFromInt(int64(*month.AppointmentsUpper))
		}
	} else {
		if month.ConfidenceLower != nil {
			lower = *month.ConfidenceLower
		}
		if month.ConfidenceUpper != nil {
			upper = *month.ConfidenceUpper
		}
	}

	return &lower, &upper
}
