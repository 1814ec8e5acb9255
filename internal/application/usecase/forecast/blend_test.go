// Package forecast contains forecast blending use cases.
package forecast

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

func monthlyActuals(revenues ...float64) []entity.MonthlyRecord {
	records := make([]entity.MonthlyRecord, len(revenues))
	for i, revenue := range revenues {
		records[i] = entity.MonthlyRecord{
			Period:       fmt.Sprintf("2025-%02d", i+1),
			Revenue:      decimal.NewFromFloat(revenue),
			Appointments: (i + 1) * 10,
		}
	}
	return records
}

func scenarioPayload(actuals []entity.MonthlyRecord, projected []entity.MonthlyRecord) *entity.ForecastPayload {
	return &entity.ForecastPayload{
		Horizon:        entity.HorizonQuarter,
		MonthlyActuals: actuals,
		MonthlyScenarios: map[entity.Scenario][]entity.MonthlyRecord{
			entity.ScenarioBaseline: projected,
		},
	}
}

func TestBlendForecast(t *testing.T) {
	t.Run("emits exactly one bridge point carrying both values", func(t *testing.T) {
		payload := scenarioPayload(monthlyActuals(100, 110, 120), monthlyActuals(130, 140))
		points := BlendForecast(payload, entity.ScenarioBaseline, entity.MetricRevenue)

		if len(points) != 5 {
			t.Fatalf("expected 5 points, got %d", len(points))
		}

		bridges := 0
		for _, point := range points {
			if point.Kind == entity.PointBridge {
				bridges++
				if point.Actual == nil || point.Projected == nil {
					t.Fatal("bridge point must carry both actual and projected values")
				}
				if !point.Actual.Equal(*point.Projected) {
					t.Errorf("bridge projected %s != actual %s", point.Projected, point.Actual)
				}
				if !point.ConfidenceLower.Equal(*point.Actual) || !point.ConfidenceUpper.Equal(*point.Actual) {
					t.Error("bridge confidence bounds must equal the actual value")
				}
			}
		}
		if bridges != 1 {
			t.Errorf("expected exactly one bridge point, got %d", bridges)
		}
	})

	t.Run("bridge replaces the last actual instead of duplicating it", func(t *testing.T) {
		payload := scenarioPayload(monthlyActuals(100, 110), monthlyActuals(120))
		points := BlendForecast(payload, entity.ScenarioBaseline, entity.MetricRevenue)

		if points[0].Kind != entity.PointActual {
			t.Errorf("expected first point to stay actual, got %s", points[0].Kind)
		}
		if points[1].Kind != entity.PointBridge {
			t.Errorf("expected second point to become the bridge, got %s", points[1].Kind)
		}
		if points[2].Kind != entity.PointProjected {
			t.Errorf("expected third point to be projected, got %s", points[2].Kind)
		}
	})

	t.Run("no bridge without projections", func(t *testing.T) {
		payload := scenarioPayload(monthlyActuals(100, 110), nil)
		points := BlendForecast(payload, entity.ScenarioBaseline, entity.MetricRevenue)

		for _, point := range points {
			if point.Kind != entity.PointActual {
				t.Errorf("expected only actual points, got %s", point.Kind)
			}
			if point.Projected != nil {
				t.Error("actual points must not carry projected values")
			}
		}
	})

	t.Run("no bridge without actuals", func(t *testing.T) {
		payload := scenarioPayload(nil, monthlyActuals(120, 130))
		points := BlendForecast(payload, entity.ScenarioBaseline, entity.MetricRevenue)

		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(points))
		}
		for _, point := range points {
			if point.Kind != entity.PointProjected {
				t.Errorf("expected only projected points, got %s", point.Kind)
			}
			if point.Actual != nil {
				t.Error("projected points must not carry actual values")
			}
		}
	})

	t.Run("only the trailing six actual months are kept", func(t *testing.T) {
		payload := scenarioPayload(monthlyActuals(10, 20, 30, 40, 50, 60, 70, 80), nil)
		points := BlendForecast(payload, entity.ScenarioBaseline, entity.MetricRevenue)

		if len(points) != 6 {
			t.Fatalf("expected 6 points, got %d", len(points))
		}
		if !points[0].Actual.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected window to start at the third month, got %s", points[0].Actual)
		}
	})

	t.Run("projected bounds default to a zero-width band", func(t *testing.T) {
		payload := scenarioPayload(nil, monthlyActuals(200))
		points := BlendForecast(payload, entity.ScenarioBaseline, entity.MetricRevenue)

		point := points[0]
		if !point.ConfidenceLower.Equal(*point.Projected) || !point.ConfidenceUpper.Equal(*point.Projected) {
			t.Error("expected zero-width confidence band when the record carries no bounds")
		}
	})

	t.Run("projected bounds come from the record when present", func(t *testing.T) {
		lower := decimal.NewFromInt(180)
		upper := decimal.NewFromInt(220)
		projected := []entity.MonthlyRecord{{
			Period:          "2025-07",
			Revenue:         decimal.NewFromInt(200),
			ConfidenceLower: &lower,
			ConfidenceUpper: &upper,
		}}
		points := BlendForecast(scenarioPayload(nil, projected), entity.ScenarioBaseline, entity.MetricRevenue)

		if !points[0].ConfidenceLower.Equal(lower) || !points[0].ConfidenceUpper.Equal(upper) {
			t.Errorf("expected bounds [180, 220], got [%s, %s]", points[0].ConfidenceLower, points[0].ConfidenceUpper)
		}
	})

	t.Run("appointments metric uses appointment bounds", func(t *testing.T) {
		lower := 90
		upper := 130
		projected := []entity.MonthlyRecord{{
			Period:            "2025-07",
			Appointments:      110,
			AppointmentsLower: &lower,
			AppointmentsUpper: &upper,
		}}
		points := BlendForecast(scenarioPayload(nil, projected), entity.ScenarioBaseline, entity.MetricAppointments)

		if !points[0].Projected.Equal(decimal.NewFromInt(110)) {
			t.Errorf("expected projected 110, got %s", points[0].Projected)
		}
		if !points[0].ConfidenceLower.Equal(decimal.NewFromInt(90)) || !points[0].ConfidenceUpper.Equal(decimal.NewFromInt(130)) {
			t.Errorf("expected bounds [90, 130], got [%s, %s]", points[0].ConfidenceLower, points[0].ConfidenceUpper)
		}
	})

	t.Run("empty payload yields no points", func(t *testing.T) {
		if points := BlendForecast(scenarioPayload(nil, nil), entity.ScenarioBaseline, entity.MetricRevenue); len(points) != 0 {
			t.Errorf("expected no points, got %d", len(points))
		}
		if points := BlendForecast(nil, entity.ScenarioBaseline, entity.MetricRevenue); points != nil {
			t.Errorf("expected nil for nil payload, got %v", points)
		}
	})
}
