// Package trends contains trend comparison use cases.
package trends

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

func pointsFromValues(pairs ...[2]float64) []entity.ComparisonPoint {
	points := make([]entity.ComparisonPoint, len(pairs))
	for i, pair := range pairs {
		points[i] = entity.ComparisonPoint{
			DayIndex:     i,
			CurrentValue: decimal.NewFromFloat(pair[0]),
			PriorValue:   decimal.NewFromFloat(pair[1]),
		}
	}
	return points
}

func TestCompareMetrics(t *testing.T) {
	t.Run("percent change with a positive prior total", func(t *testing.T) {
		metrics := CompareMetrics(pointsFromValues([2]float64{150, 100}))
		if !metrics.PercentChange.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected 50, got %s", metrics.PercentChange)
		}
	})

	t.Run("percent change is pinned to 100 when only current has activity", func(t *testing.T) {
		metrics := CompareMetrics(pointsFromValues([2]float64{50, 0}))
		if !metrics.PercentChange.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", metrics.PercentChange)
		}
	})

	t.Run("percent change is zero when both totals are zero", func(t *testing.T) {
		metrics := CompareMetrics(pointsFromValues([2]float64{0, 0}))
		if !metrics.PercentChange.IsZero() {
			t.Errorf("expected 0, got %s", metrics.PercentChange)
		}
	})

	t.Run("empty point list yields all zeroes", func(t *testing.T) {
		metrics := CompareMetrics(nil)
		if !metrics.CurrentTotal.IsZero() || !metrics.PriorTotal.IsZero() {
			t.Errorf("expected zero totals, got %s and %s", metrics.CurrentTotal, metrics.PriorTotal)
		}
		if !metrics.CurrentDailyAverage.IsZero() || !metrics.PriorDailyAverage.IsZero() {
			t.Error("expected zero daily averages for empty input")
		}
		if !metrics.PercentChange.IsZero() {
			t.Errorf("expected zero percent change, got %s", metrics.PercentChange)
		}
	})

	t.Run("daily averages divide by the padded point count", func(t *testing.T) {
		metrics := CompareMetrics(pointsFromValues(
			[2]float64{100, 80},
			[2]float64{200, 80},
			[2]float64{150, 0},
		))

		if !metrics.CurrentDailyAverage.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected current daily average 150, got %s", metrics.CurrentDailyAverage)
		}
		// The zero-filled third day drags the prior average down: 160 / 3.
		want := decimal.NewFromInt(160).Div(decimal.NewFromInt(3))
		if !metrics.PriorDailyAverage.Equal(want) {
			t.Errorf("expected prior daily average %s, got %s", want, metrics.PriorDailyAverage)
		}
	})

	t.Run("end to end revenue scenario", func(t *testing.T) {
		start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		current := makeSeries(start, 100, 200, 150)
		prior := makeSeries(start.AddDate(0, 0, -3), 80, 80)

		points := AlignSeries(current, prior, entity.MetricRevenue)
		metrics := CompareMetrics(points)

		if !metrics.CurrentTotal.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected current total 450, got %s", metrics.CurrentTotal)
		}
		if !metrics.PriorTotal.Equal(decimal.NewFromInt(160)) {
			t.Errorf("expected prior total 160, got %s", metrics.PriorTotal)
		}
		if !metrics.PercentChange.Equal(decimal.NewFromFloat(181.25)) {
			t.Errorf("expected percent change 181.25, got %s", metrics.PercentChange)
		}
	})
}
