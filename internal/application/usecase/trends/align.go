// Package trends contains trend comparison use cases.
package trends

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// AlignSeries pairs two independently-fetched daily series into ordered
// comparison points by relative day index. This is positional alignment, not
// calendar alignment: day 1 of the current range is paired with day 1 of the
// prior range regardless of actual date distance.
//
// The output length always equals max(len(current), len(prior)); the shorter
// side is zero-filled. A zero-filled value is indistinguishable from a day
// with zero activity.
func AlignSeries(current, prior []entity.DailyRecord, metric entity.Metric) []entity.ComparisonPoint {
	n := len(current)
	if len(prior) > n {
		n = len(prior)
	}

	points := make([]entity.ComparisonPoint, 0, n)
	for i := 0; i < n; i++ {
		point := entity.ComparisonPoint{
			DayIndex:     i,
			Label:        fmt.Sprintf("Day %d", i+1),
			CurrentValue: decimal.Zero,
			PriorValue:   decimal.Zero,
		}

		if i < len(current) {
			date := current[i].Date
			point.CurrentDate = &date
			point.CurrentValue = current[i].MetricValue(metric)
			point.Label = date.Format("Jan 2")
		}

		if i < len(prior) {
			date := prior[i].Date
			point.PriorDate = &date
			point.PriorValue = prior[i].MetricValue(metric)
		}

		points = append(points, point)
	}

	return points
}
