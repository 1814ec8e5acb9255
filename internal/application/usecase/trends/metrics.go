// Package trends contains trend comparison use cases.
package trends

import (
	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// CompareMetrics computes totals, daily averages, and percent change over the
// aligned points. Totals are taken after zero-fill, so a shorter raw series
// lowers its apparent daily average.
//
// Percent change follows a three-branch policy so the result is never
// NaN or infinite:
//   - prior > 0: (current - prior) / prior * 100
//   - prior == 0 and current > 0: fixed 100
//   - both zero: 0
func CompareMetrics(points []entity.ComparisonPoint) entity.ComparisonMetrics {
	currentTotal := decimal.Zero
	priorTotal := decimal.Zero
	for _, point := range points {
		currentTotal = currentTotal.Add(point.CurrentValue)
		priorTotal = priorTotal.Add(point.PriorValue)
	}

	count := len(points)
	if count == 0 {
		count = 1
	}
	divisor := decimal.NewFromInt(int64(count))

	var percentChange decimal.Decimal
	switch {
	case priorTotal.IsPositive():
		percentChange = currentTotal.Sub(priorTotal).Div(priorTotal).Mul(oneHundred)
	case currentTotal.IsPositive():
		percentChange = oneHundred
	default:
		percentChange = decimal.Zero
	}

	return entity.ComparisonMetrics{
		CurrentTotal:        currentTotal,
		PriorTotal:          priorTotal,
		CurrentDailyAverage: currentTotal.Div(divisor),
		PriorDailyAverage:   priorTotal.Div(divisor),
		PercentChange:       percentChange,
	}
}
