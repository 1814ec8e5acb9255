// Package trends contains trend comparison use cases.
package trends

import (
	"time"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// ResolvePeriod maps a relative range selector to a concrete inclusive date
// range. The range always ends on the day of the given instant.
func ResolvePeriod(selector entity.RangeSelector, now time.Time) entity.DateRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var from time.Time
	switch selector {
	case entity.RangeLast7Days:
		from = today.AddDate(0, 0, -6)
	case entity.RangeLast90Days:
		from = today.AddDate(0, 0, -89)
	case entity.RangeMonthToDate:
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case entity.RangeYearToDate:
		from = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	default:
		// 30d, also the fallback for any unrecognized selector.
		from = today.AddDate(0, 0, -29)
	}

	return entity.DateRange{From: from, To: today}
}
