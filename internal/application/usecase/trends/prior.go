// Package trends contains trend comparison use cases.
package trends

import (
	"github.com/salon-pulse/backend/internal/domain/entity"
)

// ResolvePriorPeriod computes the comparable prior range for the given
// comparison mode.
//
// Year-over-year shifts both bounds back exactly one calendar year. Go
// normalizes Feb 29 forward to Mar 1 when the prior year is not a leap year;
// that rule is a known approximation pending product clarification.
//
// Month-over-month produces the contiguous window immediately preceding the
// current one with identical length. It is a "previous window", not
// necessarily a previous calendar month, and is also used for 7d and 90d
// ranges despite the label.
func ResolvePriorPeriod(current entity.DateRange, mode entity.ComparisonMode) entity.DateRange {
	if mode == entity.ComparisonYearOverYear {
		return entity.DateRange{
			From: current.From.AddDate(-1, 0, 0),
			To:   current.To.AddDate(-1, 0, 0),
		}
	}

	span := current.Days() - 1
	priorTo := current.From.AddDate(0, 0, -1)
	priorFrom := priorTo.AddDate(0, 0, -span)

	return entity.DateRange{From: priorFrom, To: priorTo}
}

// ComparisonLabel selects the human-facing comparison label from the current
// range length alone, independent of the comparison mode.
func ComparisonLabel(current entity.DateRange) string {
	switch current.Days() {
	case 7:
		return "WoW"
	case 30:
		return "MoM"
	case 90:
		return "QoQ"
	default:
		return "Prior"
	}
}
