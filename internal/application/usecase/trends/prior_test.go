// Package trends contains trend comparison use cases.
package trends

import (
	"testing"
	"time"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

func TestResolvePriorPeriod(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("month over month keeps the window length", func(t *testing.T) {
		now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
		for _, selector := range []entity.RangeSelector{
			entity.RangeLast7Days,
			entity.RangeLast30Days,
			entity.RangeLast90Days,
			entity.RangeMonthToDate,
			entity.RangeYearToDate,
		} {
			current := ResolvePeriod(selector, now)
			prior := ResolvePriorPeriod(current, entity.ComparisonMonthOverMonth)
			if prior.Days() != current.Days() {
				t.Errorf("%s: prior length %d != current length %d", selector, prior.Days(), current.Days())
			}
		}
	})

	t.Run("month over month window is immediately preceding", func(t *testing.T) {
		current := entity.DateRange{From: day(2025, time.March, 1), To: day(2025, time.March, 30)}
		prior := ResolvePriorPeriod(current, entity.ComparisonMonthOverMonth)

		if !prior.To.Equal(day(2025, time.February, 28)) {
			t.Errorf("expected prior.to 2025-02-28, got %v", prior.To)
		}
		if !prior.From.Equal(day(2025, time.January, 30)) {
			t.Errorf("expected prior.from 2025-01-30, got %v", prior.From)
		}
	})

	t.Run("year over year shifts both bounds one calendar year back", func(t *testing.T) {
		current := entity.DateRange{From: day(2025, time.March, 1), To: day(2025, time.March, 15)}
		prior := ResolvePriorPeriod(current, entity.ComparisonYearOverYear)

		if !prior.From.Equal(day(2024, time.March, 1)) {
			t.Errorf("expected prior.from 2024-03-01, got %v", prior.From)
		}
		if !prior.To.Equal(day(2024, time.March, 15)) {
			t.Errorf("expected prior.to 2024-03-15, got %v", prior.To)
		}
	})

	t.Run("year over year normalizes Feb 29 forward", func(t *testing.T) {
		current := entity.DateRange{From: day(2024, time.February, 29), To: day(2024, time.February, 29)}
		prior := ResolvePriorPeriod(current, entity.ComparisonYearOverYear)

		if !prior.From.Equal(day(2023, time.March, 1)) {
			t.Errorf("expected prior.from 2023-03-01, got %v", prior.From)
		}
	})
}

func TestComparisonLabel(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name  string
		days  int
		label string
	}{
		{"7 day window", 7, "WoW"},
		{"30 day window", 30, "MoM"},
		{"90 day window", 90, "QoQ"},
		{"other window", 14, "Prior"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current := entity.DateRange{From: day(1), To: day(1).AddDate(0, 0, tc.days-1)}
			if got := ComparisonLabel(current); got != tc.label {
				t.Errorf("expected %q, got %q", tc.label, got)
			}
		})
	}
}
