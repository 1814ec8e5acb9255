// Package trends contains trend comparison use cases.
package trends

import (
	"testing"
	"time"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("trailing windows have the expected length", func(t *testing.T) {
		cases := []struct {
			selector entity.RangeSelector
			days     int
		}{
			{entity.RangeLast7Days, 7},
			{entity.RangeLast30Days, 30},
			{entity.RangeLast90Days, 90},
		}

		for _, tc := range cases {
			r := ResolvePeriod(tc.selector, now)
			if got := r.Days(); got != tc.days {
				t.Errorf("%s: expected %d days, got %d", tc.selector, tc.days, got)
			}
		}
	})

	t.Run("mtd starts on the first of the month", func(t *testing.T) {
		r := ResolvePeriod(entity.RangeMonthToDate, now)
		want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !r.From.Equal(want) {
			t.Errorf("expected from %v, got %v", want, r.From)
		}
	})

	t.Run("ytd starts on the first of the year", func(t *testing.T) {
		r := ResolvePeriod(entity.RangeYearToDate, now)
		want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !r.From.Equal(want) {
			t.Errorf("expected from %v, got %v", want, r.From)
		}
	})

	t.Run("to is always today and from never exceeds to", func(t *testing.T) {
		selectors := []entity.RangeSelector{
			entity.RangeLast7Days,
			entity.RangeLast30Days,
			entity.RangeLast90Days,
			entity.RangeMonthToDate,
			entity.RangeYearToDate,
		}

		for _, selector := range selectors {
			r := ResolvePeriod(selector, now)
			if !r.To.Equal(today) {
				t.Errorf("%s: expected to == today, got %v", selector, r.To)
			}
			if r.From.After(r.To) {
				t.Errorf("%s: from %v is after to %v", selector, r.From, r.To)
			}
		}
	})

	t.Run("time of day does not shift the window", func(t *testing.T) {
		late := time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC)
		early := time.Date(2025, time.March, 15, 0, 0, 1, 0, time.UTC)

		a := ResolvePeriod(entity.RangeLast7Days, late)
		b := ResolvePeriod(entity.RangeLast7Days, early)
		if !a.From.Equal(b.From) || !a.To.Equal(b.To) {
			t.Errorf("expected identical windows, got %+v and %+v", a, b)
		}
	})
}
