// Package trends contains trend comparison use cases.
package trends

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
)

// stubSalesRepository serves canned series keyed by from-date and can fail a
// chosen window.
type stubSalesRepository struct {
	mu       sync.Mutex
	series   map[string][]entity.DailyRecord
	failFrom string
	calls    int
}

func (s *stubSalesRepository) GetDailySeries(_ context.Context, from, _ time.Time, _ *string) ([]entity.DailyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	key := from.Format("2006-01-02")
	if key == s.failFrom {
		return nil, errors.New("upstream timeout")
	}
	return s.series[key], nil
}

// stubCache is an in-memory ComparisonCache.
type stubCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *stubCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[key] = payload
	return nil
}

func TestGetTrendComparisonUseCase(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	currentFrom := "2025-03-09" // 7d window ending Mar 15
	priorFrom := "2025-03-02"

	baseInput := GetTrendComparisonInput{
		Selector: entity.RangeLast7Days,
		Mode:     entity.ComparisonMonthOverMonth,
		Metric:   entity.MetricRevenue,
		Now:      now,
	}

	t.Run("computes aligned comparison from both series", func(t *testing.T) {
		repo := &stubSalesRepository{series: map[string][]entity.DailyRecord{
			currentFrom: makeSeries(now.AddDate(0, 0, -6), 100, 200, 150),
			priorFrom:   makeSeries(now.AddDate(0, 0, -13), 80, 80),
		}}
		uc := NewGetTrendComparisonUseCase(repo, nil)

		output, err := uc.Execute(context.Background(), baseInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(output.Points))
		}
		if !output.Metrics.CurrentTotal.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected current total 450, got %s", output.Metrics.CurrentTotal)
		}
		if output.Label != "WoW" {
			t.Errorf("expected label WoW, got %q", output.Label)
		}
	})

	t.Run("withholds the comparison when one fetch fails", func(t *testing.T) {
		repo := &stubSalesRepository{
			series: map[string][]entity.DailyRecord{
				currentFrom: makeSeries(now.AddDate(0, 0, -6), 100),
			},
			failFrom: priorFrom,
		}
		uc := NewGetTrendComparisonUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), baseInput)
		if err == nil {
			t.Fatal("expected an error when the prior fetch fails")
		}

		var trendsErr *domainerror.TrendsError
		if !errors.As(err, &trendsErr) {
			t.Fatalf("expected TrendsError, got %T", err)
		}
		if trendsErr.Code != domainerror.ErrCodeSeriesUnavailable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeSeriesUnavailable, trendsErr.Code)
		}
	})

	t.Run("memoizes by input tuple", func(t *testing.T) {
		repo := &stubSalesRepository{series: map[string][]entity.DailyRecord{
			currentFrom: makeSeries(now.AddDate(0, 0, -6), 100, 200),
			priorFrom:   makeSeries(now.AddDate(0, 0, -13), 50),
		}}
		cache := newStubCache()
		uc := NewGetTrendComparisonUseCase(repo, cache)

		first, err := uc.Execute(context.Background(), baseInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 1 {
			t.Fatalf("expected one cache write, got %d", cache.sets)
		}

		callsAfterFirst := repo.calls
		second, err := uc.Execute(context.Background(), baseInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.calls != callsAfterFirst {
			t.Errorf("expected cache hit to skip fetches, got %d extra calls", repo.calls-callsAfterFirst)
		}
		if !second.Metrics.CurrentTotal.Equal(first.Metrics.CurrentTotal) {
			t.Errorf("cached total %s != computed total %s", second.Metrics.CurrentTotal, first.Metrics.CurrentTotal)
		}
	})

	t.Run("different metric misses the memo", func(t *testing.T) {
		repo := &stubSalesRepository{series: map[string][]entity.DailyRecord{
			currentFrom: makeSeries(now.AddDate(0, 0, -6), 100),
			priorFrom:   makeSeries(now.AddDate(0, 0, -13), 50),
		}}
		cache := newStubCache()
		uc := NewGetTrendComparisonUseCase(repo, cache)

		if _, err := uc.Execute(context.Background(), baseInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		other := baseInput
		other.Metric = entity.MetricTransactions
		if _, err := uc.Execute(context.Background(), other); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cache.sets != 2 {
			t.Errorf("expected two cache writes for two input tuples, got %d", cache.sets)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := NewGetTrendComparisonUseCase(&stubSalesRepository{}, nil)

		cases := []struct {
			name  string
			input GetTrendComparisonInput
			code  domainerror.TrendsErrorCode
		}{
			{"bad selector", GetTrendComparisonInput{Selector: "14d", Mode: entity.ComparisonMonthOverMonth, Metric: entity.MetricRevenue}, domainerror.ErrCodeInvalidRangeSelector},
			{"bad mode", GetTrendComparisonInput{Selector: entity.RangeLast7Days, Mode: "wow", Metric: entity.MetricRevenue}, domainerror.ErrCodeInvalidComparisonMode},
			{"bad metric", GetTrendComparisonInput{Selector: entity.RangeLast7Days, Mode: entity.ComparisonMonthOverMonth, Metric: entity.MetricAppointments}, domainerror.ErrCodeInvalidTrendMetric},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tc.input)
				var trendsErr *domainerror.TrendsError
				if !errors.As(err, &trendsErr) {
					t.Fatalf("expected TrendsError, got %v", err)
				}
				if trendsErr.Code != tc.code {
					t.Errorf("expected code %s, got %s", tc.code, trendsErr.Code)
				}
			})
		}
	})
}
