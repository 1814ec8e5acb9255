// Package trends contains trend comparison use cases.
package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
)

// defaultCacheTTL bounds how long a memoized comparison stays valid. The key
// includes the evaluation date, so a cached entry can never leak across days.
const defaultCacheTTL = 5 * time.Minute

// GetTrendComparisonInput represents the input for computing a trend comparison.
type GetTrendComparisonInput struct {
	Selector   entity.RangeSelector
	Mode       entity.ComparisonMode
	Metric     entity.Metric
	LocationID *string

	// Now pins the evaluation instant; the zero value means wall-clock time.
	Now time.Time
}

// ComparisonPeriod represents the resolved current and prior ranges.
type ComparisonPeriod struct {
	CurrentFrom time.Time `json:"current_from"`
	CurrentTo   time.Time `json:"current_to"`
	PriorFrom   time.Time `json:"prior_from"`
	PriorTo     time.Time `json:"prior_to"`
}

// GetTrendComparisonOutput represents the chart-ready comparison result.
type GetTrendComparisonOutput struct {
	Period  ComparisonPeriod         `json:"period"`
	Label   string                   `json:"label"`
	Metric  entity.Metric            `json:"metric"`
	Points  []entity.ComparisonPoint `json:"points"`
	Metrics entity.ComparisonMetrics `json:"metrics"`
}

// GetTrendComparisonUseCase handles period-over-period trend comparisons.
type GetTrendComparisonUseCase struct {
	salesRepo adapter.SalesRepository
	cache     adapter.ComparisonCache
	cacheTTL  time.Duration
}

// NewGetTrendComparisonUseCase creates a new GetTrendComparisonUseCase instance.
// The cache is optional; a nil cache disables memoization.
func NewGetTrendComparisonUseCase(salesRepo adapter.SalesRepository, cache adapter.ComparisonCache) *GetTrendComparisonUseCase {
	return &GetTrendComparisonUseCase{
		salesRepo: salesRepo,
		cache:     cache,
		cacheTTL:  defaultCacheTTL,
	}
}

// Execute resolves the current and prior periods, fetches both daily series,
// aligns them, and computes the comparison metrics.
func (uc *GetTrendComparisonUseCase) Execute(
	ctx context.Context,
	input GetTrendComparisonInput,
) (*GetTrendComparisonOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	currentRange := ResolvePeriod(input.Selector, now)
	priorRange := ResolvePriorPeriod(currentRange, input.Mode)

	key := uc.cacheKey(input, currentRange)
	if cached := uc.lookupCache(ctx, key); cached != nil {
		return cached, nil
	}

	currentSeries, priorSeries, err := uc.fetchBoth(ctx, currentRange, priorRange, input.LocationID)
	if err != nil {
		// One failed fetch withholds the whole comparison. Computing against
		// a one-sided zero baseline would fabricate a 100% growth artifact.
		return nil, domainerror.NewTrendsError(
			domainerror.ErrCodeSeriesUnavailable,
			"sales series unavailable",
			err,
		)
	}

	points := AlignSeries(currentSeries, priorSeries, input.Metric)
	metrics := CompareMetrics(points)

	output := &GetTrendComparisonOutput{
		Period: ComparisonPeriod{
			CurrentFrom: currentRange.From,
			CurrentTo:   currentRange.To,
			PriorFrom:   priorRange.From,
			PriorTo:     priorRange.To,
		},
		Label:   ComparisonLabel(currentRange),
		Metric:  input.Metric,
		Points:  points,
		Metrics: metrics,
	}

	uc.storeCache(ctx, key, output)

	return output, nil
}

// fetchBoth retrieves the two daily series concurrently and fails if either
// retrieval fails.
func (uc *GetTrendComparisonUseCase) fetchBoth(
	ctx context.Context,
	currentRange, priorRange entity.DateRange,
	locationID *string,
) (currentSeries, priorSeries []entity.DailyRecord, err error) {
	var wg sync.WaitGroup
	var currentErr, priorErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		currentSeries, currentErr = uc.salesRepo.GetDailySeries(ctx, currentRange.From, currentRange.To, locationID)
	}()
	go func() {
		defer wg.Done()
		priorSeries, priorErr = uc.salesRepo.GetDailySeries(ctx, priorRange.From, priorRange.To, locationID)
	}()
	wg.Wait()

	if currentErr != nil {
		return nil, nil, fmt.Errorf("failed to fetch current series: %w", currentErr)
	}
	if priorErr != nil {
		return nil, nil, fmt.Errorf("failed to fetch prior series: %w", priorErr)
	}

	return currentSeries, priorSeries, nil
}

// cacheKey builds the memoization key from the full input tuple.
func (uc *GetTrendComparisonUseCase) cacheKey(input GetTrendComparisonInput, currentRange entity.DateRange) string {
	location := "all"
	if input.LocationID != nil {
		location = *input.LocationID
	}
	return fmt.Sprintf("trends:comparison:%s:%s:%s:%s:%s",
		input.Selector,
		input.Mode,
		input.Metric,
		location,
		currentRange.To.Format("2006-01-02"),
	)
}

// lookupCache returns a previously memoized output, or nil on any miss or
// cache failure.
func (uc *GetTrendComparisonUseCase) lookupCache(ctx context.Context, key string) *GetTrendComparisonOutput {
	if uc.cache == nil {
		return nil
	}

	payload, err := uc.cache.Get(ctx, key)
	if err != nil || payload == nil {
		return nil
	}

	var output GetTrendComparisonOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		return nil
	}
	return &output
}

// storeCache memoizes the output. Cache failures are ignored; recomputation
// is always correct.
func (uc *GetTrendComparisonUseCase) storeCache(ctx context.Context, key string, output *GetTrendComparisonOutput) {
	if uc.cache == nil {
		return
	}

	payload, err := json.Marshal(output)
	if err != nil {
		return
	}
	_ = uc.cache.Set(ctx, key, payload, uc.cacheTTL)
}

// validateInput validates the input parameters.
func (uc *GetTrendComparisonUseCase) validateInput(input GetTrendComparisonInput) error {
	if !input.Selector.IsValid() {
		return domainerror.NewTrendsError(
			domainerror.ErrCodeInvalidRangeSelector,
			"range must be: 7d, 30d, 90d, mtd, or ytd",
			domainerror.ErrInvalidRangeSelector,
		)
	}

	if !input.Mode.IsValid() {
		return domainerror.NewTrendsError(
			domainerror.ErrCodeInvalidComparisonMode,
			"mode must be: mom or yoy",
			domainerror.ErrInvalidComparisonMode,
		)
	}

	if input.Metric != entity.MetricRevenue && input.Metric != entity.MetricTransactions {
		return domainerror.NewTrendsError(
			domainerror.ErrCodeInvalidTrendMetric,
			"metric must be: revenue or transactions",
			domainerror.ErrInvalidTrendMetric,
		)
	}

	return nil
}
