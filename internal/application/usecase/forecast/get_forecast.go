// Package forecast contains forecast blending use cases.
package forecast

import (
	"context"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
)

// ForecastStatus represents the renderable state of a forecast result.
type ForecastStatus string

const (
	// StatusReady means points and summary are available.
	StatusReady ForecastStatus = "ready"

	// StatusInsufficientHistory means the payload carried neither history nor
	// projections. This is a valid empty state, not an error.
	StatusInsufficientHistory ForecastStatus = "insufficient_history"
)

// GetForecastInput represents the input for building a blended forecast.
type GetForecastInput struct {
	Horizon    entity.Horizon
	Scenario   entity.Scenario
	Metric     entity.Metric
	LocationID *string
}

// GetForecastOutput represents the chart-ready forecast result. The output is
// tagged with the horizon and scenario it was computed for, so a caller that
// switched inputs while a fetch was in flight can discard a stale result
// instead of merging it.
type GetForecastOutput struct {
	Status   ForecastStatus          `json:"status"`
	Horizon  entity.Horizon          `json:"horizon"`
	Scenario entity.Scenario         `json:"scenario"`
	Metric   entity.Metric           `json:"metric"`
	Points   []entity.ForecastPoint  `json:"points"`
	Summary  *entity.ForecastSummary `json:"summary"`
	Insights []string                `json:"insights"`
}

// GetForecastUseCase handles blended forecast retrieval.
type GetForecastUseCase struct {
	forecastRepo   adapter.ForecastRepository
	insightService adapter.InsightService
}

// NewGetForecastUseCase creates a new GetForecastUseCase instance.
// The insight service is optional; without it the stored insights are used.
func NewGetForecastUseCase(forecastRepo adapter.ForecastRepository, insightService adapter.InsightService) *GetForecastUseCase {
	return &GetForecastUseCase{
		forecastRepo:   forecastRepo,
		insightService: insightService,
	}
}

// Execute fetches the forecast payload for the horizon and blends it into
// chart points plus a scenario-adjusted summary.
func (uc *GetForecastUseCase) Execute(
	ctx context.Context,
	input GetForecastInput,
) (*GetForecastOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	payload, err := uc.forecastRepo.GetForecastPayload(ctx, input.Horizon, input.LocationID)
	if err != nil {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeForecastUnavailable,
			"forecast data unavailable",
			err,
		)
	}

	if payload == nil || payload.IsEmpty() {
		return &GetForecastOutput{
			Status:   StatusInsufficientHistory,
			Horizon:  input.Horizon,
			Scenario: input.Scenario,
			Metric:   input.Metric,
			Points:   []entity.ForecastPoint{},
		}, nil
	}

	points := BlendForecast(payload, input.Scenario, input.Metric)
	summary := DeriveSummary(payload, input.Scenario)

	return &GetForecastOutput{
		Status:   StatusReady,
		Horizon:  input.Horizon,
		Scenario: input.Scenario,
		Metric:   input.Metric,
		Points:   points,
		Summary:  summary,
		Insights: uc.resolveInsights(ctx, input, payload, summary),
	}, nil
}

// resolveInsights prefers freshly generated insights and falls back to the
// stored ones on any failure. Insight generation never fails the request.
func (uc *GetForecastUseCase) resolveInsights(
	ctx context.Context,
	input GetForecastInput,
	payload *entity.ForecastPayload,
	summary *entity.ForecastSummary,
) []string {
	if uc.insightService == nil || !uc.insightService.IsAvailable() || summary == nil {
		return payload.Insights
	}

	generated, err := uc.insightService.GenerateInsights(ctx, &adapter.InsightRequest{
		Horizon:  input.Horizon,
		Scenario: input.Scenario,
		Summary:  summary,
	})
	if err != nil || len(generated) == 0 {
		return payload.Insights
	}
	return generated
}

// validateInput validates the input parameters.
func (uc *GetForecastUseCase) validateInput(input GetForecastInput) error {
	if !input.Horizon.IsValid() {
		return domainerror.NewForecastError(
			domainerror.ErrCodeInvalidHorizon,
			"horizon must be: 3, 6, or 12",
			domainerror.ErrInvalidHorizon,
		)
	}

	if !input.Scenario.IsValid() {
		return domainerror.NewForecastError(
			domainerror.ErrCodeInvalidScenario,
			"scenario must be: conservative, baseline, or optimistic",
			domainerror.ErrInvalidScenario,
		)
	}

	if input.Metric != entity.MetricRevenue && input.Metric != entity.MetricAppointments {
		return domainerror.NewForecastError(
			domainerror.ErrCodeInvalidForecastMetric,
			"metric must be: revenue or appointments",
			domainerror.ErrInvalidForecastMetric,
		)
	}

	return nil
}
