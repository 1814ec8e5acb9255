// Package forecast contains forecast blending use cases.
package forecast

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
)

// stubForecastRepository serves a canned payload per horizon.
type stubForecastRepository struct {
	payloads map[entity.Horizon]*entity.ForecastPayload
	err      error
}

func (s *stubForecastRepository) GetForecastPayload(_ context.Context, horizon entity.Horizon, _ *string) (*entity.ForecastPayload, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.payloads[horizon], nil
}

// stubInsightService returns fixed insights or an error.
type stubInsightService struct {
	insights  []string
	err       error
	available bool
}

func (s *stubInsightService) GenerateInsights(_ context.Context, _ *adapter.InsightRequest) ([]string, error) {
	return s.insights, s.err
}

func (s *stubInsightService) IsAvailable() bool {
	return s.available
}

func TestGetForecastUseCase(t *testing.T) {
	readyPayload := func() *entity.ForecastPayload {
		payload := scenarioPayload(monthlyActuals(100, 110), monthlyActuals(120))
		payload.BaseProjection = &entity.BaseProjection{
			Revenue:      decimal.NewFromInt(360),
			Appointments: 36,
		}
		payload.Insights = []string{"stored insight"}
		return payload
	}

	baseInput := GetForecastInput{
		Horizon:  entity.HorizonQuarter,
		Scenario: entity.ScenarioBaseline,
		Metric:   entity.MetricRevenue,
	}

	t.Run("ready payload blends points and summary", func(t *testing.T) {
		repo := &stubForecastRepository{payloads: map[entity.Horizon]*entity.ForecastPayload{
			entity.HorizonQuarter: readyPayload(),
		}}
		uc := NewGetForecastUseCase(repo, nil)

		output, err := uc.Execute(context.Background(), baseInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Status != StatusReady {
			t.Errorf("expected status ready, got %s", output.Status)
		}
		if len(output.Points) != 3 {
			t.Errorf("expected 3 points, got %d", len(output.Points))
		}
		if output.Summary == nil {
			t.Fatal("expected a summary")
		}
		if output.Horizon != entity.HorizonQuarter || output.Scenario != entity.ScenarioBaseline {
			t.Error("output must be tagged with the requested horizon and scenario")
		}
	})

	t.Run("empty payload degrades to insufficient history", func(t *testing.T) {
		repo := &stubForecastRepository{payloads: map[entity.Horizon]*entity.ForecastPayload{
			entity.HorizonQuarter: {Horizon: entity.HorizonQuarter},
		}}
		uc := NewGetForecastUseCase(repo, nil)

		output, err := uc.Execute(context.Background(), baseInput)
		if err != nil {
			t.Fatalf("expected no error for empty payload, got %v", err)
		}

		if output.Status != StatusInsufficientHistory {
			t.Errorf("expected insufficient history, got %s", output.Status)
		}
		if len(output.Points) != 0 {
			t.Errorf("expected no points, got %d", len(output.Points))
		}
		if output.Summary != nil {
			t.Error("expected nil summary")
		}
	})

	t.Run("repository failure maps to forecast unavailable", func(t *testing.T) {
		uc := NewGetForecastUseCase(&stubForecastRepository{err: errors.New("down")}, nil)

		_, err := uc.Execute(context.Background(), baseInput)
		var forecastErr *domainerror.ForecastError
		if !errors.As(err, &forecastErr) {
			t.Fatalf("expected ForecastError, got %v", err)
		}
		if forecastErr.Code != domainerror.ErrCodeForecastUnavailable {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeForecastUnavailable, forecastErr.Code)
		}
	})

	t.Run("generated insights replace stored ones", func(t *testing.T) {
		repo := &stubForecastRepository{payloads: map[entity.Horizon]*entity.ForecastPayload{
			entity.HorizonQuarter: readyPayload(),
		}}
		uc := NewGetForecastUseCase(repo, &stubInsightService{
			insights:  []string{"fresh insight"},
			available: true,
		})

		output, err := uc.Execute(context.Background(), baseInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Insights) != 1 || output.Insights[0] != "fresh insight" {
			t.Errorf("expected generated insights, got %v", output.Insights)
		}
	})

	t.Run("insight failure falls back to stored insights", func(t *testing.T) {
		repo := &stubForecastRepository{payloads: map[entity.Horizon]*entity.ForecastPayload{
			entity.HorizonQuarter: readyPayload(),
		}}
		uc := NewGetForecastUseCase(repo, &stubInsightService{
			err:       errors.New("quota exceeded"),
			available: true,
		})

		output, err := uc.Execute(context.Background(), baseInput)
		if err != nil {
			t.Fatalf("insight failure must not fail the request: %v", err)
		}
		if len(output.Insights) != 1 || output.Insights[0] != "stored insight" {
			t.Errorf("expected stored insights, got %v", output.Insights)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := NewGetForecastUseCase(&stubForecastRepository{}, nil)

		cases := []struct {
			name  string
			input GetForecastInput
			code  domainerror.ForecastErrorCode
		}{
			{"bad horizon", GetForecastInput{Horizon: 9, Scenario: entity.ScenarioBaseline, Metric: entity.MetricRevenue}, domainerror.ErrCodeInvalidHorizon},
			{"bad scenario", GetForecastInput{Horizon: entity.HorizonQuarter, Scenario: "wild", Metric: entity.MetricRevenue}, domainerror.ErrCodeInvalidScenario},
			{"bad metric", GetForecastInput{Horizon: entity.HorizonQuarter, Scenario: entity.ScenarioBaseline, Metric: entity.MetricTransactions}, domainerror.ErrCodeInvalidForecastMetric},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tc.input)
				var forecastErr *domainerror.ForecastError
				if !errors.As(err, &forecastErr) {
					t.Fatalf("expected ForecastError, got %v", err)
				}
				if forecastErr.Code != tc.code {
					t.Errorf("expected code %s, got %s", tc.code, forecastErr.Code)
				}
			})
		}
	})
}
