// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// ForecastRepository defines the interface for forecast payload retrieval.
type ForecastRepository interface {
	// GetForecastPayload returns the forecast data for a single horizon:
	// trailing monthly actuals, scenario-projected months, the horizon's base
	// projection figures, and the pass-through summary fields. A nil location
	// filter aggregates across all locations. A payload with no actuals and
	// no projections is a valid insufficient-history result, not an error.
	GetForecastPayload(ctx context.Context, horizon entity.Horizon, locationID *string) (*entity.ForecastPayload, error)
}
