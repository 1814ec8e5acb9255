// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// InsightRequest represents the figures an insight generator works from.
type InsightRequest struct {
	Horizon  entity.Horizon
	Scenario entity.Scenario
	Summary  *entity.ForecastSummary
}

// InsightService defines the interface for generating executive insight strings
// from a forecast summary. Implementations are best-effort: a failure must be
// handled by falling back to stored insights, never by failing the request.
type InsightService interface {
	// GenerateInsights returns short natural-language insight strings.
	GenerateInsights(ctx context.Context, request *InsightRequest) ([]string, error)

	// IsAvailable checks if the insight service is available and properly configured.
	IsAvailable() bool
}
