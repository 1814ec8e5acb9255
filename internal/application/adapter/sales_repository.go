// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// SalesRepository defines the interface for daily sales retrieval.
type SalesRepository interface {
	// GetDailySeries returns one record per calendar day with activity inside
	// the inclusive [from, to] range, in ascending date order. Days without
	// activity are absent. A nil location filter aggregates across all
	// locations.
	GetDailySeries(ctx context.Context, from, to time.Time, locationID *string) ([]entity.DailyRecord, error)
}
