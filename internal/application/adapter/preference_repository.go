// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// PreferenceRepository defines the interface for display preference persistence.
type PreferenceRepository interface {
	// FindByClientID retrieves the stored preferences for a client, or nil
	// when none have been saved yet.
	FindByClientID(ctx context.Context, clientID string) (*entity.DashboardPreferences, error)

	// Save creates or replaces the preferences for a client.
	Save(ctx context.Context, prefs *entity.DashboardPreferences) error
}
