// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	"github.com/salon-pulse/backend/internal/integration/persistence/model"
)

// preferenceRepository implements the adapter.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository instance.
func NewPreferenceRepository(db *gorm.DB) adapter.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByClientID retrieves the stored preferences for a client, or nil when
// none have been saved yet.
func (r *preferenceRepository) FindByClientID(
	ctx context.Context,
	clientID string,
) (*entity.DashboardPreferences, error) {
	var prefModel model.DashboardPreferenceModel

	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&prefModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", result.Error)
	}

	return prefModel.ToEntity(), nil
}

// Save creates or replaces the preferences for a client.
func (r *preferenceRepository) Save(
	ctx context.Context,
	prefs *entity.DashboardPreferences,
) error {
	prefModel := model.PreferenceFromEntity(prefs)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}},
			UpdateAll: true,
		}).
		Create(prefModel)
	if result.Error != nil {
		return fmt.Errorf("failed to save preferences: %w", result.Error)
	}

	return nil
}
