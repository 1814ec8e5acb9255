// Package preference contains display preference use cases.
package preference

import (
	"context"
	"fmt"
	"time"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
)

// UpdatePreferencesInput represents the input for saving display preferences.
// Unrecognized field values are normalized to their defaults rather than
// rejected, matching the read-side behavior.
type UpdatePreferencesInput struct {
	ClientID   string
	ChartStyle entity.ChartStyle
	Range      entity.RangeSelector
	ViewMode   entity.ViewMode
	Horizon    entity.Horizon
}

// UpdatePreferencesOutput represents the saved preferences.
type UpdatePreferencesOutput struct {
	Preferences *entity.DashboardPreferences
}

// UpdatePreferencesUseCase handles display preference updates.
type UpdatePreferencesUseCase struct {
	preferenceRepo adapter.PreferenceRepository
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(preferenceRepo adapter.PreferenceRepository) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		preferenceRepo: preferenceRepo,
	}
}

// Execute normalizes and saves the preferences for a client.
func (uc *UpdatePreferencesUseCase) Execute(
	ctx context.Context,
	input UpdatePreferencesInput,
) (*UpdatePreferencesOutput, error) {
	if input.ClientID == "" {
		return nil, domainerror.NewPreferenceError(
			domainerror.ErrCodeMissingClientID,
			"client id is required",
			domainerror.ErrMissingClientID,
		)
	}

	prefs := &entity.DashboardPreferences{
		ClientID:   input.ClientID,
		ChartStyle: input.ChartStyle,
		Range:      input.Range,
		ViewMode:   input.ViewMode,
		Horizon:    input.Horizon,
		UpdatedAt:  time.Now().UTC(),
	}
	prefs.Normalize()

	if err := uc.preferenceRepo.Save(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	return &UpdatePreferencesOutput{Preferences: prefs}, nil
}
