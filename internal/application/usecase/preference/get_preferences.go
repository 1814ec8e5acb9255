// Package preference contains display preference use cases.
package preference

import (
	"context"
	"fmt"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
)

// GetPreferencesInput represents the input for retrieving display preferences.
type GetPreferencesInput struct {
	ClientID string
}

// GetPreferencesOutput represents the resolved display preferences.
type GetPreferencesOutput struct {
	Preferences *entity.DashboardPreferences
}

// GetPreferencesUseCase handles display preference retrieval with defaulting.
type GetPreferencesUseCase struct {
	preferenceRepo adapter.PreferenceRepository
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(preferenceRepo adapter.PreferenceRepository) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{
		preferenceRepo: preferenceRepo,
	}
}

// Execute retrieves the stored preferences for a client. Absent or corrupt
// values fall back to the documented defaults field by field; retrieval never
// fails because of bad stored data.
func (uc *GetPreferencesUseCase) Execute(
	ctx context.Context,
	input GetPreferencesInput,
) (*GetPreferencesOutput, error) {
	if input.ClientID == "" {
		return nil, domainerror.NewPreferenceError(
			domainerror.ErrCodeMissingClientID,
			"client id is required",
			domainerror.ErrMissingClientID,
		)
	}

	stored, err := uc.preferenceRepo.FindByClientID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	if stored == nil {
		return &GetPreferencesOutput{
			Preferences: entity.NewDefaultPreferences(input.ClientID),
		}, nil
	}

	stored.Normalize()
	return &GetPreferencesOutput{Preferences: stored}, nil
}
