// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/salon-pulse/backend/internal/domain/entity"
)

// UpdatePreferencesRequest represents the request body for saving preferences.
// Unknown values are normalized to defaults rather than rejected.
type UpdatePreferencesRequest struct {
	ChartStyle string `json:"chart_style"`
	Range      string `json:"range"`
	ViewMode   string `json:"view_mode"`
	Horizon    int    `json:"horizon"`
}

// PreferencesResponse represents the response for the preferences API.
type PreferencesResponse struct {
	Data PreferencesData `json:"data"`
}

// PreferencesData represents the data section of the preferences response.
type PreferencesData struct {
	ChartStyle string `json:"chart_style"`
	Range      string `json:"range"`
	ViewMode   string `json:"view_mode"`
	Horizon    int    `json:"horizon"`
}

// ToPreferencesResponse converts a DashboardPreferences entity to PreferencesResponse DTO.
func ToPreferencesResponse(prefs *entity.DashboardPreferences) PreferencesResponse {
	return PreferencesResponse{
		Data: PreferencesData{
			ChartStyle: string(prefs.ChartStyle),
			Range:      string(prefs.Range),
			ViewMode:   string(prefs.ViewMode),
			Horizon:    int(prefs.Horizon),
		},
	}
}
