// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// DashboardPreferenceModel represents the dashboard_preferences table in the
// database. Keyed by the opaque client identifier; one row per client.
type DashboardPreferenceModel struct {
	ClientID   string    `gorm:"type:varchar(100);primaryKey"`
	ChartStyle string    `gorm:"type:varchar(10);not null;default:'area'"`
	Range      string    `gorm:"type:varchar(5);not null;default:'30d'"`
	ViewMode   string    `gorm:"type:varchar(15);not null;default:'historical'"`
	Horizon    int       `gorm:"not null;default:12"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the DashboardPreferenceModel.
func (DashboardPreferenceModel) TableName() string {
	return "dashboard_preferences"
}

// ToEntity converts a DashboardPreferenceModel to a domain preferences entity.
// Stored values are carried over as-is; normalization happens in the use case.
func (m *DashboardPreferenceModel) ToEntity() *entity.DashboardPreferences {
	return &entity.DashboardPreferences{
		ClientID:   m.ClientID,
		ChartStyle: entity.ChartStyle(m.ChartStyle),
		Range:      entity.RangeSelector(m.Range),
		ViewMode:   entity.ViewMode(m.ViewMode),
		Horizon:    entity.Horizon(m.Horizon),
		UpdatedAt:  m.UpdatedAt,
	}
}

// PreferenceFromEntity creates a DashboardPreferenceModel from a domain
// preferences entity.
func PreferenceFromEntity(prefs *entity.DashboardPreferences) *DashboardPreferenceModel {
	return &DashboardPreferenceModel{
		ClientID:   prefs.ClientID,
		ChartStyle: string(prefs.ChartStyle),
		Range:      string(prefs.Range),
		ViewMode:   string(prefs.ViewMode),
		Horizon:    int(prefs.Horizon),
		UpdatedAt:  prefs.UpdatedAt,
	}
}
