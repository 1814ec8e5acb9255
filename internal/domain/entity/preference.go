// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// ChartStyle represents the preferred chart rendering style.
type ChartStyle string

const (
	ChartStyleArea ChartStyle = "area"
	ChartStyleBar  ChartStyle = "bar"
	ChartStyleLine ChartStyle = "line"
)

// ViewMode represents the preferred trend view.
type ViewMode string

const (
	ViewHistorical ViewMode = "historical"
	ViewForecast   ViewMode = "forecast"
)

// Default display preferences applied when a stored value is absent or
// unrecognized.
const (
	DefaultChartStyle    = ChartStyleArea
	DefaultRangeSelector = RangeLast30Days
	DefaultViewMode      = ViewHistorical
	DefaultHorizon       = HorizonYear
)

// DashboardPreferences holds the per-client display preferences for the
// executive dashboard. Each field falls back to its documented default
// independently; corruption of one key never invalidates the others.
type DashboardPreferences struct {
	ClientID   string
	ChartStyle ChartStyle
	Range      RangeSelector
	ViewMode   ViewMode
	Horizon    Horizon
	UpdatedAt  time.Time
}

// NewDefaultPreferences returns the documented default preferences for a client.
func NewDefaultPreferences(clientID string) *DashboardPreferences {
	return &DashboardPreferences{
		ClientID:   clientID,
		ChartStyle: DefaultChartStyle,
		Range:      DefaultRangeSelector,
		ViewMode:   DefaultViewMode,
		Horizon:    DefaultHorizon,
	}
}

// Normalize replaces any unrecognized field value with its default.
func (p *DashboardPreferences) Normalize() {
	switch p.ChartStyle {
	case ChartStyleArea, ChartStyleBar, ChartStyleLine:
	default:
		p.ChartStyle = DefaultChartStyle
	}

	if !p.Range.IsValid() {
		p.Range = DefaultRangeSelector
	}

	if p.ViewMode != ViewHistorical && p.ViewMode != ViewForecast {
		p.ViewMode = DefaultViewMode
	}

	if !p.Horizon.IsValid() {
		p.Horizon = DefaultHorizon
	}
}
