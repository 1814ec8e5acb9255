// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// Scenario represents a named multiplier applied to baseline forecast figures.
type Scenario string

const (
	ScenarioConservative Scenario = "conservative"
	ScenarioBaseline     Scenario = "baseline"
	ScenarioOptimistic   Scenario = "optimistic"
)

// IsValid returns true if the scenario is one of the supported values.
func (s Scenario) IsValid() bool {
	return s == ScenarioConservative || s == ScenarioBaseline || s == ScenarioOptimistic
}

// Multiplier returns the fixed multiplier for the scenario.
func (s Scenario) Multiplier() decimal.Decimal {
	switch s {
	case ScenarioConservative:
		return decimal.NewFromFloat(0.85)
	case ScenarioOptimistic:
		return decimal.NewFromFloat(1.15)
	default:
		return decimal.NewFromInt(1)
	}
}

// Horizon represents the forward-looking projection length in months.
type Horizon int

const (
	HorizonQuarter  Horizon = 3
	HorizonHalfYear Horizon = 6
	HorizonYear     Horizon = 12
)

// IsValid returns true if the horizon is one of the supported values.
func (h Horizon) IsValid() bool {
	return h == HorizonQuarter || h == HorizonHalfYear || h == HorizonYear
}

// Momentum classifies the direction of the recent revenue trend.
type Momentum string

const (
	MomentumAccelerating Momentum = "accelerating"
	MomentumDecelerating Momentum = "decelerating"
	MomentumSteady       Momentum = "steady"
)

// MonthlyRecord represents one month of actual or projected figures.
type MonthlyRecord struct {
	Period            string
	Revenue           decimal.Decimal
	Appointments      int
	ConfidenceLower   *decimal.Decimal
	ConfidenceUpper   *decimal.Decimal
	AppointmentsLower *int
	AppointmentsUpper *int
}

// MetricValue returns the record's value for the given metric.
func (r MonthlyRecord) MetricValue(metric Metric) decimal.Decimal {
	if metric == MetricAppointments {
		return decimal.NewFromInt(int64(r.Appointments))
	}
	return r.Revenue
}

// ForecastPointKind distinguishes the three roles a chart point can play.
type ForecastPointKind string

const (
	PointActual ForecastPointKind = "actual"

	// PointBridge is the single point shared between the actual line and the
	// projected line, carrying both values for visual continuity.
	PointBridge ForecastPointKind = "bridge"

	PointProjected ForecastPointKind = "projected"
)

// ForecastPoint represents a single chart point in the blended sequence.
// Exactly one of Actual/Projected is non-nil except at the bridge point.
type ForecastPoint struct {
	Label           string
	Actual          *decimal.Decimal
	Projected       *decimal.Decimal
	ConfidenceLower *decimal.Decimal
	ConfidenceUpper *decimal.Decimal
	Kind            ForecastPointKind
}

// BaseProjection holds the horizon-specific base figures supplied by the
// forecast source, before any scenario adjustment.
type BaseProjection struct {
	Revenue      decimal.Decimal
	Appointments int
}

// ForecastSummary holds the scenario-adjusted executive summary figures.
type ForecastSummary struct {
	Revenue           decimal.Decimal
	RevenueLower      decimal.Decimal
	RevenueUpper      decimal.Decimal
	Appointments      int
	AppointmentsLower int
	AppointmentsUpper int
	Momentum          Momentum
	MonthOverMonth    *decimal.Decimal
	YearOverYear      *decimal.Decimal
	MonthsAvailable   int
	TrendFit          *decimal.Decimal
}

// ForecastPayload is the raw forecast data delivered by the forecast source
// for a single horizon.
type ForecastPayload struct {
	Horizon          Horizon
	MonthlyActuals   []MonthlyRecord
	MonthlyScenarios map[Scenario][]MonthlyRecord
	BaseProjection   *BaseProjection
	Momentum         Momentum
	MonthOverMonth   *decimal.Decimal
	YearOverYear     *decimal.Decimal
	MonthsAvailable  int
	TrendFit         *decimal.Decimal
	Insights         []string
}

// IsEmpty returns true when the payload carries neither history nor
// projections, in which case rendering must show an insufficient-history
// state rather than an error.
func (p ForecastPayload) IsEmpty() bool {
	return len(p.MonthlyActuals) == 0 && len(p.MonthlyScenarios) == 0
}
