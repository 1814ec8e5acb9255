// Package forecast contains forecast blending use cases.
package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// Fixed summary band of ±15% around the scenario-adjusted figure. This is a
// product-level simplification applied uniformly regardless of scenario or
// horizon; it is not derived from the underlying confidence data.
var (
	summaryLowerFactor = decimal.NewFromFloat(0.85)
	summaryUpperFactor = decimal.NewFromFloat(1.15)
)

// DeriveSummary computes the scenario-adjusted executive summary from the
// horizon-specific base projection. Returns nil when the payload carries no
// base projection, which renders as insufficient history.
//
// Momentum, the MoM/YoY deltas, months available, and trend fit pass through
// from the source payload unchanged.
func DeriveSummary(payload *entity.ForecastPayload, scenario entity.Scenario) *entity.ForecastSummary {
	if payload == nil || payload.BaseProjection == nil {
		return nil
	}

	multiplier := scenario.Multiplier()

	revenue := payload.BaseProjection.Revenue.Mul(multiplier).Round(2)
	appointments := decimal.NewFromInt(int64(payload.BaseProjection.Appointments)).
		Mul(multiplier).Round(0)

	momentum := payload.Momentum
	if momentum == "" {
		momentum = entity.MomentumSteady
	}

	return &entity.ForecastSummary{
		Revenue:           revenue,
		RevenueLower:      revenue.Mul(summaryLowerFactor).Round(2),
		RevenueUpper:      revenue.Mul(summaryUpperFactor).Round(2),
		Appointments:      int(appointments.IntPart()),
		AppointmentsLower: int(appointments.Mul(summaryLowerFactor).Round(0).IntPart()),
		AppointmentsUpper: int(appointments.Mul(summaryUpperFactor).Round(0).IntPart()),
		Momentum:          momentum,
		MonthOverMonth:    payload.MonthOverMonth,
		YearOverYear:      payload.YearOverYear,
		MonthsAvailable:   payload.MonthsAvailable,
		TrendFit:          payload.TrendFit,
	}
}
