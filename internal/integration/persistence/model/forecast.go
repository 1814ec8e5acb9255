// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// ForecastMonthModel represents the forecast_months table in the database.
// Each row is one month of figures for a horizon: actual history rows carry
// kind 'actual', projected rows carry the scenario name as their kind.
type ForecastMonthModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	LocationID        *uuid.UUID       `gorm:"type:uuid;index"`
	Horizon           int              `gorm:"not null;index"`
	Period            string           `gorm:"type:varchar(7);not null"`
	Kind              string           `gorm:"type:varchar(20);not null;index"`
	Revenue           decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Appointments      int              `gorm:"not null;default:0"`
	ConfidenceLower   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ConfidenceUpper   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	AppointmentsLower *int             `gorm:"type:integer"`
	AppointmentsUpper *int             `gorm:"type:integer"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ForecastMonthModel.
func (ForecastMonthModel) TableName() string {
	return "forecast_months"
}

// KindActual marks history rows in forecast_months; projected rows use the
// scenario name instead.
const KindActual = "actual"

// ToRecord converts a ForecastMonthModel to a domain MonthlyRecord.
func (m *ForecastMonthModel) ToRecord() entity.MonthlyRecord {
	return entity.MonthlyRecord{
		Period:            m.Period,
		Revenue:           m.Revenue,
		Appointments:      m.Appointments,
		ConfidenceLower:   m.ConfidenceLower,
		ConfidenceUpper:   m.ConfidenceUpper,
		AppointmentsLower: m.AppointmentsLower,
		AppointmentsUpper: m.AppointmentsUpper,
	}
}

// ForecastSummaryModel represents the forecast_summaries table in the
// database. One row per horizon (and optional location) holding the base
// projection plus the pass-through summary figures.
type ForecastSummaryModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	LocationID       *uuid.UUID       `gorm:"type:uuid;index"`
	Horizon          int              `gorm:"not null;index"`
	BaseRevenue      decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	BaseAppointments int              `gorm:"not null;default:0"`
	Momentum         string           `gorm:"type:varchar(20)"`
	MonthOverMonth   *decimal.Decimal `gorm:"type:decimal(8,2)"`
	YearOverYear     *decimal.Decimal `gorm:"type:decimal(8,2)"`
	MonthsAvailable  int              `gorm:"not null;default:0"`
	TrendFit         *decimal.Decimal `gorm:"type:decimal(5,4)"`
	Insights         pq.StringArray   `gorm:"type:text[]"`
	GeneratedAt      time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ForecastSummaryModel.
func (ForecastSummaryModel) TableName() string {
	return "forecast_summaries"
}
