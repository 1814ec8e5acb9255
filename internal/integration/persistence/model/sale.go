// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/salon-pulse/backend/internal/domain/entity"
)

// SaleModel represents the daily_sales table in the database. Each row is a
// single closed salon ticket; the trends queries aggregate these per day.
type SaleModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LocationID *uuid.UUID      `gorm:"type:uuid;index"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ServiceIDs pq.StringArray  `gorm:"type:uuid[]"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "daily_sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:         m.ID,
		LocationID: m.LocationID,
		Date:       m.Date,
		Amount:     m.Amount,
		ServiceIDs: []string(m.ServiceIDs),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:         sale.ID,
		LocationID: sale.LocationID,
		Date:       sale.Date,
		Amount:     sale.Amount,
		ServiceIDs: pq.StringArray(sale.ServiceIDs),
		CreatedAt:  sale.CreatedAt,
		UpdatedAt:  sale.UpdatedAt,
	}
}
