// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale represents a single closed salon ticket.
type Sale struct {
	ID         uuid.UUID
	LocationID *uuid.UUID
	Date       time.Time
	Amount     decimal.Decimal
	ServiceIDs []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
