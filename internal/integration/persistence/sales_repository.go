// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
)

// salesRepository implements the adapter.SalesRepository interface.
type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a new sales repository instance.
func NewSalesRepository(db *gorm.DB) adapter.SalesRepository {
	return &salesRepository{
		db: db,
	}
}

// GetDailySeries returns one aggregated record per calendar day with sales
// inside the inclusive [from, to] range, in ascending date order. Days without
// sales are absent; the series aligner fills them.
func (r *salesRepository) GetDailySeries(
	ctx context.Context,
	from, to time.Time,
	locationID *string,
) ([]entity.DailyRecord, error) {
	var results []struct {
		Date         time.Time       `gorm:"column:date"`
		Revenue      decimal.Decimal `gorm:"column:revenue"`
		Transactions int             `gorm:"column:transactions"`
	}

	query := r.db.WithContext(ctx).
		Table("daily_sales").
		Select("date, COALESCE(SUM(amount), 0) as revenue, COUNT(*) as transactions").
		Where("date >= ?", from).
		Where("date <= ?", to)

	if locationID != nil {
		query = query.Where("location_id = ?", *locationID)
	}

	err := query.
		Group("date").
		Order("date ASC").
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get daily series: %w", err)
	}

	records := make([]entity.DailyRecord, len(results))
	for i, res := range results {
		records[i] = entity.DailyRecord{
			Date:         res.Date,
			Revenue:      res.Revenue,
			Transactions: res.Transactions,
		}
	}

	return records, nil
}
