// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	"github.com/salon-pulse/backend/internal/integration/persistence/model"
)

// forecastRepository implements the adapter.ForecastRepository interface.
type forecastRepository struct {
	db *gorm.DB
}

// NewForecastRepository creates a new forecast repository instance.
func NewForecastRepository(db *gorm.DB) adapter.ForecastRepository {
	return &forecastRepository{
		db: db,
	}
}

// GetForecastPayload assembles the forecast payload for a horizon from the
// forecast_months rows (history plus per-scenario projections) and the
// horizon's forecast_summaries row. A horizon with no rows at all yields an
// empty payload, which the use case reports as insufficient history.
func (r *forecastRepository) GetForecastPayload(
	ctx context.Context,
	horizon entity.Horizon,
	locationID *string,
) (*entity.ForecastPayload, error) {
	var months []model.ForecastMonthModel

	query := r.db.WithContext(ctx).
		Where("horizon = ?", int(horizon))
	query = scopeLocation(query, locationID)

	err := query.
		Order("period ASC").
		Find(&months).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast months: %w", err)
	}

	payload := &entity.ForecastPayload{
		Horizon:          horizon,
		MonthlyScenarios: make(map[entity.Scenario][]entity.MonthlyRecord),
	}

	for _, m := range months {
		record := m.ToRecord()
		if m.Kind == model.KindActual {
			payload.MonthlyActuals = append(payload.MonthlyActuals, record)
			continue
		}
		scenario := entity.Scenario(m.Kind)
		if !scenario.IsValid() {
			continue
		}
		payload.MonthlyScenarios[scenario] = append(payload.MonthlyScenarios[scenario], record)
	}

	if len(payload.MonthlyScenarios) == 0 {
		payload.MonthlyScenarios = nil
	}

	if err := r.attachSummary(ctx, horizon, locationID, payload); err != nil {
		return nil, err
	}

	return payload, nil
}

// attachSummary loads the forecast_summaries row for the horizon into the
// payload. A missing row leaves the base projection nil, which suppresses the
// summary in the response without failing it.
func (r *forecastRepository) attachSummary(
	ctx context.Context,
	horizon entity.Horizon,
	locationID *string,
	payload *entity.ForecastPayload,
) error {
	var summary model.ForecastSummaryModel

	query := r.db.WithContext(ctx).
		Where("horizon = ?", int(horizon))
	query = scopeLocation(query, locationID)

	err := query.First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get forecast summary: %w", err)
	}

	payload.BaseProjection = &entity.BaseProjection{
		Revenue:      summary.BaseRevenue,
		Appointments: summary.BaseAppointments,
	}
	payload.Momentum = entity.Momentum(summary.Momentum)
	payload.MonthOverMonth = summary.MonthOverMonth
	payload.YearOverYear = summary.YearOverYear
	payload.MonthsAvailable = summary.MonthsAvailable
	payload.TrendFit = summary.TrendFit
	payload.Insights = []string(summary.Insights)

	return nil
}

// scopeLocation narrows a query to one location, or to the all-locations rows
// (location_id IS NULL) when no filter is given.
func scopeLocation(query *gorm.DB, locationID *string) *gorm.DB {
	if locationID != nil {
		return query.Where("location_id = ?", *locationID)
	}
	return query.Where("location_id IS NULL")
}
