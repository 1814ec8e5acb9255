// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
	"github.com/salon-pulse/backend/internal/integration/persistence/model"
)

// digestQueueRepository implements the adapter.DigestQueueRepository interface.
type digestQueueRepository struct {
	db *gorm.DB
}

// NewDigestQueueRepository creates a new digest queue repository instance.
func NewDigestQueueRepository(db *gorm.DB) adapter.DigestQueueRepository {
	return &digestQueueRepository{
		db: db,
	}
}

// Create adds a new digest job to the queue.
func (r *digestQueueRepository) Create(ctx context.Context, job *entity.DigestJob) error {
	digestModel := model.DigestQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(digestModel)
	if result.Error != nil {
		return domainerror.NewDigestError(
			domainerror.ErrCodeDigestQueueFailed,
			"failed to create digest job",
			result.Error,
		)
	}
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed.
func (r *digestQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.DigestJob, error) {
	var models []model.DigestQueueModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.DigestStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.DigestJob, len(models))
	for i, m := range models {
		jobs[i] = m.ToEntity()
	}

	return jobs, nil
}

// Update saves changes to a digest job.
func (r *digestQueueRepository) Update(ctx context.Context, job *entity.DigestJob) error {
	digestModel := model.DigestQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(digestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetByID retrieves a specific job by its ID.
func (r *digestQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DigestJob, error) {
	var digestModel model.DigestQueueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&digestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDigestJobNotFound
		}
		return nil, result.Error
	}
	return digestModel.ToEntity(), nil
}

// GetByRecipient retrieves jobs for a specific email address.
func (r *digestQueueRepository) GetByRecipient(ctx context.Context, email string) ([]*entity.DigestJob, error) {
	var models []model.DigestQueueModel
	result := r.db.WithContext(ctx).
		Where("recipient_email = ?", email).
		Order("created_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.DigestJob, len(models))
	for i, m := range models {
		jobs[i] = m.ToEntity()
	}

	return jobs, nil
}

// DeleteOldSentJobs removes sent jobs older than the specified duration.
func (r *digestQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.DigestStatusSent).
		Where("processed_at < ?", cutoff).
		Delete(&model.DigestQueueModel{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
