// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DigestStatus represents the status of a digest email job in the queue.
type DigestStatus string

const (
	DigestStatusPending    DigestStatus = "pending"
	DigestStatusProcessing DigestStatus = "processing"
	DigestStatusSent       DigestStatus = "sent"
	DigestStatusFailed     DigestStatus = "failed"
)

// DigestTemplateType represents the type of digest template.
type DigestTemplateType string

const (
	TemplateWeeklyDigest DigestTemplateType = "weekly_digest"
)

// DigestJob represents a digest email in the queue waiting to be sent.
type DigestJob struct {
	ID             uuid.UUID
	TemplateType   DigestTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         DigestStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewDigestJob creates a new DigestJob with default values.
func NewDigestJob(templateType DigestTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *DigestJob {
	now := time.Now().UTC()
	return &DigestJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         DigestStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the digest job as currently being processed.
func (d *DigestJob) MarkProcessing() {
	d.Status = DigestStatusProcessing
}

// MarkSent marks the digest job as successfully sent.
func (d *DigestJob) MarkSent(resendID string) {
	d.Status = DigestStatusSent
	d.ResendID = resendID
	now := time.Now().UTC()
	d.ProcessedAt = &now
}

// MarkFailed marks the digest job as failed and schedules a retry if attempts remain.
func (d *DigestJob) MarkFailed(err error, permanent bool) {
	d.Attempts++
	d.LastError = err.Error()

	if permanent || d.Attempts >= d.MaxAttempts {
		d.Status = DigestStatusFailed
		now := time.Now().UTC()
		d.ProcessedAt = &now
	} else {
		d.Status = DigestStatusPending
		d.ScheduledAt = d.calculateNextRetry()
	}
}

// calculateNextRetry calculates the next retry time using exponential backoff.
// Retry delays: 0s (immediate), 1min, 5min
func (d *DigestJob) calculateNextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if d.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[d.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// CanRetry returns true if the digest job can be retried.
func (d *DigestJob) CanRetry() bool {
	return d.Attempts < d.MaxAttempts
}

// IsReadyToProcess returns true if the digest job is ready to be processed.
func (d *DigestJob) IsReadyToProcess() bool {
	return d.Status == DigestStatusPending && time.Now().UTC().After(d.ScheduledAt)
}
