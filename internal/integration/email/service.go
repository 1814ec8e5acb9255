// Package email provides digest email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
)

// Service handles digest queueing operations.
type Service struct {
	queue      adapter.DigestQueueRepository
	appBaseURL string
}

// NewService creates a new digest service.
func NewService(queue adapter.DigestQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueWeeklyDigest queues a weekly performance digest email.
func (s *Service) QueueWeeklyDigest(ctx context.Context, input adapter.QueueWeeklyDigestInput) error {
	subject := fmt.Sprintf("%s: your week in numbers - Salon Pulse", input.SalonName)

	dashboardURL := input.DashboardURL
	if dashboardURL == "" {
		dashboardURL = s.appBaseURL
	}

	templateData := map[string]interface{}{
		"recipient_name":   input.RecipientName,
		"salon_name":       input.SalonName,
		"period_label":     input.PeriodLabel,
		"comparison_label": input.ComparisonLabel,
		"current_total":    input.CurrentTotal,
		"prior_total":      input.PriorTotal,
		"percent_change":   input.PercentChange,
		"dashboard_url":    dashboardURL,
	}

	job := entity.NewDigestJob(
		entity.TemplateWeeklyDigest,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewDigestError(
			domainerror.ErrCodeDigestQueueFailed,
			"failed to queue weekly digest",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.DigestService.
var _ adapter.DigestService = (*Service)(nil)
