// Package digest contains the weekly digest use case.
package digest

import (
	"context"
	"strings"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/application/usecase/trends"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
)

// ComparisonProvider computes the trend comparison a digest is built from.
type ComparisonProvider interface {
	Execute(ctx context.Context, input trends.GetTrendComparisonInput) (*trends.GetTrendComparisonOutput, error)
}

// QueueWeeklyDigestInput represents the input for queueing a weekly digest.
type QueueWeeklyDigestInput struct {
	RecipientEmail string
	RecipientName  string
	SalonName      string
	LocationID     *string
}

// QueueWeeklyDigestUseCase builds a week-over-week revenue summary and queues
// it as a digest email.
type QueueWeeklyDigestUseCase struct {
	comparisons   ComparisonProvider
	digestService adapter.DigestService
}

// NewQueueWeeklyDigestUseCase creates a new QueueWeeklyDigestUseCase instance.
func NewQueueWeeklyDigestUseCase(comparisons ComparisonProvider, digestService adapter.DigestService) *QueueWeeklyDigestUseCase {
	return &QueueWeeklyDigestUseCase{
		comparisons:   comparisons,
		digestService: digestService,
	}
}

// Execute computes the last-7-days revenue comparison and queues the digest
// email for the recipient.
func (uc *QueueWeeklyDigestUseCase) Execute(ctx context.Context, input QueueWeeklyDigestInput) error {
	if err := uc.validateInput(input); err != nil {
		return err
	}

	comparison, err := uc.comparisons.Execute(ctx, trends.GetTrendComparisonInput{
		Selector:   entity.RangeLast7Days,
		Mode:       entity.ComparisonMonthOverMonth,
		Metric:     entity.MetricRevenue,
		LocationID: input.LocationID,
	})
	if err != nil {
		return err
	}

	periodLabel := comparison.Period.CurrentFrom.Format("Jan 2") + " - " + comparison.Period.CurrentTo.Format("Jan 2")

	return uc.digestService.QueueWeeklyDigest(ctx, adapter.QueueWeeklyDigestInput{
		RecipientEmail:  input.RecipientEmail,
		RecipientName:   input.RecipientName,
		SalonName:       input.SalonName,
		PeriodLabel:     periodLabel,
		ComparisonLabel: comparison.Label,
		CurrentTotal:    "$" + comparison.Metrics.CurrentTotal.StringFixed(2),
		PriorTotal:      "$" + comparison.Metrics.PriorTotal.StringFixed(2),
		PercentChange:   comparison.Metrics.PercentChange.StringFixed(2),
	})
}

// validateInput validates the input parameters.
func (uc *QueueWeeklyDigestUseCase) validateInput(input QueueWeeklyDigestInput) error {
	email := strings.TrimSpace(input.RecipientEmail)
	if email == "" || !strings.Contains(email, "@") {
		return domainerror.NewDigestError(
			domainerror.ErrCodeInvalidDigestRecipient,
			"recipient email is required",
			domainerror.ErrInvalidDigestRecipient,
		)
	}
	return nil
}
