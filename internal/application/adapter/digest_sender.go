// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendDigestInput represents the input for sending a digest email.
type SendDigestInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendDigestResult represents the result of sending a digest email.
type SendDigestResult struct {
	ResendID string
}

// DigestSender defines the interface for sending digest emails via an external provider.
type DigestSender interface {
	// Send sends a digest email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendDigestInput) (*SendDigestResult, error)
}

// DigestService defines the interface for queueing digest emails.
type DigestService interface {
	// QueueWeeklyDigest queues a weekly performance digest email.
	QueueWeeklyDigest(ctx context.Context, input QueueWeeklyDigestInput) error
}

// QueueWeeklyDigestInput represents the input for queueing a weekly digest email.
type QueueWeeklyDigestInput struct {
	RecipientEmail  string
	RecipientName   string
	SalonName       string
	PeriodLabel     string
	ComparisonLabel string
	CurrentTotal    string
	PriorTotal      string
	PercentChange   string
	DashboardURL    string
}
