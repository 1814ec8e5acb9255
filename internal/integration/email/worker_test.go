package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/domain/entity"
	"github.com/salon-pulse/backend/internal/integration/email/templates"
)

// memoryQueue is an in-memory DigestQueueRepository for worker tests.
type memoryQueue struct {
	jobs map[uuid.UUID]*entity.DigestJob
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: map[uuid.UUID]*entity.DigestJob{}}
}

func (q *memoryQueue) Create(_ context.Context, job *entity.DigestJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.DigestJob, error) {
	pending := make([]*entity.DigestJob, 0)
	for _, job := range q.jobs {
		if job.Status == entity.DigestStatusPending && !job.ScheduledAt.After(time.Now().UTC()) {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.DigestJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.DigestJob, error) {
	return q.jobs[id], nil
}

func (q *memoryQueue) GetByRecipient(_ context.Context, email string) ([]*entity.DigestJob, error) {
	jobs := make([]*entity.DigestJob, 0)
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (q *memoryQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

func newTestWorker(t *testing.T, queue *memoryQueue, sender *MockDigestSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func queueDigest(t *testing.T, queue *memoryQueue) *entity.DigestJob {
	t.Helper()

	service := NewService(queue, "https://app.salon-pulse.test")
	err := service.QueueWeeklyDigest(context.Background(), adapter.QueueWeeklyDigestInput{
		RecipientEmail:  "owner@example.com",
		RecipientName:   "Dana",
		SalonName:       "Shear Genius",
		PeriodLabel:     "the week of Mar 9",
		ComparisonLabel: "WoW",
		CurrentTotal:    "$4,500.00",
		PriorTotal:      "$4,100.00",
		PercentChange:   "9.76",
	})
	if err != nil {
		t.Fatalf("failed to queue digest: %v", err)
	}

	for _, job := range queue.jobs {
		return job
	}
	t.Fatal("no job queued")
	return nil
}

func TestDigestWorker(t *testing.T) {
	t.Run("sends a queued digest and marks it sent", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockDigestSender()
		worker := newTestWorker(t, queue, sender)

		job := queueDigest(t, queue)
		worker.ProcessNow(context.Background())

		if len(sender.SentDigests) != 1 {
			t.Fatalf("expected 1 sent digest, got %d", len(sender.SentDigests))
		}
		if queue.jobs[job.ID].Status != entity.DigestStatusSent {
			t.Errorf("expected job to be sent, got %s", queue.jobs[job.ID].Status)
		}
		if queue.jobs[job.ID].ResendID == "" {
			t.Error("expected resend id to be recorded")
		}
	})

	t.Run("rendered digest carries the comparison figures", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockDigestSender()
		worker := newTestWorker(t, queue, sender)

		queueDigest(t, queue)
		worker.ProcessNow(context.Background())

		if len(sender.SentDigests) != 1 {
			t.Fatalf("expected 1 sent digest, got %d", len(sender.SentDigests))
		}
		sent := sender.SentDigests[0]
		if sent.HTML == "" || sent.Text == "" {
			t.Error("expected both HTML and text bodies")
		}
	})

	t.Run("temporary failure schedules a retry", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockDigestSender()
		sender.SetFailure(errors.New("rate limited"), false)
		worker := newTestWorker(t, queue, sender)

		job := queueDigest(t, queue)
		worker.ProcessNow(context.Background())

		stored := queue.jobs[job.ID]
		if stored.Status != entity.DigestStatusPending {
			t.Errorf("expected job back in pending, got %s", stored.Status)
		}
		if stored.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", stored.Attempts)
		}
	})

	t.Run("permanent failure ends the job", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockDigestSender()
		sender.SetFailure(errors.New("invalid recipient"), true)
		worker := newTestWorker(t, queue, sender)

		job := queueDigest(t, queue)
		worker.ProcessNow(context.Background())

		stored := queue.jobs[job.ID]
		if stored.Status != entity.DigestStatusFailed {
			t.Errorf("expected job failed, got %s", stored.Status)
		}
	})
}
