package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tobi-adeyemi/extractflow/internal/blobstore"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
	"github.com/tobi-adeyemi/extractflow/internal/extraction"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
)

// Refunder returns a job's charged credits to its owner.
type Refunder interface {
	RefundJob(ctx context.Context, job *entity.Job, reason string) (*entity.Transaction, error)
}

// Tracker drives one job through submit and poll against the extraction
// service. All terminal transitions go through conditional repository
// updates, so Submit and PollOnce are safe to call concurrently from
// multiple workers; the loser of a race is a no-op.
type Tracker struct {
	jobs    repository.JobRepository
	client  extraction.Client
	blobs   blobstore.Store
	refunds Refunder
	logger  *slog.Logger

	modelID     string
	pollCeiling time.Duration
	nowFunc     func() time.Time
}

type TrackerConfig struct {
	ModelID     string
	PollCeiling time.Duration
}

func NewTracker(jobs repository.JobRepository, client extraction.Client, blobs blobstore.Store, refunds Refunder, cfg TrackerConfig, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollCeiling <= 0 {
		cfg.PollCeiling = 30 * time.Minute
	}
	return &Tracker{
		jobs:        jobs,
		client:      client,
		blobs:       blobs,
		refunds:     refunds,
		logger:      logger,
		modelID:     cfg.ModelID,
		pollCeiling: cfg.PollCeiling,
		nowFunc:     time.Now,
	}
}

// Submit uploads a QUEUED job's unit to the extraction service and records
// the operation ref. Jobs already claimed by another worker are skipped.
func (t *Tracker) Submit(ctx context.Context, job *entity.Job) error {
	won, err := t.jobs.MarkUploading(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("claim job %s: %w", job.ID, err)
	}
	if !won {
		return nil
	}

	payload, err := t.blobs.Get(ctx, job.FilePath)
	if err != nil {
		return t.failAndRefund(ctx, job, fmt.Sprintf("read unit payload: %v", err))
	}

	ref, err := t.client.Submit(ctx, payload, t.modelID)
	if err != nil {
		return t.failAndRefund(ctx, job, fmt.Sprintf("submit to extraction service: %v", err))
	}

	now := t.nowFunc()
	if _, err := t.jobs.MarkPolling(ctx, job.ID, ref, now); err != nil {
		return fmt.Errorf("record operation ref for job %s: %w", job.ID, err)
	}
	t.logger.Info("job submitted", "job_id", job.ID, "operation_ref", ref)
	return nil
}

// PollOnce queries the external operation and applies at most one state
// change. Calling it on a terminal job, or concurrently with another poller,
// never double-writes fields or double-issues a refund.
func (t *Tracker) PollOnce(ctx context.Context, job *entity.Job) error {
	if job.Status.IsTerminal() {
		return nil
	}
	now := t.nowFunc()

	// Bound resource use against a stuck external operation.
	if job.PollingStartedAt != nil && now.Sub(*job.PollingStartedAt) > t.pollCeiling {
		msg := fmt.Sprintf("extraction timed out after %s", t.pollCeiling)
		return t.failAndRefund(ctx, job, msg)
	}

	if job.ExternalOperationRef == nil {
		return fmt.Errorf("job %s has no operation ref to poll", job.ID)
	}

	result, err := t.client.Poll(ctx, *job.ExternalOperationRef)
	if err != nil {
		// Transport errors are retried on the next cycle; the ceiling
		// above bounds how long that can go on.
		t.logger.Warn("poll failed, will retry", "job_id", job.ID, "err", err)
		return nil
	}

	switch result.Status {
	case extraction.StatusRunning:
		return t.jobs.TouchPolled(ctx, job.ID, now)

	case extraction.StatusSucceeded:
		if err := extraction.ValidateFields(result.Fields); err != nil {
			return t.failAndRefund(ctx, job, fmt.Sprintf("invalid extraction payload: %v", err))
		}
		won, err := t.jobs.Complete(ctx, job.ID, result.Fields, now)
		if err != nil {
			return err
		}
		if !won {
			t.logger.Debug("job already terminal, completion skipped", "job_id", job.ID)
		}
		return nil

	case extraction.StatusFailed:
		msg := result.Error
		if msg == "" {
			msg = "extraction service reported failure"
		}
		return t.failAndRefund(ctx, job, msg)
	}
	return nil
}

// failAndRefund transitions the job to FAILED and refunds its charge. The
// refund only happens for the caller that won the transition.
func (t *Tracker) failAndRefund(ctx context.Context, job *entity.Job, message string) error {
	won, err := t.jobs.Fail(ctx, job.ID, message, t.nowFunc())
	if err != nil {
		return err
	}
	if !won {
		return nil
	}
	if _, err := t.refunds.RefundJob(ctx, job, message); err != nil {
		return fmt.Errorf("refund job %s: %w", job.ID, err)
	}
	return nil
}
