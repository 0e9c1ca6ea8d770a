package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/blobstore"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
)

const sweepBatchSize = 500

// Engine reclaims sessions and jobs whose TTL has elapsed: blobs deleted,
// statuses moved to EXPIRED, one CleanupLog row per sweep. Item-level errors
// are counted and never abort the sweep; re-running over already-expired
// rows is a no-op.
type Engine struct {
	sessions repository.SessionRepository
	jobs     repository.JobRepository
	runs     repository.CleanupLogRepository
	blobs    blobstore.Store
	logger   *slog.Logger

	nowFunc func() time.Time
}

func NewEngine(
	sessions repository.SessionRepository,
	jobs repository.JobRepository,
	runs repository.CleanupLogRepository,
	blobs blobstore.Store,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		sessions: sessions,
		jobs:     jobs,
		runs:     runs,
		blobs:    blobs,
		logger:   logger,
		nowFunc:  time.Now,
	}
}

// Sweep runs one pass and returns its audit row.
func (e *Engine) Sweep(ctx context.Context) (*entity.CleanupLog, error) {
	run, err := e.runs.StartRun(ctx)
	if err != nil {
		return nil, err
	}
	now := e.nowFunc()
	result := entity.CleanupLog{Status: constants.CleanupStatusCompleted}

	if err := e.sweepSessions(ctx, now, &result); err != nil {
		e.logger.Error("session sweep aborted", "run_id", run.ID, "err", err)
		result.Status = constants.CleanupStatusFailed
	}
	if result.Status != constants.CleanupStatusFailed {
		if err := e.sweepJobs(ctx, now, &result); err != nil {
			e.logger.Error("job sweep aborted", "run_id", run.ID, "err", err)
			result.Status = constants.CleanupStatusFailed
		}
	}
	if result.Status == constants.CleanupStatusCompleted && result.ErrorCount > 0 {
		result.Status = constants.CleanupStatusCompletedWithErrors
	}

	if err := e.runs.FinishRun(ctx, run.ID, result); err != nil {
		return nil, err
	}
	e.logger.Info("cleanup sweep finished",
		"run_id", run.ID,
		"sessions_expired", result.SessionsExpired,
		"jobs_expired", result.JobsExpired,
		"blobs_deleted", result.BlobsDeleted,
		"errors", result.ErrorCount,
		"status", result.Status,
	)
	result.ID = run.ID
	result.StartedAt = run.StartedAt
	return &result, nil
}

func (e *Engine) sweepSessions(ctx context.Context, now time.Time, result *entity.CleanupLog) error {
	expired, err := e.sessions.ListExpired(ctx, now, sweepBatchSize)
	if err != nil {
		return err
	}
	for _, s := range expired {
		if s.ResultBundlePath != nil {
			if err := e.blobs.Delete(ctx, *s.ResultBundlePath); err != nil {
				e.logger.Warn("bundle delete failed", "session_id", s.ID, "err", err)
				result.ErrorCount++
			} else {
				result.BlobsDeleted++
			}
		}
		won, err := e.sessions.Expire(ctx, s.ID)
		if err != nil {
			e.logger.Warn("session expire failed", "session_id", s.ID, "err", err)
			result.ErrorCount++
			continue
		}
		if won {
			result.SessionsExpired++
		}
	}
	return nil
}

func (e *Engine) sweepJobs(ctx context.Context, now time.Time, result *entity.CleanupLog) error {
	expired, err := e.jobs.ListExpired(ctx, now, sweepBatchSize)
	if err != nil {
		return err
	}
	for _, j := range expired {
		if err := e.blobs.Delete(ctx, j.FilePath); err != nil {
			e.logger.Warn("unit blob delete failed", "job_id", j.ID, "err", err)
			result.ErrorCount++
		} else {
			result.BlobsDeleted++
		}
		won, err := e.jobs.Expire(ctx, j.ID)
		if err != nil {
			e.logger.Warn("job expire failed", "job_id", j.ID, "err", err)
			result.ErrorCount++
			continue
		}
		if won {
			result.JobsExpired++
		}
	}
	return nil
}
