package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/gen/ent"
	"github.com/tobi-adeyemi/extractflow/gen/ent/cleanuplog"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

// CleanupLogRepository records one audit row per expiration sweep.
type CleanupLogRepository interface {
	StartRun(ctx context.Context) (*entity.CleanupLog, error)
	FinishRun(ctx context.Context, id uuid.UUID, result entity.CleanupLog) error
	ListRecent(ctx context.Context, limit int) ([]entity.CleanupLog, error)
}

type cleanupLogRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCleanupLogRepository(entc *ent.Client, log *slog.Logger) CleanupLogRepository {
	if log == nil {
		log = slog.Default()
	}
	return &cleanupLogRepo{ent: entc, log: log}
}

func (r *cleanupLogRepo) StartRun(ctx context.Context) (*entity.CleanupLog, error) {
	row, err := r.ent.CleanupLog.Create().
		SetStatus(string(constants.CleanupStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("cleanup run start failed", "err", err)
		return nil, err
	}
	return toCleanupLogEntity(row), nil
}

func (r *cleanupLogRepo) FinishRun(ctx context.Context, id uuid.UUID, result entity.CleanupLog) error {
	_, err := r.ent.CleanupLog.UpdateOneID(id).
		SetCompletedAt(time.Now()).
		SetSessionsExpired(result.SessionsExpired).
		SetJobsExpired(result.JobsExpired).
		SetBlobsDeleted(result.BlobsDeleted).
		SetErrorCount(result.ErrorCount).
		SetStatus(string(result.Status)).
		Save(ctx)
	if err != nil {
		r.log.Error("cleanup run finish failed", "run_id", id, "err", err)
	}
	return err
}

func (r *cleanupLogRepo) ListRecent(ctx context.Context, limit int) ([]entity.CleanupLog, error) {
	q := r.ent.CleanupLog.Query().Order(ent.Desc(cleanuplog.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CleanupLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toCleanupLogEntity(row))
	}
	return out, nil
}

func toCleanupLogEntity(c *ent.CleanupLog) *entity.CleanupLog {
	return &entity.CleanupLog{
		ID:              c.ID,
		StartedAt:       c.StartedAt,
		CompletedAt:     c.CompletedAt,
		SessionsExpired: c.SessionsExpired,
		JobsExpired:     c.JobsExpired,
		BlobsDeleted:    c.BlobsDeleted,
		ErrorCount:      c.ErrorCount,
		Status:          constants.CleanupStatus(c.Status),
	}
}
