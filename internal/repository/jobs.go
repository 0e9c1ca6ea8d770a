package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/gen/ent"
	"github.com/tobi-adeyemi/extractflow/gen/ent/job"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

// JobRepository persists jobs. Every transition method is a conditional
// update guarded on the expected prior status and returns whether this
// caller won the transition, so concurrent workers can race safely.
type JobRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Job, error)
	// ListPollable returns QUEUED and POLLING jobs that have not expired,
	// oldest poll first.
	ListPollable(ctx context.Context, now time.Time, limit int) ([]entity.Job, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]entity.Job, error)

	MarkUploading(ctx context.Context, id uuid.UUID) (bool, error)
	MarkPolling(ctx context.Context, id uuid.UUID, operationRef string, at time.Time) (bool, error)
	TouchPolled(ctx context.Context, id uuid.UUID, at time.Time) error
	Complete(ctx context.Context, id uuid.UUID, fields json.RawMessage, at time.Time) (bool, error)
	Fail(ctx context.Context, id uuid.UUID, message string, at time.Time) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
	Expire(ctx context.Context, id uuid.UUID) (bool, error)
	Requeue(ctx context.Context, id uuid.UUID, expiresAt time.Time) (bool, error)
	// AccelerateExpiry shortens expires_at for every job in the session;
	// lengthening is refused by the predicate.
	AccelerateExpiry(ctx context.Context, sessionID uuid.UUID, newExpiry time.Time) (int, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

func nonTerminalStatuses() []string {
	out := make([]string, 0, len(constants.NonTerminalJobStatuses))
	for _, s := range constants.NonTerminalJobStatuses {
		out = append(out, string(s))
	}
	return out
}

func (r *jobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toJobEntity(row), nil
}

func (r *jobRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(job.SessionIDEQ(sessionID)).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toJobEntities(rows), nil
}

func (r *jobRepo) ListPollable(ctx context.Context, now time.Time, limit int) ([]entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(
			job.StatusIn(string(constants.JobStatusQueued), string(constants.JobStatusPolling)),
			job.ExpiresAtGT(now),
		).
		Order(ent.Asc(job.FieldLastPolledAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toJobEntities(rows), nil
}

func (r *jobRepo) ListExpired(ctx context.Context, now time.Time, limit int) ([]entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(
			job.ExpiresAtLTE(now),
			job.StatusNEQ(string(constants.JobStatusExpired)),
		).
		Order(ent.Asc(job.FieldExpiresAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toJobEntities(rows), nil
}

func (r *jobRepo) MarkUploading(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(job.IDEQ(id), job.StatusEQ(string(constants.JobStatusQueued))).
		SetStatus(string(constants.JobStatusUploading)).
		Save(ctx)
	return n > 0, err
}

func (r *jobRepo) MarkPolling(ctx context.Context, id uuid.UUID, operationRef string, at time.Time) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(job.IDEQ(id), job.StatusEQ(string(constants.JobStatusUploading))).
		SetStatus(string(constants.JobStatusPolling)).
		SetExternalOperationRef(operationRef).
		SetPollingStartedAt(at).
		SetLastPolledAt(at).
		Save(ctx)
	if err != nil {
		r.log.Error("job mark polling failed", "job_id", id, "err", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobRepo) TouchPolled(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.ent.Job.Update().
		Where(job.IDEQ(id), job.StatusEQ(string(constants.JobStatusPolling))).
		SetLastPolledAt(at).
		Save(ctx)
	return err
}

func (r *jobRepo) Complete(ctx context.Context, id uuid.UUID, fields json.RawMessage, at time.Time) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(job.IDEQ(id), job.StatusIn(nonTerminalStatuses()...)).
		SetStatus(string(constants.JobStatusCompleted)).
		SetExtractedFields(fields).
		SetLastPolledAt(at).
		Save(ctx)
	if err != nil {
		r.log.Error("job complete failed", "job_id", id, "err", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("job completed", "job_id", id)
	}
	return n > 0, nil
}

func (r *jobRepo) Fail(ctx context.Context, id uuid.UUID, message string, at time.Time) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(job.IDEQ(id), job.StatusIn(nonTerminalStatuses()...)).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetLastPolledAt(at).
		Save(ctx)
	if err != nil {
		r.log.Error("job fail transition failed", "job_id", id, "err", err)
		return false, err
	}
	if n > 0 {
		r.log.Warn("job failed", "job_id", id, "error", message)
	}
	return n > 0, nil
}

func (r *jobRepo) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(job.IDEQ(id), job.StatusIn(nonTerminalStatuses()...)).
		SetStatus(string(constants.JobStatusCancelled)).
		Save(ctx)
	return n > 0, err
}

func (r *jobRepo) Expire(ctx context.Context, id uuid.UUID) (bool, error) {
	// Expiration also reclaims terminal jobs; only an already-EXPIRED row
	// is a no-op.
	n, err := r.ent.Job.Update().
		Where(job.IDEQ(id), job.StatusNEQ(string(constants.JobStatusExpired))).
		SetStatus(string(constants.JobStatusExpired)).
		Save(ctx)
	return n > 0, err
}

func (r *jobRepo) Requeue(ctx context.Context, id uuid.UUID, expiresAt time.Time) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(job.IDEQ(id), job.StatusEQ(string(constants.JobStatusFailed))).
		SetStatus(string(constants.JobStatusQueued)).
		ClearExternalOperationRef().
		ClearErrorMessage().
		ClearPollingStartedAt().
		ClearLastPolledAt().
		SetExpiresAt(expiresAt).
		Save(ctx)
	return n > 0, err
}

func (r *jobRepo) AccelerateExpiry(ctx context.Context, sessionID uuid.UUID, newExpiry time.Time) (int, error) {
	return r.ent.Job.Update().
		Where(job.SessionIDEQ(sessionID), job.ExpiresAtGT(newExpiry)).
		SetExpiresAt(newExpiry).
		Save(ctx)
}

func toJobEntity(j *ent.Job) *entity.Job {
	return &entity.Job{
		ID:                   j.ID,
		SessionID:            j.SessionID,
		UserID:               j.UserID,
		Status:               constants.JobStatus(j.Status),
		Format:               j.Format,
		SourceFilename:       j.SourceFilename,
		FilePath:             j.FilePath,
		PageCount:            j.PageCount,
		CreditsCharged:       j.CreditsCharged,
		ExternalOperationRef: j.ExternalOperationRef,
		ExtractedFields:      j.ExtractedFields,
		ErrorMessage:         j.ErrorMessage,
		PollingStartedAt:     j.PollingStartedAt,
		LastPolledAt:         j.LastPolledAt,
		CreatedAt:            j.CreatedAt,
		ExpiresAt:            j.ExpiresAt,
	}
}

func toJobEntities(rows []*ent.Job) []entity.Job {
	out := make([]entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toJobEntity(row))
	}
	return out
}
