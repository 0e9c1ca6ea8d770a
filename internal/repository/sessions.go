package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/gen/ent"
	"github.com/tobi-adeyemi/extractflow/gen/ent/session"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

const postProcessingClaimed = "PROCESSING"

// SessionRepository persists sessions. Transitions follow the same
// conditional-update contract as JobRepository.
type SessionRepository interface {
	// Create writes the session and its jobs in one database transaction.
	Create(ctx context.Context, s entity.Session, jobs []entity.Job) (*entity.Session, []entity.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Session, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]entity.Session, error)
	// ListActive returns sessions that have not reached a terminal status,
	// oldest first.
	ListActive(ctx context.Context, limit int) ([]entity.Session, error)

	TransitionStatus(ctx context.Context, id uuid.UUID, from []constants.SessionStatus, to constants.SessionStatus) (bool, error)
	SetCompletedUnits(ctx context.Context, id uuid.UUID, n int) error
	// ClaimPostProcessing flips post_processing_status from unset to
	// PROCESSING; only the caller that wins may run the pipeline.
	ClaimPostProcessing(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// ReclaimStalePostProcessing releases a claim taken at or before the
	// deadline so a later aggregation can win it again.
	ReclaimStalePostProcessing(ctx context.Context, id uuid.UUID, before time.Time) (bool, error)
	FinishPostProcessing(ctx context.Context, id uuid.UUID, bundlePath string) error
	FailSession(ctx context.Context, id uuid.UUID, message string) error
	// AccelerateExpiry shortens expires_at; lengthening is refused by the
	// conditional predicate.
	AccelerateExpiry(ctx context.Context, id uuid.UUID, newExpiry time.Time) (bool, error)
	Expire(ctx context.Context, id uuid.UUID) (bool, error)
	// ResetForReprocess puts a FAILED session back into PROCESSING with a
	// fresh TTL, clearing the post-processing guard.
	ResetForReprocess(ctx context.Context, id uuid.UUID, newExpiry time.Time) (bool, error)
}

type sessionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewSessionRepository(entc *ent.Client, log *slog.Logger) SessionRepository {
	if log == nil {
		log = slog.Default()
	}
	return &sessionRepo{ent: entc, log: log}
}

func (r *sessionRepo) Create(ctx context.Context, s entity.Session, jobs []entity.Job) (*entity.Session, []entity.Job, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, nil, err
	}
	sc := tx.Session.Create()
	if s.ID != uuid.Nil {
		// IDs are minted by the caller so blob keys can be written first.
		sc = sc.SetID(s.ID)
	}
	row, err := sc.
		SetUserID(s.UserID).
		SetStatus(string(s.Status)).
		SetTotalUnits(s.TotalUnits).
		SetNamingTemplate(s.NamingTemplate).
		SetExportColumns(s.ExportColumns).
		SetExpiresAt(s.ExpiresAt).
		Save(ctx)
	if err != nil {
		return nil, nil, rollback(tx, err)
	}

	created := make([]entity.Job, 0, len(jobs))
	for _, j := range jobs {
		jc := tx.Job.Create()
		if j.ID != uuid.Nil {
			jc = jc.SetID(j.ID)
		}
		jr, err := jc.
			SetSessionID(row.ID).
			SetUserID(j.UserID).
			SetStatus(string(constants.JobStatusQueued)).
			SetFormat(j.Format).
			SetSourceFilename(j.SourceFilename).
			SetFilePath(j.FilePath).
			SetPageCount(j.PageCount).
			SetCreditsCharged(j.CreditsCharged).
			SetExpiresAt(s.ExpiresAt).
			Save(ctx)
		if err != nil {
			return nil, nil, rollback(tx, err)
		}
		created = append(created, *toJobEntity(jr))
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	r.log.Info("session created", "session_id", row.ID, "user_id", s.UserID, "total_units", s.TotalUnits)
	return toSessionEntity(row), created, nil
}

func (r *sessionRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	row, err := r.ent.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toSessionEntity(row), nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Session, error) {
	rows, err := r.ent.Session.Query().
		Where(session.UserIDEQ(userID)).
		Order(ent.Desc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toSessionEntity(row))
	}
	return out, nil
}

func (r *sessionRepo) ListExpired(ctx context.Context, now time.Time, limit int) ([]entity.Session, error) {
	rows, err := r.ent.Session.Query().
		Where(
			session.ExpiresAtLTE(now),
			session.StatusNEQ(string(constants.SessionStatusExpired)),
		).
		Order(ent.Asc(session.FieldExpiresAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toSessionEntity(row))
	}
	return out, nil
}

func (r *sessionRepo) ListActive(ctx context.Context, limit int) ([]entity.Session, error) {
	rows, err := r.ent.Session.Query().
		Where(session.StatusIn(
			string(constants.SessionStatusUploading),
			string(constants.SessionStatusProcessing),
			string(constants.SessionStatusPostProcessing),
		)).
		Order(ent.Asc(session.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toSessionEntity(row))
	}
	return out, nil
}

func (r *sessionRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from []constants.SessionStatus, to constants.SessionStatus) (bool, error) {
	froms := make([]string, 0, len(from))
	for _, f := range from {
		froms = append(froms, string(f))
	}
	n, err := r.ent.Session.Update().
		Where(session.IDEQ(id), session.StatusIn(froms...)).
		SetStatus(string(to)).
		Save(ctx)
	return n > 0, err
}

func (r *sessionRepo) SetCompletedUnits(ctx context.Context, id uuid.UUID, units int) error {
	// Guarded so completed_units can never exceed total_units.
	_, err := r.ent.Session.Update().
		Where(session.IDEQ(id), session.TotalUnitsGTE(units)).
		SetCompletedUnits(units).
		Save(ctx)
	return err
}

func (r *sessionRepo) ClaimPostProcessing(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	n, err := r.ent.Session.Update().
		Where(session.IDEQ(id), session.PostProcessingStatusIsNil()).
		SetPostProcessingStatus(postProcessingClaimed).
		SetPostProcessingStartedAt(at).
		SetStatus(string(constants.SessionStatusPostProcessing)).
		Save(ctx)
	return n > 0, err
}

func (r *sessionRepo) ReclaimStalePostProcessing(ctx context.Context, id uuid.UUID, before time.Time) (bool, error) {
	n, err := r.ent.Session.Update().
		Where(
			session.IDEQ(id),
			session.PostProcessingStatusEQ(postProcessingClaimed),
			session.PostProcessingStartedAtLTE(before),
		).
		ClearPostProcessingStatus().
		ClearPostProcessingStartedAt().
		SetStatus(string(constants.SessionStatusProcessing)).
		Save(ctx)
	if err == nil && n > 0 {
		r.log.Warn("reclaimed stale post-processing claim", "session_id", id)
	}
	return n > 0, err
}

func (r *sessionRepo) FinishPostProcessing(ctx context.Context, id uuid.UUID, bundlePath string) error {
	_, err := r.ent.Session.Update().
		Where(session.IDEQ(id), session.PostProcessingStatusEQ(postProcessingClaimed)).
		SetPostProcessingStatus("DONE").
		SetStatus(string(constants.SessionStatusCompleted)).
		SetResultBundlePath(bundlePath).
		Save(ctx)
	if err == nil {
		r.log.Info("session completed", "session_id", id, "bundle", bundlePath)
	}
	return err
}

func (r *sessionRepo) FailSession(ctx context.Context, id uuid.UUID, message string) error {
	froms := []string{
		string(constants.SessionStatusUploading),
		string(constants.SessionStatusProcessing),
		string(constants.SessionStatusPostProcessing),
	}
	n, err := r.ent.Session.Update().
		Where(session.IDEQ(id), session.StatusIn(froms...)).
		SetStatus(string(constants.SessionStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err == nil && n > 0 {
		r.log.Warn("session failed", "session_id", id, "error", message)
	}
	return err
}

func (r *sessionRepo) AccelerateExpiry(ctx context.Context, id uuid.UUID, newExpiry time.Time) (bool, error) {
	n, err := r.ent.Session.Update().
		Where(session.IDEQ(id), session.ExpiresAtGT(newExpiry)).
		SetExpiresAt(newExpiry).
		Save(ctx)
	return n > 0, err
}

func (r *sessionRepo) Expire(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Session.Update().
		Where(session.IDEQ(id), session.StatusNEQ(string(constants.SessionStatusExpired))).
		SetStatus(string(constants.SessionStatusExpired)).
		Save(ctx)
	return n > 0, err
}

func (r *sessionRepo) ResetForReprocess(ctx context.Context, id uuid.UUID, newExpiry time.Time) (bool, error) {
	n, err := r.ent.Session.Update().
		Where(session.IDEQ(id), session.StatusEQ(string(constants.SessionStatusFailed))).
		SetStatus(string(constants.SessionStatusProcessing)).
		ClearPostProcessingStatus().
		ClearPostProcessingStartedAt().
		ClearErrorMessage().
		SetExpiresAt(newExpiry).
		Save(ctx)
	return n > 0, err
}

func toSessionEntity(s *ent.Session) *entity.Session {
	return &entity.Session{
		ID:                      s.ID,
		UserID:                  s.UserID,
		Status:                  constants.SessionStatus(s.Status),
		TotalUnits:              s.TotalUnits,
		CompletedUnits:          s.CompletedUnits,
		NamingTemplate:          s.NamingTemplate,
		ExportColumns:           s.ExportColumns,
		PostProcessingStatus:    s.PostProcessingStatus,
		PostProcessingStartedAt: s.PostProcessingStartedAt,
		ResultBundlePath:        s.ResultBundlePath,
		ErrorMessage:            s.ErrorMessage,
		CreatedAt:               s.CreatedAt,
		ExpiresAt:               s.ExpiresAt,
	}
}
