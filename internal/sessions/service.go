package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/blobstore"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
	"github.com/tobi-adeyemi/extractflow/internal/ingest"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
)

// Ledger is the slice of the credit ledger the session manager needs.
type Ledger interface {
	Debit(ctx context.Context, userID uuid.UUID, amount int, reason string, sessionID *uuid.UUID) (*entity.Transaction, error)
	RefundJob(ctx context.Context, job *entity.Job, reason string) (*entity.Transaction, error)
	RefundTransaction(ctx context.Context, orig *entity.Transaction, reason string) (*entity.Transaction, error)
}

// PostProcessor assembles the result bundle once every job has succeeded.
type PostProcessor interface {
	Run(ctx context.Context, session *entity.Session, jobs []entity.Job) (bundlePath string, err error)
}

// StatusReport is what clients see when they poll a session.
type StatusReport struct {
	SessionID      uuid.UUID               `json:"session_id"`
	Status         constants.SessionStatus `json:"status"`
	ProcessedUnits int                     `json:"processed_units"`
	TotalUnits     int                     `json:"total_units"`
	Error          string                  `json:"error,omitempty"`
}

// Service aggregates N jobs into one session: creation with up-front credit
// charge, derived status, cancellation and the admin operations.
type Service struct {
	sessions repository.SessionRepository
	jobs     repository.JobRepository
	ledger   Ledger
	blobs    blobstore.Store
	keys     blobstore.Keys
	post     PostProcessor
	logger   *slog.Logger

	ttl     time.Duration
	nowFunc func() time.Time
}

func NewService(
	sessions repository.SessionRepository,
	jobs repository.JobRepository,
	ledger Ledger,
	blobs blobstore.Store,
	keys blobstore.Keys,
	post PostProcessor,
	ttl time.Duration,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		sessions: sessions,
		jobs:     jobs,
		ledger:   ledger,
		blobs:    blobs,
		keys:     keys,
		post:     post,
		logger:   logger,
		ttl:      ttl,
		nowFunc:  time.Now,
	}
}

// Create charges one credit per page across all uploads, then persists the
// session and one job per upload. A failed debit aborts before anything is
// written; a failed persist refunds the charge and removes written blobs.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, uploads []ingest.Upload, template, columns json.RawMessage) (*entity.Session, error) {
	if len(uploads) == 0 {
		return nil, common.NewAppError("NO_FILES", "at least one file is required", common.ErrInvalidInput)
	}
	units, err := ingest.InspectAll(uploads)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New()
	totalUnits := ingest.TotalPages(units)

	debit, err := s.ledger.Debit(ctx, userID, totalUnits,
		fmt.Sprintf("extraction of %d page(s) across %d file(s)", totalUnits, len(units)), &sessionID)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc()
	jobs := make([]entity.Job, 0, len(units))
	writtenKeys := make([]string, 0, len(units))
	cleanup := func(reason string) {
		for _, key := range writtenKeys {
			if derr := s.blobs.Delete(ctx, key); derr != nil {
				s.logger.Error("orphan blob cleanup failed", "key", key, "err", derr)
			}
		}
		if _, rerr := s.ledger.RefundTransaction(ctx, debit, reason); rerr != nil {
			s.logger.Error("compensating refund failed", "session_id", sessionID, "err", rerr)
		}
	}

	for _, u := range units {
		jobID := uuid.New()
		key := s.keys.UnitKey(userID, sessionID, jobID, u.Filename)
		if err := s.blobs.Put(ctx, key, u.Content); err != nil {
			cleanup("session creation failed: blob write")
			return nil, common.WrapError(err, "store unit payload")
		}
		writtenKeys = append(writtenKeys, key)
		jobs = append(jobs, entity.Job{
			ID:             jobID,
			UserID:         userID,
			Format:         u.Format,
			SourceFilename: u.Filename,
			FilePath:       key,
			PageCount:      u.PageCount,
			CreditsCharged: u.PageCount,
		})
	}

	session := entity.Session{
		ID:             sessionID,
		UserID:         userID,
		Status:         constants.SessionStatusUploading,
		TotalUnits:     totalUnits,
		NamingTemplate: template,
		ExportColumns:  columns,
		ExpiresAt:      now.Add(s.ttl),
	}
	created, _, err := s.sessions.Create(ctx, session, jobs)
	if err != nil {
		cleanup("session creation failed: persist")
		return nil, common.WrapError(err, "persist session")
	}
	return created, nil
}

// Get returns a session owned by userID.
func (s *Service) Get(ctx context.Context, userID, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, common.ErrNotFound
	}
	return session, nil
}

// List returns the server-side authoritative session listing for a user.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]entity.Session, error) {
	return s.sessions.ListByUser(ctx, userID)
}

// AggregateStatus derives the session's status from its jobs, persists the
// progress counter, and triggers post-processing exactly once when every job
// has succeeded.
func (s *Service) AggregateStatus(ctx context.Context, sessionID uuid.UUID) (*StatusReport, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	report := &StatusReport{
		SessionID:  session.ID,
		TotalUnits: session.TotalUnits,
	}
	if session.ErrorMessage != nil {
		report.Error = *session.ErrorMessage
	}

	// Expired/cancelled/completed/failed sessions are settled; report the
	// stored state without touching the jobs.
	if session.Status.IsTerminal() {
		report.Status = session.Status
		report.ProcessedUnits = session.CompletedUnits
		return report, nil
	}

	jobs, err := s.jobs.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rollup := Derive(jobs)
	report.ProcessedUnits = rollup.CompletedUnits
	report.Status = rollup.Status

	if err := s.sessions.SetCompletedUnits(ctx, sessionID, rollup.CompletedUnits); err != nil {
		s.logger.Warn("progress update failed", "session_id", sessionID, "err", err)
	}

	switch {
	case !rollup.AllTerminal:
		// Keep the stored cache roughly in step for listings.
		if session.Status == constants.SessionStatusUploading {
			_, _ = s.sessions.TransitionStatus(ctx, sessionID,
				[]constants.SessionStatus{constants.SessionStatusUploading},
				constants.SessionStatusProcessing)
		}
		return report, nil

	case rollup.AllSucceeded:
		if err := s.runPostProcessing(ctx, session, jobs); err != nil {
			report.Status = constants.SessionStatusFailed
			report.Error = err.Error()
			return report, nil
		}
		report.Status = constants.SessionStatusCompleted
		return report, nil

	case rollup.FailedJobs > 0:
		msg := fmt.Sprintf("%d of %d job(s) failed", rollup.FailedJobs, len(jobs))
		if err := s.sessions.FailSession(ctx, sessionID, msg); err != nil {
			return nil, err
		}
		report.Error = msg
		return report, nil

	default: // cancelled jobs only
		_, _ = s.sessions.TransitionStatus(ctx, sessionID,
			[]constants.SessionStatus{constants.SessionStatusUploading, constants.SessionStatusProcessing},
			constants.SessionStatusCancelled)
		return report, nil
	}
}

// runPostProcessing runs the pipeline for the caller that wins the
// check-and-set; everyone else observes the outcome on a later poll.
func (s *Service) runPostProcessing(ctx context.Context, session *entity.Session, jobs []entity.Job) error {
	won, err := s.sessions.ClaimPostProcessing(ctx, session.ID, s.nowFunc())
	if err != nil {
		return err
	}
	if !won {
		return nil
	}
	bundlePath, err := s.post.Run(ctx, session, jobs)
	if err != nil {
		// Extraction succeeded, so no refunds here; the failure is
		// reported on the session.
		msg := fmt.Sprintf("bundling failed: %v", err)
		if ferr := s.sessions.FailSession(ctx, session.ID, msg); ferr != nil {
			s.logger.Error("marking session failed after bundling error", "session_id", session.ID, "err", ferr)
		}
		return fmt.Errorf("%s", msg)
	}
	return s.sessions.FinishPostProcessing(ctx, session.ID, bundlePath)
}

// RecoverStalled re-derives every active session, settling completions that
// missed their aggregation (an aggregation error on the tick the last job
// turned terminal, or a crash before the rollup ran). Post-processing claims
// older than staleClaimAfter are released first, so a pipeline whose holder
// died mid-run gets picked up again instead of hanging forever.
func (s *Service) RecoverStalled(ctx context.Context, staleClaimAfter time.Duration, limit int) error {
	active, err := s.sessions.ListActive(ctx, limit)
	if err != nil {
		return err
	}
	cutoff := s.nowFunc().Add(-staleClaimAfter)
	for i := range active {
		sess := active[i]
		if sess.Status == constants.SessionStatusPostProcessing &&
			sess.PostProcessingStartedAt != nil && !sess.PostProcessingStartedAt.After(cutoff) {
			if _, err := s.sessions.ReclaimStalePostProcessing(ctx, sess.ID, cutoff); err != nil {
				s.logger.Error("stale claim takeover failed", "session_id", sess.ID, "err", err)
				continue
			}
		}
		if _, err := s.AggregateStatus(ctx, sess.ID); err != nil {
			s.logger.Error("stalled session aggregation failed", "session_id", sess.ID, "err", err)
		}
	}
	return nil
}

// Cancel stops a session that is still UPLOADING or PROCESSING. Every job
// that had not reached a terminal state is cancelled and refunded; jobs that
// already completed keep their results and their charge.
func (s *Service) Cancel(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	won, err := s.sessions.TransitionStatus(ctx, sessionID,
		[]constants.SessionStatus{constants.SessionStatusUploading, constants.SessionStatusProcessing},
		constants.SessionStatusCancelled)
	if err != nil {
		return err
	}
	if !won {
		return common.NewAppError("NOT_CANCELLABLE",
			fmt.Sprintf("session is %s and can no longer be cancelled", session.Status), common.ErrConflict)
	}

	jobs, err := s.jobs.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	for i := range jobs {
		j := jobs[i]
		cancelled, err := s.jobs.Cancel(ctx, j.ID)
		if err != nil {
			return err
		}
		if !cancelled {
			continue // already terminal, leave it alone
		}
		if _, err := s.ledger.RefundJob(ctx, &j, "session cancelled"); err != nil {
			return fmt.Errorf("refund cancelled job %s: %w", j.ID, err)
		}
	}
	s.logger.Info("session cancelled", "session_id", sessionID, "user_id", userID)
	return nil
}

// Download returns the result bundle. Expired sessions fail with ErrExpired
// even if the bundle still physically exists.
func (s *Service) Download(ctx context.Context, userID, sessionID uuid.UUID) ([]byte, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == constants.SessionStatusExpired || s.nowFunc().After(session.ExpiresAt) {
		return nil, common.ErrExpired
	}
	if session.Status != constants.SessionStatusCompleted || session.ResultBundlePath == nil {
		return nil, common.NewAppError("NOT_READY", "session has no downloadable bundle", common.ErrConflict)
	}
	data, err := s.blobs.Get(ctx, *session.ResultBundlePath)
	if err != nil {
		return nil, common.WrapError(err, "read bundle")
	}
	return data, nil
}

// AccelerateExpiry shortens a session's TTL (admin/ops tool). It never
// lengthens: attempts to push expiry out are rejected.
func (s *Service) AccelerateExpiry(ctx context.Context, sessionID uuid.UUID, newExpiry time.Time) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !newExpiry.Before(session.ExpiresAt) {
		return common.NewAppError("EXPIRY_EXTEND", "expiration can only be shortened", common.ErrInvalidInput)
	}
	if _, err := s.sessions.AccelerateExpiry(ctx, sessionID, newExpiry); err != nil {
		return err
	}
	if _, err := s.jobs.AccelerateExpiry(ctx, sessionID, newExpiry); err != nil {
		return err
	}
	s.logger.Info("session expiry accelerated", "session_id", sessionID, "expires_at", newExpiry)
	return nil
}

// Reprocess re-queues the failed jobs of a FAILED session without charging
// new credits. Refunds already issued for those jobs stand; reprocessing is
// on the house.
func (s *Service) Reprocess(ctx context.Context, sessionID uuid.UUID) error {
	newExpiry := s.nowFunc().Add(s.ttl)
	won, err := s.sessions.ResetForReprocess(ctx, sessionID, newExpiry)
	if err != nil {
		return err
	}
	if !won {
		return common.NewAppError("NOT_REPROCESSABLE", "only failed sessions can be reprocessed", common.ErrConflict)
	}
	jobs, err := s.jobs.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	requeued := 0
	for _, j := range jobs {
		if j.Status != constants.JobStatusFailed {
			continue
		}
		if _, err := s.jobs.Requeue(ctx, j.ID, newExpiry); err != nil {
			return err
		}
		requeued++
	}
	s.logger.Info("session reprocessing", "session_id", sessionID, "requeued", requeued)
	return nil
}
