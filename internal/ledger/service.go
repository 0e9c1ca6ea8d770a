package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
)

// Service is the only path for credit mutations. Anything that changes a
// balance produces a paired transaction row; a mutation without one is a
// data-integrity bug.
type Service struct {
	repo   repository.LedgerRepository
	logger *slog.Logger
}

func NewService(repo repository.LedgerRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Debit charges amount credits for a session's units. Returns
// common.ErrInsufficientCredits without persisting anything when the balance
// is too low.
func (s *Service) Debit(ctx context.Context, userID uuid.UUID, amount int, reason string, sessionID *uuid.UUID) (*entity.Transaction, error) {
	return s.repo.Debit(ctx, userID, amount, entity.Transaction{
		Type:        constants.TxTypeUsage,
		Description: reason,
		SessionID:   sessionID,
	})
}

// Credit adds credits (purchases, bonuses).
func (s *Service) Credit(ctx context.Context, userID uuid.UUID, amount int, txType constants.TxType, reason string) (*entity.Transaction, error) {
	return s.repo.Credit(ctx, userID, amount, entity.Transaction{
		Type:        txType,
		Description: reason,
	})
}

// RefundJob returns a failed or cancelled job's charged credits. At most one
// refund is ever issued per job: callers only reach here after winning the
// job's terminal transition, and the ledger row is double-checked anyway.
func (s *Service) RefundJob(ctx context.Context, job *entity.Job, reason string) (*entity.Transaction, error) {
	if job.CreditsCharged <= 0 {
		return nil, nil
	}
	refunded, err := s.repo.HasRefundForJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing refund: %w", err)
	}
	if refunded {
		s.logger.Debug("refund already issued", "job_id", job.ID)
		return nil, nil
	}
	jobID := job.ID
	row, err := s.repo.Credit(ctx, job.UserID, job.CreditsCharged, entity.Transaction{
		Type:        constants.TxTypeRefund,
		Description: reason,
		JobID:       &jobID,
		SessionID:   job.SessionID,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("job refunded", "job_id", job.ID, "credits", job.CreditsCharged, "reason", reason)
	return row, nil
}

// RefundTransaction reverses a completed debit with a linked REFUND row,
// used to compensate when session creation fails after the charge landed.
func (s *Service) RefundTransaction(ctx context.Context, orig *entity.Transaction, reason string) (*entity.Transaction, error) {
	if orig == nil || orig.CreditsDelta >= 0 {
		return nil, common.NewAppError("NOT_A_DEBIT", "only debits can be refunded", common.ErrInvalidInput)
	}
	origID := orig.ID
	return s.repo.Credit(ctx, orig.UserID, -orig.CreditsDelta, entity.Transaction{
		Type:        constants.TxTypeRefund,
		Description: reason,
		SessionID:   orig.SessionID,
		RefundOf:    &origID,
	})
}

// AdminAdjust applies an administrative credit or debit.
func (s *Service) AdminAdjust(ctx context.Context, userID uuid.UUID, delta int, reason string) (*entity.Transaction, error) {
	switch {
	case delta > 0:
		return s.repo.Credit(ctx, userID, delta, entity.Transaction{
			Type:        constants.TxTypeAdminCredit,
			Description: reason,
		})
	case delta < 0:
		return s.repo.Debit(ctx, userID, -delta, entity.Transaction{
			Type:        constants.TxTypeAdminDebit,
			Description: reason,
		})
	}
	return nil, common.NewAppError("EMPTY_ADJUSTMENT", "delta must be non-zero", common.ErrInvalidInput)
}

// Balance returns the cached balance.
func (s *Service) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.Balance(ctx, userID)
}

// Reconcile recomputes the balance from COMPLETED transactions and reports
// whether the cache agrees with the ledger.
func (s *Service) Reconcile(ctx context.Context, userID uuid.UUID) (bool, error) {
	cached, err := s.repo.Balance(ctx, userID)
	if err != nil {
		return false, err
	}
	derived, err := s.repo.SumCompleted(ctx, userID)
	if err != nil {
		return false, err
	}
	if cached != derived {
		s.logger.Error("ledger out of sync", "user_id", userID, "cached", cached, "derived", derived)
		return false, nil
	}
	return true, nil
}

// History lists a user's most recent transactions.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Transaction, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}
