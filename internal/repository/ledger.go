package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/gen/ent"
	"github.com/tobi-adeyemi/extractflow/gen/ent/transaction"
	"github.com/tobi-adeyemi/extractflow/gen/ent/user"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

// LedgerRepository owns every balance mutation. The balance column and the
// transaction row are written inside one database transaction so they can
// never diverge.
type LedgerRepository interface {
	// Debit atomically checks and decrements the balance, writing a ledger
	// row in the same transaction. Returns common.ErrInsufficientCredits
	// (and persists nothing) when the balance is too low.
	Debit(ctx context.Context, userID uuid.UUID, amount int, tmpl entity.Transaction) (*entity.Transaction, error)
	// Credit increments the balance, writing a ledger row in the same
	// transaction.
	Credit(ctx context.Context, userID uuid.UUID, amount int, tmpl entity.Transaction) (*entity.Transaction, error)
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
	// SumCompleted recomputes the balance from COMPLETED ledger rows.
	SumCompleted(ctx context.Context, userID uuid.UUID) (int, error)
	HasRefundForJob(ctx context.Context, jobID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Transaction, error)
}

type ledgerRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewLedgerRepository(entc *ent.Client, log *slog.Logger) LedgerRepository {
	if log == nil {
		log = slog.Default()
	}
	return &ledgerRepo{ent: entc, log: log}
}

func (r *ledgerRepo) Debit(ctx context.Context, userID uuid.UUID, amount int, tmpl entity.Transaction) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("debit amount must be positive, got %d: %w", amount, common.ErrInvalidInput)
	}
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	// Conditional decrement: zero affected rows means the balance check
	// failed (or the user does not exist).
	n, err := tx.User.Update().
		Where(user.IDEQ(userID), user.CreditBalanceGTE(amount)).
		AddCreditBalance(-amount).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if n == 0 {
		exists, eerr := tx.User.Query().Where(user.IDEQ(userID)).Exist(ctx)
		if eerr == nil && !exists {
			return nil, rollback(tx, common.ErrNotFound)
		}
		return nil, rollback(tx, common.ErrInsufficientCredits)
	}

	row, err := r.insertRow(ctx, tx, userID, -amount, tmpl)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("ledger debit", "user_id", userID, "amount", amount, "type", tmpl.Type, "tx_id", row.ID)
	return row, nil
}

func (r *ledgerRepo) Credit(ctx context.Context, userID uuid.UUID, amount int, tmpl entity.Transaction) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive, got %d: %w", amount, common.ErrInvalidInput)
	}
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	n, err := tx.User.Update().
		Where(user.IDEQ(userID)).
		AddCreditBalance(amount).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if n == 0 {
		return nil, rollback(tx, common.ErrNotFound)
	}

	row, err := r.insertRow(ctx, tx, userID, amount, tmpl)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("ledger credit", "user_id", userID, "amount", amount, "type", tmpl.Type, "tx_id", row.ID)
	return row, nil
}

func (r *ledgerRepo) insertRow(ctx context.Context, tx *ent.Tx, userID uuid.UUID, delta int, tmpl entity.Transaction) (*entity.Transaction, error) {
	row, err := tx.Transaction.Create().
		SetUserID(userID).
		SetType(string(tmpl.Type)).
		SetCreditsDelta(delta).
		SetStatus(string(constants.TxStatusCompleted)).
		SetDescription(tmpl.Description).
		SetNillableJobID(tmpl.JobID).
		SetNillableSessionID(tmpl.SessionID).
		SetNillableRefundOf(tmpl.RefundOf).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return toTransactionEntity(row), nil
}

func (r *ledgerRepo) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	u, err := r.ent.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, common.ErrNotFound
		}
		return 0, err
	}
	return u.CreditBalance, nil
}

func (r *ledgerRepo) SumCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	var sum []struct {
		Sum int `json:"sum"`
	}
	err := r.ent.Transaction.Query().
		Where(
			transaction.UserIDEQ(userID),
			transaction.StatusEQ(string(constants.TxStatusCompleted)),
		).
		Aggregate(ent.Sum(transaction.FieldCreditsDelta)).
		Scan(ctx, &sum)
	if err != nil {
		return 0, err
	}
	if len(sum) == 0 {
		return 0, nil
	}
	return sum[0].Sum, nil
}

func (r *ledgerRepo) HasRefundForJob(ctx context.Context, jobID uuid.UUID) (bool, error) {
	return r.ent.Transaction.Query().
		Where(
			transaction.JobIDEQ(jobID),
			transaction.TypeEQ(string(constants.TxTypeRefund)),
		).
		Exist(ctx)
}

func (r *ledgerRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Transaction, error) {
	q := r.ent.Transaction.Query().
		Where(transaction.UserIDEQ(userID)).
		Order(ent.Desc(transaction.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toTransactionEntity(row))
	}
	return out, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback failed: %v", err, rerr)
	}
	return err
}

func toTransactionEntity(t *ent.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           t.ID,
		UserID:       t.UserID,
		Type:         constants.TxType(t.Type),
		CreditsDelta: t.CreditsDelta,
		Status:       constants.TxStatus(t.Status),
		Description:  t.Description,
		JobID:        t.JobID,
		SessionID:    t.SessionID,
		RefundOf:     t.RefundOf,
		CreatedAt:    t.CreatedAt,
	}
}
