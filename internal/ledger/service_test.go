package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

// fakeLedgerRepo mirrors the repository contract in memory: balance and
// ledger row always move together, and a debit that would go negative
// persists nothing.
type fakeLedgerRepo struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int
	rows     []entity.Transaction
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{balances: map[uuid.UUID]int{}}
}

func (f *fakeLedgerRepo) Debit(_ context.Context, userID uuid.UUID, amount int, tmpl entity.Transaction) (*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balances[userID] < amount {
		return nil, common.ErrInsufficientCredits
	}
	f.balances[userID] -= amount
	return f.append(userID, -amount, tmpl), nil
}

func (f *fakeLedgerRepo) Credit(_ context.Context, userID uuid.UUID, amount int, tmpl entity.Transaction) (*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[userID] += amount
	return f.append(userID, amount, tmpl), nil
}

func (f *fakeLedgerRepo) append(userID uuid.UUID, delta int, tmpl entity.Transaction) *entity.Transaction {
	tx := tmpl
	tx.ID = uuid.New()
	tx.UserID = userID
	tx.CreditsDelta = delta
	tx.Status = constants.TxStatusCompleted
	f.rows = append(f.rows, tx)
	return &tx
}

func (f *fakeLedgerRepo) Balance(_ context.Context, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[userID], nil
}

func (f *fakeLedgerRepo) SumCompleted(_ context.Context, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := 0
	for _, tx := range f.rows {
		if tx.UserID == userID && tx.Status == constants.TxStatusCompleted {
			sum += tx.CreditsDelta
		}
	}
	return sum, nil
}

func (f *fakeLedgerRepo) HasRefundForJob(_ context.Context, jobID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tx := range f.rows {
		if tx.Type == constants.TxTypeRefund && tx.JobID != nil && *tx.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLedgerRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Transaction
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func TestDebitInsufficientCredits(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo, nil)
	userID := uuid.New()
	repo.balances[userID] = 3

	_, err := svc.Debit(context.Background(), userID, 5, "five pages", nil)
	if !errors.Is(err, common.ErrInsufficientCredits) {
		t.Fatalf("err = %v, want ErrInsufficientCredits", err)
	}
	if got := repo.balances[userID]; got != 3 {
		t.Errorf("balance mutated to %d on failed debit", got)
	}
	if len(repo.rows) != 0 {
		t.Errorf("%d ledger rows written on failed debit", len(repo.rows))
	}
}

func TestDebitWritesPairedRow(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo, nil)
	userID := uuid.New()
	sessionID := uuid.New()
	repo.balances[userID] = 10

	tx, err := svc.Debit(context.Background(), userID, 4, "four pages", &sessionID)
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if tx.CreditsDelta != -4 || tx.Type != constants.TxTypeUsage {
		t.Errorf("tx = %+v", tx)
	}
	if repo.balances[userID] != 6 {
		t.Errorf("balance = %d, want 6", repo.balances[userID])
	}
	ok, err := svc.Reconcile(context.Background(), userID)
	if err != nil || ok {
		// Cached balance started at 10 with no backing rows, so the derived
		// sum (-4) must disagree.
		t.Errorf("Reconcile = (%v, %v), want mismatch", ok, err)
	}
}

func TestRefundJobIssuesAtMostOnce(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo, nil)
	userID := uuid.New()
	jobID := uuid.New()
	job := &entity.Job{ID: jobID, UserID: userID, CreditsCharged: 3}

	first, err := svc.RefundJob(context.Background(), job, "extraction failed")
	if err != nil {
		t.Fatalf("first refund: %v", err)
	}
	if first == nil || first.CreditsDelta != 3 || first.Type != constants.TxTypeRefund {
		t.Fatalf("first refund tx = %+v", first)
	}

	second, err := svc.RefundJob(context.Background(), job, "extraction failed")
	if err != nil {
		t.Fatalf("second refund: %v", err)
	}
	if second != nil {
		t.Fatal("second refund issued for the same job")
	}
	if repo.balances[userID] != 3 {
		t.Errorf("balance = %d, want 3", repo.balances[userID])
	}
}

func TestRefundJobSkipsUnchargedJobs(t *testing.T) {
	svc := NewService(newFakeLedgerRepo(), nil)
	tx, err := svc.RefundJob(context.Background(), &entity.Job{ID: uuid.New()}, "nothing charged")
	if err != nil || tx != nil {
		t.Fatalf("got (%v, %v), want no-op", tx, err)
	}
}

func TestRefundTransaction(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo, nil)
	userID := uuid.New()
	repo.balances[userID] = 10

	debit, err := svc.Debit(context.Background(), userID, 7, "charge", nil)
	if err != nil {
		t.Fatal(err)
	}
	refund, err := svc.RefundTransaction(context.Background(), debit, "session creation failed")
	if err != nil {
		t.Fatalf("RefundTransaction: %v", err)
	}
	if refund.CreditsDelta != 7 || refund.RefundOf == nil || *refund.RefundOf != debit.ID {
		t.Errorf("refund = %+v", refund)
	}
	if repo.balances[userID] != 10 {
		t.Errorf("balance = %d, want restored 10", repo.balances[userID])
	}

	if _, err := svc.RefundTransaction(context.Background(), refund, "double"); err == nil {
		t.Error("refunding a credit should fail")
	}
}

func TestAdminAdjust(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo, nil)
	userID := uuid.New()
	repo.balances[userID] = 5

	up, err := svc.AdminAdjust(context.Background(), userID, 10, "goodwill")
	if err != nil || up.Type != constants.TxTypeAdminCredit {
		t.Fatalf("credit adjust = (%+v, %v)", up, err)
	}
	down, err := svc.AdminAdjust(context.Background(), userID, -4, "correction")
	if err != nil || down.Type != constants.TxTypeAdminDebit {
		t.Fatalf("debit adjust = (%+v, %v)", down, err)
	}
	if repo.balances[userID] != 11 {
		t.Errorf("balance = %d, want 11", repo.balances[userID])
	}
	if _, err := svc.AdminAdjust(context.Background(), userID, 0, "noop"); err == nil {
		t.Error("zero delta should be rejected")
	}
}
