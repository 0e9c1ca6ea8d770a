package server

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	extractflowpb "github.com/tobi-adeyemi/extractflow/gen/proto/extractflow/v1"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
	"github.com/tobi-adeyemi/extractflow/internal/ledger"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &entity.User{ID: uuid.New(), Email: email}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

// fakeLedgerRepo keeps the balance and the ledger rows moving together, like
// the real repository's single-transaction contract.
type fakeLedgerRepo struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int
	rows     []entity.Transaction
}

var _ repository.LedgerRepository = (*fakeLedgerRepo)(nil)

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

func (f *fakeLedgerRepo) HasRefundForJob(context.Context, uuid.UUID) (bool, error) {
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

func TestCreateUserGrantsCreditsThroughLedger(t *testing.T) {
	users := newFakeUserRepo()
	ledgerRepo := newFakeLedgerRepo()
	svc := NewAdminService(users, nil, ledger.NewService(ledgerRepo, nil), nil, nil)

	resp, err := svc.CreateUser(context.Background(), &extractflowpb.CreateUserRequest{
		Email:           "ops@example.com",
		StartingCredits: 25,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if resp.GetBalance() != 25 {
		t.Errorf("balance = %d, want 25", resp.GetBalance())
	}

	userID, err := uuid.Parse(resp.GetUserId())
	if err != nil {
		t.Fatalf("user_id = %q: %v", resp.GetUserId(), err)
	}
	if len(ledgerRepo.rows) != 1 {
		t.Fatalf("ledger rows = %d, want 1 paired grant", len(ledgerRepo.rows))
	}
	row := ledgerRepo.rows[0]
	if row.Type != constants.TxTypeBonus || row.CreditsDelta != 25 || row.UserID != userID {
		t.Errorf("grant row = %+v", row)
	}

	// The cached balance must equal the sum of the ledger rows from the
	// very first operation onward.
	ok, err := ledger.NewService(ledgerRepo, nil).Reconcile(context.Background(), userID)
	if err != nil || !ok {
		t.Errorf("Reconcile = (%v, %v), want in sync", ok, err)
	}
}

func TestCreateUserWithoutCreditsWritesNoLedgerRow(t *testing.T) {
	users := newFakeUserRepo()
	ledgerRepo := newFakeLedgerRepo()
	svc := NewAdminService(users, nil, ledger.NewService(ledgerRepo, nil), nil, nil)

	resp, err := svc.CreateUser(context.Background(), &extractflowpb.CreateUserRequest{
		Email: "empty@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if resp.GetBalance() != 0 {
		t.Errorf("balance = %d, want 0", resp.GetBalance())
	}
	if len(ledgerRepo.rows) != 0 {
		t.Errorf("ledger rows = %d, want none", len(ledgerRepo.rows))
	}
}
