package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/blobstore"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
	"github.com/tobi-adeyemi/extractflow/internal/ingest"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
)

// ---- fakes -------------------------------------------------------------

type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*entity.Session
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

func (f *fakeSessionRepo) Create(_ context.Context, s entity.Session, jobs []entity.Job) (*entity.Session, []entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, nil, f.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	cp := s
	f.sessions[s.ID] = &cp
	out := make([]entity.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID == uuid.Nil {
			j.ID = uuid.New()
		}
		sid := s.ID
		j.SessionID = &sid
		j.Status = constants.JobStatusQueued
		j.ExpiresAt = s.ExpiresAt
		out = append(out, j)
	}
	return &cp, out, nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Session
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListExpired(_ context.Context, now time.Time, limit int) ([]entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Session
	for _, s := range f.sessions {
		if !s.ExpiresAt.After(now) && s.Status != constants.SessionStatusExpired && len(out) < limit {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListActive(_ context.Context, limit int) ([]entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Session
	for _, s := range f.sessions {
		if !s.Status.IsTerminal() && len(out) < limit {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) TransitionStatus(_ context.Context, id uuid.UUID, from []constants.SessionStatus, to constants.SessionStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return false, nil
	}
	for _, st := range from {
		if s.Status == st {
			s.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSessionRepo) SetCompletedUnits(_ context.Context, id uuid.UUID, n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[id]; ok && s.TotalUnits >= n {
		s.CompletedUnits = n
	}
	return nil
}

func (f *fakeSessionRepo) ClaimPostProcessing(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok || s.PostProcessingStatus != nil {
		return false, nil
	}
	claimed := "PROCESSING"
	s.PostProcessingStatus = &claimed
	s.PostProcessingStartedAt = &at
	s.Status = constants.SessionStatusPostProcessing
	return true, nil
}

func (f *fakeSessionRepo) ReclaimStalePostProcessing(_ context.Context, id uuid.UUID, before time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok || s.PostProcessingStatus == nil || *s.PostProcessingStatus != "PROCESSING" {
		return false, nil
	}
	if s.PostProcessingStartedAt == nil || s.PostProcessingStartedAt.After(before) {
		return false, nil
	}
	s.PostProcessingStatus = nil
	s.PostProcessingStartedAt = nil
	s.Status = constants.SessionStatusProcessing
	return true, nil
}

func (f *fakeSessionRepo) FinishPostProcessing(_ context.Context, id uuid.UUID, bundlePath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok || s.PostProcessingStatus == nil || *s.PostProcessingStatus != "PROCESSING" {
		return nil
	}
	done := "DONE"
	s.PostProcessingStatus = &done
	s.Status = constants.SessionStatusCompleted
	s.ResultBundlePath = &bundlePath
	return nil
}

func (f *fakeSessionRepo) FailSession(_ context.Context, id uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil
	}
	switch s.Status {
	case constants.SessionStatusUploading, constants.SessionStatusProcessing, constants.SessionStatusPostProcessing:
		s.Status = constants.SessionStatusFailed
		s.ErrorMessage = &message
	}
	return nil
}

func (f *fakeSessionRepo) AccelerateExpiry(_ context.Context, id uuid.UUID, newExpiry time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok || !s.ExpiresAt.After(newExpiry) {
		return false, nil
	}
	s.ExpiresAt = newExpiry
	return true, nil
}

func (f *fakeSessionRepo) Expire(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok || s.Status == constants.SessionStatusExpired {
		return false, nil
	}
	s.Status = constants.SessionStatusExpired
	return true, nil
}

func (f *fakeSessionRepo) ResetForReprocess(_ context.Context, id uuid.UUID, newExpiry time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok || s.Status != constants.SessionStatusFailed {
		return false, nil
	}
	s.Status = constants.SessionStatusProcessing
	s.PostProcessingStatus = nil
	s.PostProcessingStartedAt = nil
	s.ErrorMessage = nil
	s.ExpiresAt = newExpiry
	return true, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]*entity.Job{}}
}

var _ repository.JobRepository = (*fakeJobRepo)(nil)

func (f *fakeJobRepo) put(j entity.Job) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := j
	f.jobs[j.ID] = &cp
}

func (f *fakeJobRepo) Get(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Job
	for _, j := range f.jobs {
		if j.SessionID != nil && *j.SessionID == sessionID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListPollable(context.Context, time.Time, int) ([]entity.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) ListExpired(context.Context, time.Time, int) ([]entity.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) MarkUploading(context.Context, uuid.UUID) (bool, error) { return false, nil }

func (f *fakeJobRepo) MarkPolling(context.Context, uuid.UUID, string, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeJobRepo) TouchPolled(context.Context, uuid.UUID, time.Time) error { return nil }

func (f *fakeJobRepo) Complete(context.Context, uuid.UUID, json.RawMessage, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeJobRepo) Fail(context.Context, uuid.UUID, string, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeJobRepo) Cancel(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status.IsTerminal() {
		return false, nil
	}
	j.Status = constants.JobStatusCancelled
	return true, nil
}

func (f *fakeJobRepo) Expire(context.Context, uuid.UUID) (bool, error) { return false, nil }

func (f *fakeJobRepo) Requeue(_ context.Context, id uuid.UUID, expiresAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status != constants.JobStatusFailed {
		return false, nil
	}
	j.Status = constants.JobStatusQueued
	j.ExternalOperationRef = nil
	j.ErrorMessage = nil
	j.ExpiresAt = expiresAt
	return true, nil
}

func (f *fakeJobRepo) AccelerateExpiry(_ context.Context, sessionID uuid.UUID, newExpiry time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, j := range f.jobs {
		if j.SessionID != nil && *j.SessionID == sessionID && j.ExpiresAt.After(newExpiry) {
			j.ExpiresAt = newExpiry
			n++
		}
	}
	return n, nil
}

type fakeLedger struct {
	mu         sync.Mutex
	balance    int
	debits     []entity.Transaction
	jobRefunds []uuid.UUID
	txRefunds  []uuid.UUID
}

func (f *fakeLedger) Debit(_ context.Context, userID uuid.UUID, amount int, reason string, sessionID *uuid.UUID) (*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balance < amount {
		return nil, common.ErrInsufficientCredits
	}
	f.balance -= amount
	tx := entity.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         constants.TxTypeUsage,
		CreditsDelta: -amount,
		Description:  reason,
		SessionID:    sessionID,
	}
	f.debits = append(f.debits, tx)
	return &tx, nil
}

func (f *fakeLedger) RefundJob(_ context.Context, job *entity.Job, _ string) (*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance += job.CreditsCharged
	f.jobRefunds = append(f.jobRefunds, job.ID)
	return &entity.Transaction{ID: uuid.New()}, nil
}

func (f *fakeLedger) RefundTransaction(_ context.Context, orig *entity.Transaction, _ string) (*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance += -orig.CreditsDelta
	f.txRefunds = append(f.txRefunds, orig.ID)
	return &entity.Transaction{ID: uuid.New()}, nil
}

type fakeStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeStore() *fakeStore { return &fakeStore{blobs: map[string][]byte{}} }

func (f *fakeStore) Put(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[key] = data
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.blobs[key]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return data, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, key)
	return nil
}

type fakePost struct {
	mu   sync.Mutex
	runs int
	err  error
}

func (f *fakePost) Run(_ context.Context, session *entity.Session, _ []entity.Job) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++
	if f.err != nil {
		return "", f.err
	}
	return "test/" + session.ID.String() + "/bundle.zip", nil
}

// ---- helpers -----------------------------------------------------------

type harness struct {
	sessions *fakeSessionRepo
	jobs     *fakeJobRepo
	ledger   *fakeLedger
	store    *fakeStore
	post     *fakePost
	svc      *Service
}

func newHarness(balance int) *harness {
	h := &harness{
		sessions: newFakeSessionRepo(),
		jobs:     newFakeJobRepo(),
		ledger:   &fakeLedger{balance: balance},
		store:    newFakeStore(),
		post:     &fakePost{},
	}
	h.svc = NewService(h.sessions, h.jobs, h.ledger, h.store, blobstore.Keys{Environment: "test"}, h.post, 24*time.Hour, nil)
	return h
}

func seedSession(h *harness, userID uuid.UUID, status constants.SessionStatus, jobStatuses ...constants.JobStatus) *entity.Session {
	s := &entity.Session{
		ID:         uuid.New(),
		UserID:     userID,
		Status:     status,
		TotalUnits: len(jobStatuses),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	h.sessions.mu.Lock()
	h.sessions.sessions[s.ID] = s
	h.sessions.mu.Unlock()
	for _, js := range jobStatuses {
		sid := s.ID
		h.jobs.put(entity.Job{
			ID:             uuid.New(),
			SessionID:      &sid,
			UserID:         userID,
			Status:         js,
			PageCount:      1,
			CreditsCharged: 1,
			ExpiresAt:      s.ExpiresAt,
		})
	}
	return s
}

var uploads = []ingest.Upload{
	{Filename: "front.jpg", Content: []byte("jpeg-bytes")},
	{Filename: "back.png", Content: []byte("png-bytes")},
}

// ---- tests -------------------------------------------------------------

func TestCreateChargesAndPersists(t *testing.T) {
	h := newHarness(10)
	userID := uuid.New()

	session, err := h.svc.Create(context.Background(), userID, uploads, nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if session.TotalUnits != 2 {
		t.Errorf("TotalUnits = %d, want 2", session.TotalUnits)
	}
	if h.ledger.balance != 8 {
		t.Errorf("balance = %d, want 8", h.ledger.balance)
	}
	if len(h.store.blobs) != 2 {
		t.Errorf("%d blobs written, want 2", len(h.store.blobs))
	}
	if len(h.ledger.debits) != 1 || h.ledger.debits[0].CreditsDelta != -2 {
		t.Errorf("debits = %+v", h.ledger.debits)
	}
}

func TestCreateInsufficientCreditsLeavesNothing(t *testing.T) {
	h := newHarness(1)
	userID := uuid.New()

	_, err := h.svc.Create(context.Background(), userID, uploads, nil, nil)
	if !errors.Is(err, common.ErrInsufficientCredits) {
		t.Fatalf("err = %v, want ErrInsufficientCredits", err)
	}
	if len(h.store.blobs) != 0 {
		t.Errorf("blobs written on failed create: %d", len(h.store.blobs))
	}
	if len(h.sessions.sessions) != 0 {
		t.Errorf("session persisted on failed create")
	}
	if h.ledger.balance != 1 {
		t.Errorf("balance = %d, want untouched 1", h.ledger.balance)
	}
}

func TestCreatePersistFailureCompensates(t *testing.T) {
	h := newHarness(10)
	h.sessions.createErr = errors.New("db down")
	userID := uuid.New()

	if _, err := h.svc.Create(context.Background(), userID, uploads, nil, nil); err == nil {
		t.Fatal("expected persist error")
	}
	if len(h.store.blobs) != 0 {
		t.Errorf("orphan blobs left behind: %d", len(h.store.blobs))
	}
	if len(h.ledger.txRefunds) != 1 {
		t.Fatalf("compensating refunds = %d, want 1", len(h.ledger.txRefunds))
	}
	if h.ledger.txRefunds[0] != h.ledger.debits[0].ID {
		t.Error("refund not linked to the original debit")
	}
	if h.ledger.balance != 10 {
		t.Errorf("balance = %d, want restored 10", h.ledger.balance)
	}
}

func TestCreateRejectsUnsupportedFile(t *testing.T) {
	h := newHarness(10)
	_, err := h.svc.Create(context.Background(), uuid.New(), []ingest.Upload{
		{Filename: "notes.docx", Content: []byte("x")},
	}, nil, nil)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(h.ledger.debits) != 0 {
		t.Error("charged credits for a rejected upload")
	}
}

func TestAggregateStatusAllCompletedTriggersPostProcessingOnce(t *testing.T) {
	h := newHarness(0)
	s := seedSession(h, uuid.New(), constants.SessionStatusProcessing,
		constants.JobStatusCompleted, constants.JobStatusCompleted)

	report, err := h.svc.AggregateStatus(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("AggregateStatus: %v", err)
	}
	if report.Status != constants.SessionStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", report.Status)
	}
	if report.ProcessedUnits != 2 {
		t.Errorf("ProcessedUnits = %d, want 2", report.ProcessedUnits)
	}

	// A second aggregation must not run the pipeline again.
	if _, err := h.svc.AggregateStatus(context.Background(), s.ID); err != nil {
		t.Fatalf("second AggregateStatus: %v", err)
	}
	if h.post.runs != 1 {
		t.Errorf("post-processing ran %d times, want 1", h.post.runs)
	}

	stored, _ := h.sessions.Get(context.Background(), s.ID)
	if stored.ResultBundlePath == nil {
		t.Error("bundle path not recorded")
	}
}

func TestAggregateStatusMixedOutcomesFailSession(t *testing.T) {
	h := newHarness(0)
	s := seedSession(h, uuid.New(), constants.SessionStatusProcessing,
		constants.JobStatusCompleted, constants.JobStatusFailed, constants.JobStatusCompleted)

	report, err := h.svc.AggregateStatus(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("AggregateStatus: %v", err)
	}
	if report.Status != constants.SessionStatusFailed {
		t.Errorf("status = %s, want FAILED", report.Status)
	}
	if report.Error == "" {
		t.Error("failed session reported no error")
	}
	if h.post.runs != 0 {
		t.Error("post-processing ran despite a failed job")
	}

	// Completed jobs keep their state for per-job inspection.
	jobs, _ := h.jobs.ListBySession(context.Background(), s.ID)
	completed := 0
	for _, j := range jobs {
		if j.Status == constants.JobStatusCompleted {
			completed++
		}
	}
	if completed != 2 {
		t.Errorf("completed jobs = %d, want 2 intact", completed)
	}
}

func TestAggregateStatusBundlingFailureFailsSession(t *testing.T) {
	h := newHarness(0)
	h.post.err = errors.New("xlsx write failed")
	s := seedSession(h, uuid.New(), constants.SessionStatusProcessing, constants.JobStatusCompleted)

	report, err := h.svc.AggregateStatus(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("AggregateStatus: %v", err)
	}
	if report.Status != constants.SessionStatusFailed {
		t.Errorf("status = %s, want FAILED", report.Status)
	}
	// Bundling failures never claw back extraction charges.
	if len(h.ledger.jobRefunds) != 0 {
		t.Error("bundling failure issued job refunds")
	}
}

func TestRecoverStalledSettlesMissedCompletion(t *testing.T) {
	h := newHarness(0)
	// Every job settled, but the rollup never ran (process died first).
	s := seedSession(h, uuid.New(), constants.SessionStatusProcessing,
		constants.JobStatusCompleted, constants.JobStatusCompleted)

	if err := h.svc.RecoverStalled(context.Background(), 10*time.Minute, 100); err != nil {
		t.Fatalf("RecoverStalled: %v", err)
	}
	stored, _ := h.sessions.Get(context.Background(), s.ID)
	if stored.Status != constants.SessionStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", stored.Status)
	}
	if h.post.runs != 1 {
		t.Errorf("post-processing ran %d times, want 1", h.post.runs)
	}
}

func TestRecoverStalledTakesOverStaleClaim(t *testing.T) {
	h := newHarness(0)
	s := seedSession(h, uuid.New(), constants.SessionStatusPostProcessing, constants.JobStatusCompleted)
	claimed := "PROCESSING"
	started := time.Now().Add(-time.Hour)
	h.sessions.mu.Lock()
	h.sessions.sessions[s.ID].PostProcessingStatus = &claimed
	h.sessions.sessions[s.ID].PostProcessingStartedAt = &started
	h.sessions.mu.Unlock()

	if err := h.svc.RecoverStalled(context.Background(), 10*time.Minute, 100); err != nil {
		t.Fatalf("RecoverStalled: %v", err)
	}
	stored, _ := h.sessions.Get(context.Background(), s.ID)
	if stored.Status != constants.SessionStatusCompleted {
		t.Errorf("status = %s, want COMPLETED after takeover", stored.Status)
	}
	if h.post.runs != 1 {
		t.Errorf("post-processing ran %d times, want 1", h.post.runs)
	}
}

func TestRecoverStalledLeavesFreshClaimAlone(t *testing.T) {
	h := newHarness(0)
	s := seedSession(h, uuid.New(), constants.SessionStatusPostProcessing, constants.JobStatusCompleted)
	claimed := "PROCESSING"
	started := time.Now()
	h.sessions.mu.Lock()
	h.sessions.sessions[s.ID].PostProcessingStatus = &claimed
	h.sessions.sessions[s.ID].PostProcessingStartedAt = &started
	h.sessions.mu.Unlock()

	if err := h.svc.RecoverStalled(context.Background(), 10*time.Minute, 100); err != nil {
		t.Fatalf("RecoverStalled: %v", err)
	}
	stored, _ := h.sessions.Get(context.Background(), s.ID)
	if stored.Status != constants.SessionStatusPostProcessing {
		t.Errorf("status = %s, want untouched POST_PROCESSING", stored.Status)
	}
	if h.post.runs != 0 {
		t.Errorf("post-processing ran %d times, want 0 while the claim is live", h.post.runs)
	}
}

func TestCancelRefundsOnlyNonTerminalJobs(t *testing.T) {
	h := newHarness(0)
	userID := uuid.New()
	s := seedSession(h, userID, constants.SessionStatusProcessing,
		constants.JobStatusPolling, constants.JobStatusCompleted, constants.JobStatusQueued)

	if err := h.svc.Cancel(context.Background(), userID, s.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	stored, _ := h.sessions.Get(context.Background(), s.ID)
	if stored.Status != constants.SessionStatusCancelled {
		t.Errorf("session status = %s, want CANCELLED", stored.Status)
	}
	if len(h.ledger.jobRefunds) != 2 {
		t.Errorf("refunds = %d, want 2 (polling + queued)", len(h.ledger.jobRefunds))
	}
	jobs, _ := h.jobs.ListBySession(context.Background(), s.ID)
	for _, j := range jobs {
		switch j.Status {
		case constants.JobStatusCompleted, constants.JobStatusCancelled:
		default:
			t.Errorf("job left in %s", j.Status)
		}
	}
}

func TestCancelCompletedSessionRejected(t *testing.T) {
	h := newHarness(0)
	userID := uuid.New()
	s := seedSession(h, userID, constants.SessionStatusCompleted, constants.JobStatusCompleted)

	err := h.svc.Cancel(context.Background(), userID, s.ID)
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCancelOtherUsersSessionNotFound(t *testing.T) {
	h := newHarness(0)
	s := seedSession(h, uuid.New(), constants.SessionStatusProcessing, constants.JobStatusQueued)

	err := h.svc.Cancel(context.Background(), uuid.New(), s.ID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for foreign session", err)
	}
}

func TestDownload(t *testing.T) {
	h := newHarness(0)
	userID := uuid.New()

	t.Run("completed session serves bundle", func(t *testing.T) {
		s := seedSession(h, userID, constants.SessionStatusCompleted)
		path := "test/bundle.zip"
		h.sessions.sessions[s.ID].ResultBundlePath = &path
		_ = h.store.Put(context.Background(), path, []byte("zip-bytes"))

		data, err := h.svc.Download(context.Background(), userID, s.ID)
		if err != nil {
			t.Fatalf("Download: %v", err)
		}
		if string(data) != "zip-bytes" {
			t.Errorf("data = %q", data)
		}
	})

	t.Run("expired status is a distinct error", func(t *testing.T) {
		s := seedSession(h, userID, constants.SessionStatusExpired)
		path := "test/still-there.zip"
		h.sessions.sessions[s.ID].ResultBundlePath = &path
		_ = h.store.Put(context.Background(), path, []byte("stale"))

		_, err := h.svc.Download(context.Background(), userID, s.ID)
		if !errors.Is(err, common.ErrExpired) {
			t.Fatalf("err = %v, want ErrExpired", err)
		}
	})

	t.Run("past TTL is expired even before the sweeper runs", func(t *testing.T) {
		s := seedSession(h, userID, constants.SessionStatusCompleted)
		h.sessions.sessions[s.ID].ExpiresAt = time.Now().Add(-time.Minute)

		_, err := h.svc.Download(context.Background(), userID, s.ID)
		if !errors.Is(err, common.ErrExpired) {
			t.Fatalf("err = %v, want ErrExpired", err)
		}
	})

	t.Run("incomplete session is not ready", func(t *testing.T) {
		s := seedSession(h, userID, constants.SessionStatusProcessing, constants.JobStatusPolling)
		_, err := h.svc.Download(context.Background(), userID, s.ID)
		if !errors.Is(err, common.ErrConflict) {
			t.Fatalf("err = %v, want ErrConflict", err)
		}
	})
}

func TestAccelerateExpiry(t *testing.T) {
	h := newHarness(0)
	s := seedSession(h, uuid.New(), constants.SessionStatusProcessing, constants.JobStatusPolling)

	soon := time.Now().Add(time.Minute)
	if err := h.svc.AccelerateExpiry(context.Background(), s.ID, soon); err != nil {
		t.Fatalf("AccelerateExpiry: %v", err)
	}
	stored, _ := h.sessions.Get(context.Background(), s.ID)
	if !stored.ExpiresAt.Equal(soon) {
		t.Errorf("expires_at = %v, want %v", stored.ExpiresAt, soon)
	}
	jobs, _ := h.jobs.ListBySession(context.Background(), s.ID)
	if !jobs[0].ExpiresAt.Equal(soon) {
		t.Errorf("job expiry not shortened: %v", jobs[0].ExpiresAt)
	}

	// Lengthening must be refused.
	err := h.svc.AccelerateExpiry(context.Background(), s.ID, time.Now().Add(48*time.Hour))
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput for extension", err)
	}
}

func TestReprocessRequeuesFailedJobsWithoutCharging(t *testing.T) {
	h := newHarness(0)
	s := seedSession(h, uuid.New(), constants.SessionStatusFailed,
		constants.JobStatusFailed, constants.JobStatusCompleted)

	if err := h.svc.Reprocess(context.Background(), s.ID); err != nil {
		t.Fatalf("Reprocess: %v", err)
	}
	stored, _ := h.sessions.Get(context.Background(), s.ID)
	if stored.Status != constants.SessionStatusProcessing {
		t.Errorf("session status = %s, want PROCESSING", stored.Status)
	}
	jobs, _ := h.jobs.ListBySession(context.Background(), s.ID)
	queued, completed := 0, 0
	for _, j := range jobs {
		switch j.Status {
		case constants.JobStatusQueued:
			queued++
		case constants.JobStatusCompleted:
			completed++
		}
	}
	if queued != 1 || completed != 1 {
		t.Errorf("queued=%d completed=%d, want 1/1", queued, completed)
	}
	if len(h.ledger.debits) != 0 {
		t.Error("reprocessing charged new credits")
	}

	// Only FAILED sessions can be reprocessed.
	err := h.svc.Reprocess(context.Background(), s.ID)
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}
