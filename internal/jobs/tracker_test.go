package jobs

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
	"github.com/tobi-adeyemi/extractflow/internal/extraction"
)

// fakeJobRepo keeps jobs in memory while honoring the conditional-update
// contract: transitions only apply from the expected prior status and report
// whether the caller won.
type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobRepo(jobs ...*entity.Job) *fakeJobRepo {
	f := &fakeJobRepo{jobs: map[uuid.UUID]*entity.Job{}}
	for _, j := range jobs {
		f.jobs[j.ID] = j
	}
	return f
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

func (f *fakeJobRepo) ListPollable(_ context.Context, now time.Time, limit int) ([]entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Job
	for _, j := range f.jobs {
		if (j.Status == constants.JobStatusQueued || j.Status == constants.JobStatusPolling) && j.ExpiresAt.After(now) && len(out) < limit {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListExpired(_ context.Context, now time.Time, limit int) ([]entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Job
	for _, j := range f.jobs {
		if !j.ExpiresAt.After(now) && j.Status != constants.JobStatusExpired && len(out) < limit {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) transition(id uuid.UUID, from []constants.JobStatus, apply func(*entity.Job)) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return false, nil
	}
	for _, s := range from {
		if j.Status == s {
			apply(j)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobRepo) MarkUploading(_ context.Context, id uuid.UUID) (bool, error) {
	return f.transition(id, []constants.JobStatus{constants.JobStatusQueued}, func(j *entity.Job) {
		j.Status = constants.JobStatusUploading
	})
}

func (f *fakeJobRepo) MarkPolling(_ context.Context, id uuid.UUID, ref string, at time.Time) (bool, error) {
	return f.transition(id, []constants.JobStatus{constants.JobStatusUploading}, func(j *entity.Job) {
		j.Status = constants.JobStatusPolling
		j.ExternalOperationRef = &ref
		j.PollingStartedAt = &at
		j.LastPolledAt = &at
	})
}

func (f *fakeJobRepo) TouchPolled(_ context.Context, id uuid.UUID, at time.Time) error {
	_, err := f.transition(id, []constants.JobStatus{constants.JobStatusPolling}, func(j *entity.Job) {
		j.LastPolledAt = &at
	})
	return err
}

func (f *fakeJobRepo) Complete(_ context.Context, id uuid.UUID, fields json.RawMessage, at time.Time) (bool, error) {
	return f.transition(id, constants.NonTerminalJobStatuses, func(j *entity.Job) {
		j.Status = constants.JobStatusCompleted
		j.ExtractedFields = fields
		j.LastPolledAt = &at
	})
}

func (f *fakeJobRepo) Fail(_ context.Context, id uuid.UUID, message string, at time.Time) (bool, error) {
	return f.transition(id, constants.NonTerminalJobStatuses, func(j *entity.Job) {
		j.Status = constants.JobStatusFailed
		j.ErrorMessage = &message
		j.LastPolledAt = &at
	})
}

func (f *fakeJobRepo) Cancel(_ context.Context, id uuid.UUID) (bool, error) {
	return f.transition(id, constants.NonTerminalJobStatuses, func(j *entity.Job) {
		j.Status = constants.JobStatusCancelled
	})
}

func (f *fakeJobRepo) Expire(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status == constants.JobStatusExpired {
		return false, nil
	}
	j.Status = constants.JobStatusExpired
	return true, nil
}

func (f *fakeJobRepo) Requeue(_ context.Context, id uuid.UUID, expiresAt time.Time) (bool, error) {
	return f.transition(id, []constants.JobStatus{constants.JobStatusFailed}, func(j *entity.Job) {
		j.Status = constants.JobStatusQueued
		j.ExternalOperationRef = nil
		j.ErrorMessage = nil
		j.PollingStartedAt = nil
		j.LastPolledAt = nil
		j.ExpiresAt = expiresAt
	})
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

type fakeClient struct {
	mu         sync.Mutex
	submitRef  string
	submitErr  error
	submits    int
	pollResult *extraction.PollResult
	pollErr    error
	polls      int
}

func (f *fakeClient) Submit(_ context.Context, _ []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits++
	return f.submitRef, f.submitErr
}

func (f *fakeClient) Poll(_ context.Context, _ string) (*extraction.PollResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	return f.pollResult, f.pollErr
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

type fakeRefunder struct {
	mu      sync.Mutex
	refunds []uuid.UUID
}

func (f *fakeRefunder) RefundJob(_ context.Context, job *entity.Job, _ string) (*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refunds = append(f.refunds, job.ID)
	return &entity.Transaction{ID: uuid.New()}, nil
}

func queuedJob(store *fakeStore) *entity.Job {
	id := uuid.New()
	sessionID := uuid.New()
	key := "test/" + id.String()
	_ = store.Put(context.Background(), key, []byte("payload"))
	return &entity.Job{
		ID:             id,
		SessionID:      &sessionID,
		UserID:         uuid.New(),
		Status:         constants.JobStatusQueued,
		SourceFilename: "scan.pdf",
		FilePath:       key,
		PageCount:      2,
		CreditsCharged: 2,
		ExpiresAt:      time.Now().Add(time.Hour),
	}
}

func TestSubmitRecordsOperationRef(t *testing.T) {
	store := newFakeStore()
	job := queuedJob(store)
	repo := newFakeJobRepo(job)
	client := &fakeClient{submitRef: "op-123"}
	refunds := &fakeRefunder{}
	tr := NewTracker(repo, client, store, refunds, TrackerConfig{ModelID: "general-v2"}, nil)

	if err := tr.Submit(context.Background(), job); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	got, _ := repo.Get(context.Background(), job.ID)
	if got.Status != constants.JobStatusPolling {
		t.Errorf("status = %s, want POLLING", got.Status)
	}
	if got.ExternalOperationRef == nil || *got.ExternalOperationRef != "op-123" {
		t.Errorf("operation ref = %v", got.ExternalOperationRef)
	}
	if got.PollingStartedAt == nil {
		t.Error("polling_started_at not set")
	}
}

func TestSubmitLosesClaimIsNoOp(t *testing.T) {
	store := newFakeStore()
	job := queuedJob(store)
	job.Status = constants.JobStatusPolling // someone else already claimed it
	repo := newFakeJobRepo(job)
	client := &fakeClient{submitRef: "op-x"}
	tr := NewTracker(repo, client, store, &fakeRefunder{}, TrackerConfig{}, nil)

	if err := tr.Submit(context.Background(), job); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if client.submits != 0 {
		t.Errorf("lost claim still submitted %d times", client.submits)
	}
}

func TestSubmitFailureRefundsOnce(t *testing.T) {
	store := newFakeStore()
	job := queuedJob(store)
	repo := newFakeJobRepo(job)
	client := &fakeClient{submitErr: errors.New("upstream 503")}
	refunds := &fakeRefunder{}
	tr := NewTracker(repo, client, store, refunds, TrackerConfig{}, nil)

	if err := tr.Submit(context.Background(), job); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	got, _ := repo.Get(context.Background(), job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Errorf("status = %s, want FAILED", got.Status)
	}
	if len(refunds.refunds) != 1 {
		t.Fatalf("refunds = %d, want 1", len(refunds.refunds))
	}
}

func TestPollOnceSucceeded(t *testing.T) {
	store := newFakeStore()
	job := queuedJob(store)
	started := time.Now().Add(-time.Minute)
	ref := "op-1"
	job.Status = constants.JobStatusPolling
	job.ExternalOperationRef = &ref
	job.PollingStartedAt = &started
	repo := newFakeJobRepo(job)
	fields := json.RawMessage(`{"vendor":"Acme","total":12}`)
	client := &fakeClient{pollResult: &extraction.PollResult{Status: extraction.StatusSucceeded, Fields: fields}}
	refunds := &fakeRefunder{}
	tr := NewTracker(repo, client, store, refunds, TrackerConfig{}, nil)

	if err := tr.PollOnce(context.Background(), job); err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	got, _ := repo.Get(context.Background(), job.ID)
	if got.Status != constants.JobStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", got.Status)
	}
	if string(got.ExtractedFields) != string(fields) {
		t.Errorf("fields = %s", got.ExtractedFields)
	}
	if len(refunds.refunds) != 0 {
		t.Errorf("successful job was refunded")
	}

	// A second poll of the now-terminal job must not touch anything.
	got.Status = constants.JobStatusCompleted
	if err := tr.PollOnce(context.Background(), got); err != nil {
		t.Fatalf("second PollOnce: %v", err)
	}
	if client.polls != 1 {
		t.Errorf("terminal job was polled again (%d polls)", client.polls)
	}
}

func TestPollOnceInvalidPayloadFails(t *testing.T) {
	store := newFakeStore()
	job := queuedJob(store)
	started := time.Now().Add(-time.Minute)
	ref := "op-1"
	job.Status = constants.JobStatusPolling
	job.ExternalOperationRef = &ref
	job.PollingStartedAt = &started
	repo := newFakeJobRepo(job)
	// Nested object violates the flat-scalars schema.
	client := &fakeClient{pollResult: &extraction.PollResult{Status: extraction.StatusSucceeded, Fields: json.RawMessage(`{"vendor":{"nested":true}}`)}}
	refunds := &fakeRefunder{}
	tr := NewTracker(repo, client, store, refunds, TrackerConfig{}, nil)

	if err := tr.PollOnce(context.Background(), job); err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	got, _ := repo.Get(context.Background(), job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Errorf("status = %s, want FAILED", got.Status)
	}
	if len(refunds.refunds) != 1 {
		t.Errorf("refunds = %d, want 1", len(refunds.refunds))
	}
}

func TestPollOnceServiceFailureRefunds(t *testing.T) {
	store := newFakeStore()
	job := queuedJob(store)
	started := time.Now().Add(-time.Minute)
	ref := "op-1"
	job.Status = constants.JobStatusPolling
	job.ExternalOperationRef = &ref
	job.PollingStartedAt = &started
	repo := newFakeJobRepo(job)
	client := &fakeClient{pollResult: &extraction.PollResult{Status: extraction.StatusFailed, Error: "unreadable document"}}
	refunds := &fakeRefunder{}
	tr := NewTracker(repo, client, store, refunds, TrackerConfig{}, nil)

	if err := tr.PollOnce(context.Background(), job); err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	got, _ := repo.Get(context.Background(), job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Errorf("status = %s, want FAILED", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "unreadable document" {
		t.Errorf("error message = %v", got.ErrorMessage)
	}
	if len(refunds.refunds) != 1 {
		t.Errorf("refunds = %d, want 1", len(refunds.refunds))
	}
}

func TestPollOnceTransportErrorRetries(t *testing.T) {
	store := newFakeStore()
	job := queuedJob(store)
	started := time.Now().Add(-time.Minute)
	ref := "op-1"
	job.Status = constants.JobStatusPolling
	job.ExternalOperationRef = &ref
	job.PollingStartedAt = &started
	repo := newFakeJobRepo(job)
	client := &fakeClient{pollErr: errors.New("connection reset")}
	refunds := &fakeRefunder{}
	tr := NewTracker(repo, client, store, refunds, TrackerConfig{}, nil)

	if err := tr.PollOnce(context.Background(), job); err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	got, _ := repo.Get(context.Background(), job.ID)
	if got.Status != constants.JobStatusPolling {
		t.Errorf("transport error moved job to %s", got.Status)
	}
	if len(refunds.refunds) != 0 {
		t.Errorf("transport error triggered a refund")
	}
}

func TestPollOnceCeilingTimesOut(t *testing.T) {
	store := newFakeStore()
	job := queuedJob(store)
	started := time.Now().Add(-2 * time.Hour)
	ref := "op-1"
	job.Status = constants.JobStatusPolling
	job.ExternalOperationRef = &ref
	job.PollingStartedAt = &started
	repo := newFakeJobRepo(job)
	client := &fakeClient{pollResult: &extraction.PollResult{Status: extraction.StatusRunning}}
	refunds := &fakeRefunder{}
	tr := NewTracker(repo, client, store, refunds, TrackerConfig{PollCeiling: 30 * time.Minute}, nil)

	if err := tr.PollOnce(context.Background(), job); err != nil {
		t.Fatalf("PollOnce: %v", err)
	}
	got, _ := repo.Get(context.Background(), job.ID)
	if got.Status != constants.JobStatusFailed {
		t.Errorf("status = %s, want FAILED after ceiling", got.Status)
	}
	if client.polls != 0 {
		t.Errorf("timed-out job was still polled")
	}
	if len(refunds.refunds) != 1 {
		t.Errorf("refunds = %d, want 1", len(refunds.refunds))
	}
}
