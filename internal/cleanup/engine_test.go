package cleanup

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
	"github.com/tobi-adeyemi/extractflow/internal/repository"
)

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

func (f *fakeSessionRepo) Create(context.Context, entity.Session, []entity.Job) (*entity.Session, []entity.Job, error) {
	return nil, nil, nil
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

func (f *fakeSessionRepo) ListByUser(context.Context, uuid.UUID) ([]entity.Session, error) {
	return nil, nil
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

func (f *fakeSessionRepo) TransitionStatus(context.Context, uuid.UUID, []constants.SessionStatus, constants.SessionStatus) (bool, error) {
	return false, nil
}

func (f *fakeSessionRepo) SetCompletedUnits(context.Context, uuid.UUID, int) error { return nil }

func (f *fakeSessionRepo) ListActive(context.Context, int) ([]entity.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepo) ClaimPostProcessing(context.Context, uuid.UUID, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeSessionRepo) ReclaimStalePostProcessing(context.Context, uuid.UUID, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeSessionRepo) FinishPostProcessing(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeSessionRepo) FailSession(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeSessionRepo) AccelerateExpiry(context.Context, uuid.UUID, time.Time) (bool, error) {
	return false, nil
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

func (f *fakeSessionRepo) ResetForReprocess(context.Context, uuid.UUID, time.Time) (bool, error) {
	return false, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.Job
}

var _ repository.JobRepository = (*fakeJobRepo)(nil)

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

func (f *fakeJobRepo) ListBySession(context.Context, uuid.UUID) ([]entity.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) ListPollable(context.Context, time.Time, int) ([]entity.Job, error) {
	return nil, nil
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

func (f *fakeJobRepo) Cancel(context.Context, uuid.UUID) (bool, error) { return false, nil }

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

func (f *fakeJobRepo) Requeue(context.Context, uuid.UUID, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeJobRepo) AccelerateExpiry(context.Context, uuid.UUID, time.Time) (int, error) {
	return 0, nil
}

type fakeRunsRepo struct {
	mu      sync.Mutex
	started int
	results []entity.CleanupLog
}

var _ repository.CleanupLogRepository = (*fakeRunsRepo)(nil)

func (f *fakeRunsRepo) StartRun(context.Context) (*entity.CleanupLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started++
	return &entity.CleanupLog{ID: uuid.New(), StartedAt: time.Now(), Status: constants.CleanupStatusRunning}, nil
}

func (f *fakeRunsRepo) FinishRun(_ context.Context, _ uuid.UUID, result entity.CleanupLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, result)
	return nil
}

func (f *fakeRunsRepo) ListRecent(context.Context, int) ([]entity.CleanupLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.results, nil
}

type flakyStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	failing map[string]bool
	deletes int
}

func (f *flakyStore) Put(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[key] = data
	return nil
}

func (f *flakyStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.blobs[key]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return data, nil
}

func (f *flakyStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	if f.failing[key] {
		return errors.New("backend unavailable")
	}
	delete(f.blobs, key)
	return nil
}

func newTestEngine() (*Engine, *fakeSessionRepo, *fakeJobRepo, *fakeRunsRepo, *flakyStore) {
	sessions := &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}
	jobs := &fakeJobRepo{jobs: map[uuid.UUID]*entity.Job{}}
	runs := &fakeRunsRepo{}
	store := &flakyStore{blobs: map[string][]byte{}, failing: map[string]bool{}}
	return NewEngine(sessions, jobs, runs, store, nil), sessions, jobs, runs, store
}

func expiredSession(store *flakyStore, bundle string) *entity.Session {
	s := &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Status:    constants.SessionStatusCompleted,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if bundle != "" {
		s.ResultBundlePath = &bundle
		store.blobs[bundle] = []byte("zip")
	}
	return s
}

func expiredJob(store *flakyStore, key string) *entity.Job {
	store.blobs[key] = []byte("unit")
	return &entity.Job{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Status:    constants.JobStatusCompleted,
		FilePath:  key,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
}

func TestSweepExpiresAndDeletes(t *testing.T) {
	engine, sessions, jobs, runs, store := newTestEngine()
	s := expiredSession(store, "env/bundle.zip")
	sessions.sessions[s.ID] = s
	j := expiredJob(store, "env/unit.pdf")
	jobs.jobs[j.ID] = j

	run, err := engine.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if run.SessionsExpired != 1 || run.JobsExpired != 1 || run.BlobsDeleted != 2 {
		t.Errorf("run = %+v", run)
	}
	if run.Status != constants.CleanupStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", run.Status)
	}
	if sessions.sessions[s.ID].Status != constants.SessionStatusExpired {
		t.Error("session not expired")
	}
	if jobs.jobs[j.ID].Status != constants.JobStatusExpired {
		t.Error("job not expired")
	}
	if len(store.blobs) != 0 {
		t.Errorf("%d blobs left", len(store.blobs))
	}
	if runs.started != 1 || len(runs.results) != 1 {
		t.Errorf("audit rows: started=%d finished=%d", runs.started, len(runs.results))
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	engine, sessions, jobs, _, store := newTestEngine()
	s := expiredSession(store, "env/bundle.zip")
	sessions.sessions[s.ID] = s
	j := expiredJob(store, "env/unit.pdf")
	jobs.jobs[j.ID] = j

	if _, err := engine.Sweep(context.Background()); err != nil {
		t.Fatal(err)
	}
	second, err := engine.Sweep(context.Background())
	if err != nil {
		t.Fatalf("second Sweep: %v", err)
	}
	if second.SessionsExpired != 0 || second.JobsExpired != 0 || second.BlobsDeleted != 0 {
		t.Errorf("second sweep did work: %+v", second)
	}
	if second.Status != constants.CleanupStatusCompleted {
		t.Errorf("second sweep status = %s", second.Status)
	}
}

func TestSweepCountsItemErrorsAndContinues(t *testing.T) {
	engine, sessions, jobs, _, store := newTestEngine()
	bad := expiredSession(store, "env/bad-bundle.zip")
	store.failing["env/bad-bundle.zip"] = true
	good := expiredSession(store, "env/good-bundle.zip")
	sessions.sessions[bad.ID] = bad
	sessions.sessions[good.ID] = good
	j := expiredJob(store, "env/unit.pdf")
	jobs.jobs[j.ID] = j

	run, err := engine.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if run.Status != constants.CleanupStatusCompletedWithErrors {
		t.Errorf("status = %s, want COMPLETED_WITH_ERRORS", run.Status)
	}
	if run.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", run.ErrorCount)
	}
	// A blob delete failure still expires the row and the rest of the batch.
	if run.SessionsExpired != 2 || run.JobsExpired != 1 {
		t.Errorf("run = %+v", run)
	}
}
