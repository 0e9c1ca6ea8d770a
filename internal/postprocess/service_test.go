package postprocess

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/internal/blobstore"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

type memStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return data, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

func bundleEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	out := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = content
	}
	return out
}

func TestRunBuildsBundle(t *testing.T) {
	store := newMemStore()
	keys := blobstore.Keys{Environment: "test"}
	svc := NewService(store, keys, nil)

	userID := uuid.New()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:             sessionID,
		UserID:         userID,
		NamingTemplate: json.RawMessage(`[{"type":"field","field":"vendor"}]`),
	}

	jobs := make([]entity.Job, 0, 3)
	for i, spec := range []struct {
		filename string
		vendor   string
		payload  string
	}{
		{"scan1.pdf", "Acme", "payload-1"},
		{"scan2.pdf", "Acme", "payload-2"}, // same rendered name, must be deduplicated
		{"scan3.pdf", "Globex", "payload-3"},
	} {
		jobID := uuid.New()
		key := keys.UnitKey(userID, sessionID, jobID, spec.filename)
		if err := store.Put(context.Background(), key, []byte(spec.payload)); err != nil {
			t.Fatal(err)
		}
		fields, _ := json.Marshal(map[string]any{"vendor": spec.vendor, "n": i})
		jobs = append(jobs, entity.Job{
			ID:              jobID,
			SourceFilename:  spec.filename,
			FilePath:        key,
			ExtractedFields: fields,
		})
	}

	bundleKey, err := svc.Run(context.Background(), session, jobs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := keys.BundleKey(userID, sessionID); bundleKey != want {
		t.Fatalf("bundle key = %q, want %q", bundleKey, want)
	}

	data, err := store.Get(context.Background(), bundleKey)
	if err != nil {
		t.Fatalf("bundle not stored: %v", err)
	}
	entries := bundleEntries(t, data)

	if len(entries) != 4 {
		t.Fatalf("bundle has %d entries, want 3 files + workbook", len(entries))
	}
	if string(entries["Acme.pdf"]) != "payload-1" {
		t.Errorf("Acme.pdf = %q", entries["Acme.pdf"])
	}
	if string(entries["Acme-1.pdf"]) != "payload-2" {
		t.Errorf("duplicate name not suffixed: %v", keysOf(entries))
	}
	if string(entries["Globex.pdf"]) != "payload-3" {
		t.Errorf("Globex.pdf = %q", entries["Globex.pdf"])
	}
	if _, ok := entries["extracted.xlsx"]; !ok {
		t.Error("bundle is missing the workbook")
	}
}

func TestRunFailsWhenArtifactMissing(t *testing.T) {
	store := newMemStore()
	keys := blobstore.Keys{Environment: "test"}
	svc := NewService(store, keys, nil)

	session := &entity.Session{ID: uuid.New(), UserID: uuid.New()}
	jobs := []entity.Job{{ID: uuid.New(), SourceFilename: "gone.pdf", FilePath: "test/missing"}}

	if _, err := svc.Run(context.Background(), session, jobs); err == nil {
		t.Fatal("expected error for missing artifact")
	}
	if _, err := store.Get(context.Background(), keys.BundleKey(session.UserID, session.ID)); err == nil {
		t.Fatal("no bundle should be stored on failure")
	}
}

func TestRunRejectsBadTemplate(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, blobstore.Keys{Environment: "test"}, nil)
	session := &entity.Session{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		NamingTemplate: json.RawMessage(`[{"type":"nope"}]`),
	}
	if _, err := svc.Run(context.Background(), session, nil); err == nil {
		t.Fatal("expected template validation error")
	}
}

func keysOf(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
