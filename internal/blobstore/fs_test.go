package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store := NewFSStore(t.TempDir())
	ctx := context.Background()
	key := "development/user/session/units/job_scan.pdf"

	if err := store.Put(ctx, key, []byte("payload")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("Get = %q", got)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestFSStoreOverwrite(t *testing.T) {
	store := NewFSStore(t.TempDir())
	ctx := context.Background()

	if err := store.Put(ctx, "k", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "k", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil || string(got) != "v2" {
		t.Fatalf("Get = (%q, %v), want v2", got, err)
	}
}

func TestFSStoreDeleteMissingIsNoOp(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if err := store.Delete(context.Background(), "never/written"); err != nil {
		t.Fatalf("Delete of missing key: %v", err)
	}
}

func TestKeysNamespacing(t *testing.T) {
	keys := Keys{Environment: "production"}
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	sessionID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	jobID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	unit := keys.UnitKey(userID, sessionID, jobID, "scan.pdf")
	want := "production/11111111-1111-1111-1111-111111111111/22222222-2222-2222-2222-222222222222/units/33333333-3333-3333-3333-333333333333_scan.pdf"
	if unit != want {
		t.Errorf("UnitKey = %q, want %q", unit, want)
	}

	bundle := keys.BundleKey(userID, sessionID)
	if bundle != "production/11111111-1111-1111-1111-111111111111/22222222-2222-2222-2222-222222222222/bundle.zip" {
		t.Errorf("BundleKey = %q", bundle)
	}

	other := Keys{Environment: "staging"}
	if other.UnitKey(userID, sessionID, jobID, "scan.pdf") == unit {
		t.Error("environments share a key namespace")
	}
}
