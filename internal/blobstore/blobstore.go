package blobstore

import (
	"context"
	"errors"
	"path"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get for missing keys.
var ErrNotFound = errors.New("blob not found")

// Store is the contract for persisting uploaded units and result bundles.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Keys holds the namespacing rules. Every key is prefixed by environment and
// user/session so blobs can never collide across environments or sessions.
type Keys struct {
	Environment string
}

// UnitKey is the location of an uploaded unit's bytes.
func (k Keys) UnitKey(userID, sessionID, jobID uuid.UUID, filename string) string {
	return path.Join(k.Environment, userID.String(), sessionID.String(), "units", jobID.String()+"_"+filename)
}

// BundleKey is the location of a session's downloadable result bundle.
func (k Keys) BundleKey(userID, sessionID uuid.UUID) string {
	return path.Join(k.Environment, userID.String(), sessionID.String(), "bundle.zip")
}
