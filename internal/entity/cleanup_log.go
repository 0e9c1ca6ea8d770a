package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
)

// CleanupLog represents one expiration sweep, for data transfer between layers.
type CleanupLog struct {
	ID              uuid.UUID               `json:"id"`
	StartedAt       time.Time               `json:"started_at"`
	CompletedAt     *time.Time              `json:"completed_at,omitempty"`
	SessionsExpired int                     `json:"sessions_expired"`
	JobsExpired     int                     `json:"jobs_expired"`
	BlobsDeleted    int                     `json:"blobs_deleted"`
	ErrorCount      int                     `json:"error_count"`
	Status          constants.CleanupStatus `json:"status"`
}
