package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
)

// Job represents one unit of extraction work, for data transfer between layers.
type Job struct {
	ID                   uuid.UUID           `json:"id"`
	SessionID            *uuid.UUID          `json:"session_id,omitempty"`
	UserID               uuid.UUID           `json:"user_id"`
	Status               constants.JobStatus `json:"status"`
	Format               string              `json:"format"`
	SourceFilename       string              `json:"source_filename"`
	FilePath             string              `json:"file_path"`
	PageCount            int                 `json:"page_count"`
	CreditsCharged       int                 `json:"credits_charged"`
	ExternalOperationRef *string             `json:"external_operation_ref,omitempty"`
	ExtractedFields      json.RawMessage     `json:"extracted_fields,omitempty"`
	ErrorMessage         *string             `json:"error_message,omitempty"`
	PollingStartedAt     *time.Time          `json:"polling_started_at,omitempty"`
	LastPolledAt         *time.Time          `json:"last_polled_at,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	ExpiresAt            time.Time           `json:"expires_at"`
}

// Fields decodes the extracted fields into a generic map. Returns an empty
// map when nothing was extracted.
func (j *Job) Fields() map[string]any {
	out := map[string]any{}
	if len(j.ExtractedFields) > 0 {
		_ = json.Unmarshal(j.ExtractedFields, &out)
	}
	return out
}
