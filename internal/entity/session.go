package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
)

// Session represents a batch of units uploaded together, for data transfer
// between layers.
type Session struct {
	ID                      uuid.UUID               `json:"id"`
	UserID                  uuid.UUID               `json:"user_id"`
	Status                  constants.SessionStatus `json:"status"`
	TotalUnits              int                     `json:"total_units"`
	CompletedUnits          int                     `json:"completed_units"`
	NamingTemplate          json.RawMessage         `json:"naming_template,omitempty"`
	ExportColumns           json.RawMessage         `json:"export_columns,omitempty"`
	PostProcessingStatus    *string                 `json:"post_processing_status,omitempty"`
	PostProcessingStartedAt *time.Time              `json:"post_processing_started_at,omitempty"`
	ResultBundlePath        *string                 `json:"result_bundle_path,omitempty"`
	ErrorMessage            *string                 `json:"error_message,omitempty"`
	CreatedAt               time.Time               `json:"created_at"`
	ExpiresAt               time.Time               `json:"expires_at"`
}

// Progress reports completed/total as a ratio in [0,1].
func (s *Session) Progress() float64 {
	if s.TotalUnits == 0 {
		return 0
	}
	return float64(s.CompletedUnits) / float64(s.TotalUnits)
}
