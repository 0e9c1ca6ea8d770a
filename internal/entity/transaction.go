package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/constants"
)

// Transaction represents one ledger entry, for data transfer between layers.
type Transaction struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	Type         constants.TxType   `json:"type"`
	CreditsDelta int                `json:"credits_delta"`
	Status       constants.TxStatus `json:"status"`
	Description  string             `json:"description,omitempty"`
	JobID        *uuid.UUID         `json:"job_id,omitempty"`
	SessionID    *uuid.UUID         `json:"session_id,omitempty"`
	RefundOf     *uuid.UUID         `json:"refund_of,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}
