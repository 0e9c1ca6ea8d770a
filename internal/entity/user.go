package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns sessions and a credit balance.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	CreditBalance int       `json:"credit_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
