package models

import (
	"time"

	"github.com/google/uuid"
)

// DebtorDB represents a tracked non-account person who can owe money to a user
type DebtorDB struct {
	DebtorID  uuid.UUID `json:"id" db:"debtor_id"`         // Primary key
	UserID    uuid.UUID `json:"userId" db:"user_id"`       // Owning user
	Name      string    `json:"name" db:"name"`            // Display name
	Color     string    `json:"color" db:"color"`          // Display color, e.g. #ffffff
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
