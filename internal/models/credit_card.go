package models

import (
	"time"

	"github.com/google/uuid"
)

// CreditCardDB represents a credit card record in the database
type CreditCardDB struct {
	CreditCardID uuid.UUID `json:"id" db:"credit_card_id"`    // Primary key
	UserID       uuid.UUID `json:"userId" db:"user_id"`       // Owning user
	Name         string    `json:"name" db:"name"`            // Display name, e.g. "Visa"
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
