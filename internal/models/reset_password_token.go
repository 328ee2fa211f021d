package models

import (
	"time"

	"github.com/google/uuid"
)

// ResetPasswordTokenDB represents a short-lived, single-use credential
// enabling a password reset without re-authentication.
type ResetPasswordTokenDB struct {
	TokenID   uuid.UUID `json:"id" db:"token_id"`          // Primary key, doubles as the token value
	UserID    uuid.UUID `json:"userId" db:"user_id"`       // Owning user
	Active    bool      `json:"active" db:"active"`        // Cleared once redeemed
	ExpiresIn time.Time `json:"expiresIn" db:"expires_in"` // Expiry timestamp
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}
