package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID    uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Name      string    `json:"name" db:"name"`             // Display name
	Email     string    `json:"email" db:"email"`           // Unique email
	Password  string    `json:"-" db:"password"`            // Hashed password, never serialized
	Picture   *string   `json:"picture" db:"picture"`       // Avatar URL, optional
	CreatedAt time.Time `json:"createdAt" db:"created_at"`  // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`  // Last update timestamp
}
