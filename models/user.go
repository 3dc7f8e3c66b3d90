package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// Accounts are created lazily on first successful OAuth sign-in, keyed by
// e-mail address.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID uuid.UUID `json:"user_id"`

	// Email is the unique user identifier obtained from the identity
	// provider. Used as the lookup key during sign-in.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
