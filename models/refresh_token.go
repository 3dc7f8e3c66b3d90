package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the persisted server-side record of an issued refresh
// token. The raw token is never stored — only its SHA-256 hex digest — so a
// database leak does not expose usable credentials.
//
// Rotation discipline: every successful refresh revokes the presented record
// and inserts a new one. A presented token whose record is already revoked
// signals token reuse (theft), and all of the owner's records are revoked.
type RefreshToken struct {
	// JTI is the unique token identifier carried in the "jti" claim.
	JTI string `json:"jti"`

	// UserID is the owner of the token.
	UserID uuid.UUID `json:"user_id"`

	// TokenHash is the SHA-256 hex digest of the raw signed token.
	TokenHash string `json:"-"`

	// ExpiresAt mirrors the "exp" claim for server-side expiry checks
	// without re-parsing the token.
	ExpiresAt time.Time `json:"expires_at"`

	// RevokedAt is nil while the token is active. A non-nil value marks the
	// token as spent (rotated out) or revoked (logout, reuse detection).
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	// IP is the remote address observed when the token was issued.
	// Stored for audit purposes only.
	IP string `json:"-"`

	// UserAgent is the client User-Agent observed when the token was issued.
	// Stored for audit purposes only.
	UserAgent string `json:"-"`

	// CreatedAt is the timestamp when the token record was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the RefreshToken model.
func (t RefreshToken) TableName() string {
	return "refresh_tokens"
}

// Active reports whether the token is neither revoked nor expired at the
// given instant.
func (t RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
