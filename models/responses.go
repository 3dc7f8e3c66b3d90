package models

import "github.com/google/uuid"

// AuthResponse is returned by every sign-in endpoint (OAuth callback, POST
// id_token flow, dev password login). The refresh token is not part of the
// body — it travels only in an HttpOnly cookie.
type AuthResponse struct {
	// AccessToken is the compact signed JWT the client presents in the
	// Authorization header.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`

	// User is the authenticated account the tokens were issued for.
	User User `json:"user"`
}

// RefreshResponse is returned by the refresh-rotation endpoint. Unlike
// [AuthResponse] it carries only the user ID, not the full account record.
type RefreshResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	UserID      uuid.UUID `json:"user_id"`
}

// MeResponse identifies the account behind a valid access token.
type MeResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// ErrorResponse is the generic JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse is the generic JSON acknowledgement body used by endpoints that
// have no meaningful payload (logout, liveness shortcuts).
type OKResponse struct {
	OK bool `json:"ok"`
}
