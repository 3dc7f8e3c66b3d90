package models

// IssuedTokens bundles the freshly signed access/refresh token pair produced
// by a successful sign-in or refresh rotation.
type IssuedTokens struct {
	// Access is the short-lived bearer token.
	Access Token

	// Refresh is the long-lived rotation token. Its raw signed string is
	// sent to the client as a cookie; only its hash is persisted.
	Refresh Token

	// ExpiresIn is the access token lifetime in seconds, precomputed for
	// response bodies.
	ExpiresIn int64

	// User is the account the pair was issued for.
	User User
}

// SessionMeta carries per-request client metadata recorded alongside a
// refresh token for audit purposes.
type SessionMeta struct {
	IP        string
	UserAgent string
}

// GoogleUser is the identity extracted from a verified Google credential
// (id_token or access token). Email is always present; Name may be empty.
type GoogleUser struct {
	Email string
	Name  string
}
