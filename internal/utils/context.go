package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys defined in this package to
// avoid collisions with keys from other packages.
type contextKey string

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the request context. Set by the auth middleware after the access token has
// been validated.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier stored under
// [UserIDCtxKey]. The second return value reports whether a valid uuid.UUID
// was present.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok
}
