package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex computes the SHA-256 digest of the given string and returns it
// hex-encoded.
//
// Used for refresh tokens: only the digest of a refresh JWT is persisted,
// never the token itself, so a database leak does not leak usable tokens.
//
// Example usage:
//
//	digest := utils.SHA256Hex(refreshToken.SignedString)
func SHA256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
