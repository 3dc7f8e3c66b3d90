package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-deploy-gate/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken creates a signed HMAC-SHA256 access JWT.
//
// The token carries the standard claims (iss, sub, iat, exp) plus a
// "typ":"access" marker so that access and refresh tokens can never be
// swapped for one another.
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateAccessToken(issuer string, userID uuid.UUID, tokenDuration time.Duration, signKey string) (models.Token, error) {
	return generateToken(issuer, userID, "", models.TokenTypeAccess, tokenDuration, signKey)
}

// GenerateRefreshToken creates a signed HMAC-SHA256 refresh JWT carrying a
// "typ":"refresh" marker and the given jti. The jti is the server-side
// rotation handle: the persisted refresh-token record is keyed by it.
func GenerateRefreshToken(issuer string, userID uuid.UUID, jti string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if jti == "" {
		return models.Token{}, errors.New("refresh token requires a jti")
	}

	return generateToken(issuer, userID, jti, models.TokenTypeRefresh, tokenDuration, signKey)
}

func generateToken(issuer string, userID uuid.UUID, jti, tokenType string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == uuid.Nil || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.UserID = userID

	return *claims, nil
}

// ValidateAndParseToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Token type ("typ") claim check against wantType
//   - Subject (sub) claim presence and conversion to a UUID UserID
//
// Returns the decoded token model or a non-nil error if validation fails,
// claims are missing, or the subject cannot be parsed.
func ValidateAndParseToken(tokenString, tokenSignKey, tokenIssuer, wantType string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.TokenType != wantType {
		return models.Token{}, fmt.Errorf("unexpected token type %q, want %q", parsed.TokenType, wantType)
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.UserID = userID

	return *parsed, nil
}

// ParseBearerToken extracts the raw token from an "Authorization: Bearer
// <token>" header value.
//
// Returns an error if the header does not follow the "Bearer <token>" form
// or the token part is empty.
//
// Example usage:
//
//	raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(authorizationHeader, " ")
	if !found || scheme != "Bearer" || token == "" {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}
