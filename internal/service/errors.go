package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTestUserNotConfigured is returned by the password login when no dev
	// test user is configured. The handler maps it to 404 so the endpoint is
	// indistinguishable from absent in production.
	ErrTestUserNotConfigured = errors.New("test user is not configured")

	// ErrRefreshTokenInvalid covers every non-recoverable refresh failure:
	// bad signature, wrong token type, unknown jti, digest mismatch, expiry.
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid")

	// ErrTokenReuseDetected is returned when a rotated-away refresh token is
	// presented again. By the time it is returned all of the owner's
	// sessions have been revoked.
	ErrTokenReuseDetected = errors.New("refresh token reuse detected")

	// ErrOAuthNotConfigured is returned by OAuth operations when Google
	// credentials are absent from the configuration.
	ErrOAuthNotConfigured = errors.New("oauth is not configured")

	// ErrOAuthVerificationFailed is returned when Google rejects a presented
	// token or code, or the response cannot be interpreted.
	ErrOAuthVerificationFailed = errors.New("oauth token verification failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
