package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-deploy-gate/internal/config"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/store"
	"github.com/MKhiriev/go-deploy-gate/internal/utils"
	"github.com/MKhiriev/go-deploy-gate/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It owns the JWT token lifecycle: issuing access/refresh pairs, rotating
// refresh tokens, detecting token reuse, and the dev-only password login.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// refreshTokenRepository persists refresh-token records (digests only).
	refreshTokenRepository store.RefreshTokenRepository

	// tokenSignKey is the HMAC secret used to sign and verify access JWTs.
	tokenSignKey string

	// refreshSignKey is the HMAC secret used to sign and verify refresh JWTs.
	// Kept separate from tokenSignKey so a leaked access key cannot mint
	// refresh tokens.
	refreshSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued access JWT remains valid.
	tokenDuration time.Duration

	// refreshDuration controls how long a newly issued refresh JWT remains valid.
	refreshDuration time.Duration

	// testUserEmail and testUserPasswordHash configure the dev-only password
	// login. Both empty in production.
	testUserEmail        string
	testUserPasswordHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, refreshTokenRepository store.RefreshTokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         userRepository,
		refreshTokenRepository: refreshTokenRepository,
		tokenSignKey:           cfg.TokenSignKey,
		refreshSignKey:         cfg.RefreshSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		refreshDuration:        cfg.RefreshDuration,
		testUserEmail:          cfg.TestUserEmail,
		testUserPasswordHash:   cfg.TestUserPasswordHash,
		logger:                 logger,
	}
}

// IssueTokens mints a fresh access/refresh token pair for the given user and
// persists the refresh-token record (jti + SHA-256 digest, never the token).
//
// Returns the signed pair or:
//   - ErrInvalidDataProvided if the user has no UserID.
//   - A wrapped storage error if persisting the refresh record fails; no
//     tokens are returned in that case.
func (a *authService) IssueTokens(ctx context.Context, user models.User, meta models.SessionMeta) (models.IssuedTokens, error) {
	log := logger.FromContext(ctx)

	if user.UserID == uuid.Nil {
		log.Error().Msg("cannot issue tokens for a user without an ID")
		return models.IssuedTokens{}, ErrInvalidDataProvided
	}

	accessToken, err := utils.GenerateAccessToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.IssueTokens").Msg("access token generation failed")
		return models.IssuedTokens{}, fmt.Errorf("access token generation failed: %w", err)
	}

	jti := uuid.NewString()
	refreshToken, err := utils.GenerateRefreshToken(a.tokenIssuer, user.UserID, jti, a.refreshDuration, a.refreshSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.IssueTokens").Msg("refresh token generation failed")
		return models.IssuedTokens{}, fmt.Errorf("refresh token generation failed: %w", err)
	}

	record := models.RefreshToken{
		JTI:       jti,
		UserID:    user.UserID,
		TokenHash: utils.SHA256Hex(refreshToken.SignedString),
		ExpiresAt: refreshToken.ExpiresAt.Time,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}
	if err := a.refreshTokenRepository.Save(ctx, record); err != nil {
		log.Err(err).Str("func", "*authService.IssueTokens").Msg("saving refresh token record failed")
		return models.IssuedTokens{}, fmt.Errorf("saving refresh token record failed: %w", err)
	}

	return models.IssuedTokens{
		Access:    accessToken,
		Refresh:   refreshToken,
		ExpiresIn: int64(a.tokenDuration.Seconds()),
		User:      user,
	}, nil
}

// Refresh rotates a presented refresh token: the old record is revoked and a
// brand-new access/refresh pair is issued under a fresh jti.
//
// Reuse detection: a presented token whose record is already revoked means
// the token was rotated away and is now being replayed — likely theft. All
// of the owner's active tokens are revoked and ErrTokenReuseDetected is
// returned.
//
// Any other failure (bad signature, wrong typ, unknown jti, digest mismatch,
// expiry) yields ErrRefreshTokenInvalid without touching other sessions.
func (a *authService) Refresh(ctx context.Context, refreshToken string, meta models.SessionMeta) (models.IssuedTokens, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseToken(refreshToken, a.refreshSignKey, a.tokenIssuer, models.TokenTypeRefresh)
	if err != nil {
		log.Err(err).Str("func", "*authService.Refresh").Msg("refresh token failed validation")
		return models.IssuedTokens{}, ErrRefreshTokenInvalid
	}

	record, err := a.refreshTokenRepository.FindByJTI(ctx, parsed.ID)
	if err != nil {
		if errors.Is(err, store.ErrRefreshTokenNotFound) {
			return models.IssuedTokens{}, ErrRefreshTokenInvalid
		}
		log.Err(err).Str("func", "*authService.Refresh").Msg("refresh token lookup failed")
		return models.IssuedTokens{}, fmt.Errorf("refresh token lookup failed: %w", err)
	}

	if record.TokenHash != utils.SHA256Hex(refreshToken) {
		log.Error().Str("func", "*authService.Refresh").Str("jti", record.JTI).Msg("refresh token digest mismatch")
		return models.IssuedTokens{}, ErrRefreshTokenInvalid
	}

	if record.RevokedAt != nil {
		// The token was already rotated away. Whoever presents it now holds a
		// stolen copy; the only safe response is to end every session.
		log.Error().Str("func", "*authService.Refresh").Str("jti", record.JTI).Msg("revoked refresh token presented, revoking all user sessions")
		if revokeErr := a.refreshTokenRepository.RevokeAllForUser(ctx, record.UserID); revokeErr != nil {
			log.Err(revokeErr).Str("func", "*authService.Refresh").Msg("revoking user sessions failed")
		}
		return models.IssuedTokens{}, ErrTokenReuseDetected
	}

	if !record.Active(time.Now()) {
		return models.IssuedTokens{}, ErrRefreshTokenInvalid
	}

	if err := a.refreshTokenRepository.Revoke(ctx, record.JTI); err != nil {
		log.Err(err).Str("func", "*authService.Refresh").Msg("revoking rotated refresh token failed")
		return models.IssuedTokens{}, fmt.Errorf("revoking rotated refresh token failed: %w", err)
	}

	return a.IssueTokens(ctx, models.User{UserID: record.UserID}, meta)
}

// Logout revokes every active refresh token of the user who owns the
// presented token. An invalid or already revoked token is not an error —
// logout is idempotent.
func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseToken(refreshToken, a.refreshSignKey, a.tokenIssuer, models.TokenTypeRefresh)
	if err != nil {
		log.Debug().Str("func", "*authService.Logout").Msg("logout with invalid refresh token, nothing to revoke")
		return nil
	}

	if err := a.refreshTokenRepository.RevokeAllForUser(ctx, parsed.UserID); err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("revoking user sessions failed")
		return fmt.Errorf("revoking user sessions failed: %w", err)
	}

	return nil
}

// LoginTestUser authenticates the configured dev test user by email and
// password and issues a token pair on success.
//
// Returns:
//   - ErrTestUserNotConfigured if no test user is configured.
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongPassword if the email or the bcrypt comparison does not match.
func (a *authService) LoginTestUser(ctx context.Context, email, password string, meta models.SessionMeta) (models.IssuedTokens, error) {
	log := logger.FromContext(ctx)

	if a.testUserEmail == "" || a.testUserPasswordHash == "" {
		return models.IssuedTokens{}, ErrTestUserNotConfigured
	}

	if email == "" || password == "" {
		log.Error().Str("func", "*authService.LoginTestUser").Msg("invalid login data provided")
		return models.IssuedTokens{}, ErrInvalidDataProvided
	}

	if email != a.testUserEmail {
		return models.IssuedTokens{}, ErrWrongPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.testUserPasswordHash), []byte(password)); err != nil {
		log.Error().Str("func", "*authService.LoginTestUser").Msg("wrong password for test user")
		return models.IssuedTokens{}, ErrWrongPassword
	}

	user, err := a.GetOrCreateUser(ctx, models.GoogleUser{Email: email, Name: "Test User"})
	if err != nil {
		return models.IssuedTokens{}, err
	}

	return a.IssueTokens(ctx, user, meta)
}

// GetOrCreateUser finds the user with the given email, creating the account
// on first sight. A concurrent-creation race (unique violation on insert) is
// resolved by re-reading the winner's record.
func (a *authService) GetOrCreateUser(ctx context.Context, googleUser models.GoogleUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if googleUser.Email == "" {
		log.Error().Str("func", "*authService.GetOrCreateUser").Msg("no email provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByEmail(ctx, googleUser.Email)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "*authService.GetOrCreateUser").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{Email: googleUser.Email, Name: googleUser.Name})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return a.userRepository.FindUserByEmail(ctx, googleUser.Email)
		}
		log.Err(err).Str("func", "*authService.GetOrCreateUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// ParseAccessToken validates an access token string (signature, issuer,
// expiry, typ=access) and returns the decoded claims.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.TokenTypeAccess)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseAccessToken").Msg("access token failed validation")
		return models.Token{}, err
	}
	return token, nil
}
