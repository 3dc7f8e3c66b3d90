package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/models"
	"github.com/google/uuid"
)

// refreshTokenRepository is the PostgreSQL-backed implementation of
// [RefreshTokenRepository]. It stores one record per issued refresh token,
// keyed by jti, holding only the token digest — never the token itself.
//
// Queries are built with squirrel using $N placeholders so the column list
// lives in one place per operation.
type refreshTokenRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewRefreshTokenRepository constructs a [RefreshTokenRepository] backed by
// the provided database connection and logger.
func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Save persists a newly issued refresh-token record.
//
// Error handling:
//   - Query construction failure → wrapped [ErrBuildingSQLQuery].
//   - Driver-level failure → wrapped [ErrExecutingStatement].
//   - Zero rows affected → [ErrRefreshTokenNotSaved].
func (r *refreshTokenRepository) Save(ctx context.Context, token models.RefreshToken) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(token.TableName()).
		Columns("jti", "user_id", "token_hash", "expires_at", "ip", "user_agent").
		Values(token.JTI, token.UserID, token.TokenHash, token.ExpiresAt, token.IP, token.UserAgent).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.Save").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Str("func", "*refreshTokenRepository.Save").
			Msg("error saving refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "*refreshTokenRepository.Save").Msg("refresh token was not saved")
		return ErrRefreshTokenNotSaved
	}

	return nil
}

// FindByJTI retrieves a refresh-token record by its jti.
//
// Error handling:
//   - Empty result set ([sql.ErrNoRows]) → [ErrRefreshTokenNotFound].
//   - Driver-level failure → wrapped [ErrExecutingQuery].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *refreshTokenRepository) FindByJTI(ctx context.Context, jti string) (models.RefreshToken, error) {
	log := logger.FromContext(ctx)

	var token models.RefreshToken
	query, args, err := r.builder.
		Select("jti", "user_id", "token_hash", "expires_at", "revoked_at", "ip", "user_agent", "created_at").
		From(token.TableName()).
		Where(sq.Eq{"jti": jti}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.FindByJTI").Msg("error building select query")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RefreshToken{}, ErrRefreshTokenNotFound
		}
		log.Err(err).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Str("func", "*refreshTokenRepository.FindByJTI").
			Msg("error querying refresh token")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	err = row.Scan(&token.JTI, &token.UserID, &token.TokenHash, &token.ExpiresAt, &token.RevokedAt, &token.IP, &token.UserAgent, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RefreshToken{}, ErrRefreshTokenNotFound
		}
		log.Err(err).Str("func", "*refreshTokenRepository.FindByJTI").Msg("error scanning refresh token")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// Revoke marks a single refresh-token record as revoked. Used on rotation
// (the old token dies when its successor is issued) and on logout.
//
// Revoking an already revoked token is a no-op; revoking an unknown jti
// returns [ErrRefreshTokenNotFound].
func (r *refreshTokenRepository) Revoke(ctx context.Context, jti string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(models.RefreshToken{}.TableName()).
		Set("revoked_at", sq.Expr("NOW()")).
		Where(sq.Eq{"jti": jti}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.Revoke").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Str("func", "*refreshTokenRepository.Revoke").
			Msg("error revoking refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		// Either already revoked or never issued. Distinguish the two so the
		// service layer can react to replayed tokens.
		if _, findErr := r.FindByJTI(ctx, jti); findErr != nil {
			return findErr
		}
	}

	return nil
}

// RevokeAllForUser revokes every active refresh token belonging to the given
// user. Invoked when a rotated-away token is presented again: the only safe
// response to a replayed refresh token is to terminate all of the user's
// sessions.
func (r *refreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(models.RefreshToken{}.TableName()).
		Set("revoked_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.RevokeAllForUser").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Str("func", "*refreshTokenRepository.RevokeAllForUser").
			Msg("error revoking user refresh tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
