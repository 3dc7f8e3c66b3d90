package store

import (
	"context"

	"github.com/MKhiriev/go-deploy-gate/models"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type RefreshTokenRepository interface {
	Save(ctx context.Context, token models.RefreshToken) error
	FindByJTI(ctx context.Context, jti string) (models.RefreshToken, error)
	Revoke(ctx context.Context, jti string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}
