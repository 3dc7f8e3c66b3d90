package service

import (
	"context"

	"github.com/MKhiriev/go-deploy-gate/models"
)

type AuthService interface {
	IssueTokens(ctx context.Context, user models.User, meta models.SessionMeta) (models.IssuedTokens, error)
	Refresh(ctx context.Context, refreshToken string, meta models.SessionMeta) (models.IssuedTokens, error)
	Logout(ctx context.Context, refreshToken string) error
	LoginTestUser(ctx context.Context, email, password string, meta models.SessionMeta) (models.IssuedTokens, error)
	GetOrCreateUser(ctx context.Context, googleUser models.GoogleUser) (models.User, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

type OAuthService interface {
	Enabled() bool
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (models.GoogleUser, error)
	VerifyIDToken(ctx context.Context, idToken string) (models.GoogleUser, error)
	VerifyAccessToken(ctx context.Context, accessToken string) (models.GoogleUser, error)
}

type HealthService interface {
	CheckLiveness(ctx context.Context) models.HealthResponse
	CheckDatabase(ctx context.Context) (models.HealthResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ConnectivityChecker is the slice of the store layer the health service
// depends on. Satisfied by [store.DB].
type ConnectivityChecker interface {
	CheckConnectivity(ctx context.Context) error
}
