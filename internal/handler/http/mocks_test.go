package http

import (
	"context"

	"github.com/MKhiriev/go-deploy-gate/models"
)

// Function-field mocks for the service layer. Each test wires only the
// functions its handler touches; an unexpected call panics on the nil field
// and fails the test loudly.

type mockAuthService struct {
	issueTokensFn     func(ctx context.Context, user models.User, meta models.SessionMeta) (models.IssuedTokens, error)
	refreshFn         func(ctx context.Context, refreshToken string, meta models.SessionMeta) (models.IssuedTokens, error)
	logoutFn          func(ctx context.Context, refreshToken string) error
	loginTestUserFn   func(ctx context.Context, email, password string, meta models.SessionMeta) (models.IssuedTokens, error)
	getOrCreateUserFn func(ctx context.Context, googleUser models.GoogleUser) (models.User, error)
	parseAccessFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) IssueTokens(ctx context.Context, user models.User, meta models.SessionMeta) (models.IssuedTokens, error) {
	return m.issueTokensFn(ctx, user, meta)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string, meta models.SessionMeta) (models.IssuedTokens, error) {
	return m.refreshFn(ctx, refreshToken, meta)
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.logoutFn(ctx, refreshToken)
}

func (m *mockAuthService) LoginTestUser(ctx context.Context, email, password string, meta models.SessionMeta) (models.IssuedTokens, error) {
	return m.loginTestUserFn(ctx, email, password, meta)
}

func (m *mockAuthService) GetOrCreateUser(ctx context.Context, googleUser models.GoogleUser) (models.User, error) {
	return m.getOrCreateUserFn(ctx, googleUser)
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseAccessFn(ctx, tokenString)
}

type mockOAuthService struct {
	enabled           bool
	authURLFn         func(state string) string
	exchangeCodeFn    func(ctx context.Context, code string) (models.GoogleUser, error)
	verifyIDTokenFn   func(ctx context.Context, idToken string) (models.GoogleUser, error)
	verifyAccessTokFn func(ctx context.Context, accessToken string) (models.GoogleUser, error)
}

func (m *mockOAuthService) Enabled() bool { return m.enabled }

func (m *mockOAuthService) AuthURL(state string) string {
	return m.authURLFn(state)
}

func (m *mockOAuthService) ExchangeCode(ctx context.Context, code string) (models.GoogleUser, error) {
	return m.exchangeCodeFn(ctx, code)
}

func (m *mockOAuthService) VerifyIDToken(ctx context.Context, idToken string) (models.GoogleUser, error) {
	return m.verifyIDTokenFn(ctx, idToken)
}

func (m *mockOAuthService) VerifyAccessToken(ctx context.Context, accessToken string) (models.GoogleUser, error) {
	return m.verifyAccessTokFn(ctx, accessToken)
}

type mockHealthService struct {
	livenessFn func(ctx context.Context) models.HealthResponse
	databaseFn func(ctx context.Context) (models.HealthResponse, error)
}

func (m *mockHealthService) CheckLiveness(ctx context.Context) models.HealthResponse {
	return m.livenessFn(ctx)
}

func (m *mockHealthService) CheckDatabase(ctx context.Context) (models.HealthResponse, error) {
	return m.databaseFn(ctx)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
