package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-deploy-gate/internal/config"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/service"
	"github.com/MKhiriev/go-deploy-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutedHandler(t *testing.T, oauthEnabled bool) *Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: &mockAuthService{},
		OAuthService: &mockOAuthService{
			enabled: oauthEnabled,
			authURLFn: func(state string) string {
				return "https://accounts.google.com/o/oauth2/v2/auth"
			},
		},
		HealthService:  healthyMock(),
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}

	return NewHandler(svcs, config.App{}, logger.Nop())
}

func TestInit_ReturnsRouter(t *testing.T) {
	require.NotNil(t, newRoutedHandler(t, false).Init())
}

func TestInit_HealthRoutes(t *testing.T) {
	router := newRoutedHandler(t, false).Init()

	for _, path := range []string{"/health", "/health/db"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestInit_VersionRoute(t *testing.T) {
	router := newRoutedHandler(t, false).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestInit_GoogleRoutesUnavailableWithoutOAuth(t *testing.T) {
	router := newRoutedHandler(t, false).Init()

	googleRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/login/google"},
		{http.MethodGet, "/auth/callback"},
		{http.MethodPost, "/auth/google"},
		{http.MethodPost, "/auth/google/access"},
	}

	for _, tc := range googleRoutes {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, tc.method+" "+tc.path)
	}
}

func TestInit_GoogleRoutesReachableWithOAuth(t *testing.T) {
	router := newRoutedHandler(t, true).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login/google", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
}

func TestInit_NonGoogleAuthRoutesUnaffectedByOAuth(t *testing.T) {
	h := newRoutedHandler(t, false)
	h.services.AuthService = &mockAuthService{
		logoutFn: func(_ context.Context, _ string) error { return nil },
	}
	router := h.Init()

	// logout works without OAuth configured
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_UnknownRoute(t *testing.T) {
	router := newRoutedHandler(t, false).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDHeaderSet(t *testing.T) {
	router := newRoutedHandler(t, false).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_TraceIDHeaderEchoed(t *testing.T) {
	router := newRoutedHandler(t, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "caller-supplied-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied-id", rec.Header().Get(traceIDHeader))
}

func TestStatusFromError_Defaults(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
	assert.Equal(t, http.StatusServiceUnavailable, statusFromError(service.ErrOAuthNotConfigured))
	assert.Equal(t, http.StatusNotFound, statusFromError(service.ErrTestUserNotConfigured))
	assert.Equal(t, http.StatusUnauthorized, statusFromError(service.ErrRefreshTokenInvalid))
}

func TestSessionMeta_SplitsHostPort(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.10:54321"
	req.Header.Set("User-Agent", "curl/8.0")

	meta := sessionMeta(req)

	assert.Equal(t, models.SessionMeta{IP: "203.0.113.10", UserAgent: "curl/8.0"}, meta)
}
