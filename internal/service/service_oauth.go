package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-deploy-gate/internal/config"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/utils"
	"github.com/MKhiriev/go-deploy-gate/models"
)

// Google OAuth endpoints. Unexported fields on the service so tests can
// point them at an httptest server.
const (
	googleAuthURL      = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL     = "https://oauth2.googleapis.com/token"
	googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	googleUserInfoURL  = "https://openidconnect.googleapis.com/v1/userinfo"
)

// oauthService verifies Google identities over outbound HTTP.
//
// Three verification paths exist, mirroring the three ways a client can
// present a Google identity:
//   - an authorization code from the redirect flow (ExchangeCode),
//   - an id_token obtained client-side (VerifyIDToken),
//   - a Google access token (VerifyAccessToken).
type oauthService struct {
	clientID     string
	clientSecret string
	redirectURI  string

	client *utils.HTTPClient

	authURL      string
	tokenURL     string
	tokenInfoURL string
	userInfoURL  string

	logger *logger.Logger
}

// NewOAuthService constructs an OAuthService from the Google credentials in
// cfg. Construction always succeeds; when credentials are absent the service
// reports Enabled() == false and every verification call returns
// ErrOAuthNotConfigured.
func NewOAuthService(cfg config.OAuth, logger *logger.Logger) OAuthService {
	return &oauthService{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURI:  cfg.GoogleRedirectURI,
		client:       utils.NewHTTPClient(),
		authURL:      googleAuthURL,
		tokenURL:     googleTokenURL,
		tokenInfoURL: googleTokenInfoURL,
		userInfoURL:  googleUserInfoURL,
		logger:       logger,
	}
}

// Enabled reports whether Google credentials are configured.
func (o *oauthService) Enabled() bool {
	return o.clientID != "" && o.clientSecret != ""
}

// AuthURL builds the Google consent-screen URL for the redirect flow.
func (o *oauthService) AuthURL(state string) string {
	params := url.Values{}
	params.Set("client_id", o.clientID)
	params.Set("redirect_uri", o.redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	if state != "" {
		params.Set("state", state)
	}
	return o.authURL + "?" + params.Encode()
}

// tokenInfoResponse is the subset of Google's tokeninfo response we consume.
type tokenInfoResponse struct {
	Audience string `json:"aud"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// userInfoResponse is the subset of Google's OpenID userinfo response.
type userInfoResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// codeExchangeResponse is the subset of Google's token endpoint response.
type codeExchangeResponse struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
}

// ExchangeCode exchanges an authorization code from the redirect flow for
// tokens and verifies the returned id_token.
func (o *oauthService) ExchangeCode(ctx context.Context, code string) (models.GoogleUser, error) {
	log := logger.FromContext(ctx)

	if !o.Enabled() {
		return models.GoogleUser{}, ErrOAuthNotConfigured
	}
	if code == "" {
		return models.GoogleUser{}, ErrInvalidDataProvided
	}

	var exchanged codeExchangeResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     o.clientID,
			"client_secret": o.clientSecret,
			"redirect_uri":  o.redirectURI,
			"grant_type":    "authorization_code",
		}).
		SetResult(&exchanged).
		Post(o.tokenURL)
	if err != nil {
		log.Err(err).Str("func", "*oauthService.ExchangeCode").Msg("code exchange request failed")
		return models.GoogleUser{}, fmt.Errorf("%w: %w", ErrOAuthVerificationFailed, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*oauthService.ExchangeCode").Int("status", resp.StatusCode()).Msg("code exchange rejected")
		return models.GoogleUser{}, ErrOAuthVerificationFailed
	}
	if exchanged.IDToken == "" {
		return models.GoogleUser{}, ErrOAuthVerificationFailed
	}

	return o.VerifyIDToken(ctx, exchanged.IDToken)
}

// VerifyIDToken verifies a Google id_token against the tokeninfo endpoint
// and checks that the token was issued for this application (aud claim).
func (o *oauthService) VerifyIDToken(ctx context.Context, idToken string) (models.GoogleUser, error) {
	log := logger.FromContext(ctx)

	if !o.Enabled() {
		return models.GoogleUser{}, ErrOAuthNotConfigured
	}
	if idToken == "" {
		return models.GoogleUser{}, ErrInvalidDataProvided
	}

	var info tokenInfoResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParam("id_token", idToken).
		SetResult(&info).
		Get(o.tokenInfoURL)
	if err != nil {
		log.Err(err).Str("func", "*oauthService.VerifyIDToken").Msg("tokeninfo request failed")
		return models.GoogleUser{}, fmt.Errorf("%w: %w", ErrOAuthVerificationFailed, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*oauthService.VerifyIDToken").Int("status", resp.StatusCode()).Msg("tokeninfo rejected id_token")
		return models.GoogleUser{}, ErrOAuthVerificationFailed
	}

	if info.Audience != o.clientID {
		log.Error().Str("func", "*oauthService.VerifyIDToken").Msg("id_token audience mismatch")
		return models.GoogleUser{}, ErrOAuthVerificationFailed
	}
	if info.Email == "" {
		return models.GoogleUser{}, ErrOAuthVerificationFailed
	}

	return models.GoogleUser{Email: info.Email, Name: info.Name}, nil
}

// VerifyAccessToken resolves a Google access token to a user identity via
// the OpenID userinfo endpoint.
func (o *oauthService) VerifyAccessToken(ctx context.Context, accessToken string) (models.GoogleUser, error) {
	log := logger.FromContext(ctx)

	if !o.Enabled() {
		return models.GoogleUser{}, ErrOAuthNotConfigured
	}
	if accessToken == "" {
		return models.GoogleUser{}, ErrInvalidDataProvided
	}

	var info userInfoResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(o.userInfoURL)
	if err != nil {
		log.Err(err).Str("func", "*oauthService.VerifyAccessToken").Msg("userinfo request failed")
		return models.GoogleUser{}, fmt.Errorf("%w: %w", ErrOAuthVerificationFailed, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*oauthService.VerifyAccessToken").Int("status", resp.StatusCode()).Msg("userinfo rejected access token")
		return models.GoogleUser{}, ErrOAuthVerificationFailed
	}
	if info.Email == "" {
		return models.GoogleUser{}, ErrOAuthVerificationFailed
	}

	return models.GoogleUser{Email: info.Email, Name: info.Name}, nil
}
