package http

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/utils"
	"github.com/MKhiriev/go-deploy-gate/models"
)

// refreshTokenCookie is the HttpOnly cookie carrying the refresh token.
// The token never appears in a response body.
const refreshTokenCookie = "deploygate_rtok"

const bearerTokenType = "bearer"

// testUserLoginRequest is the body of the dev-only password login.
type testUserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// googleIDTokenRequest is the body of the POST id_token flow.
type googleIDTokenRequest struct {
	IDToken string `json:"id_token"`
}

// googleAccessTokenRequest is the body of the POST access-token flow.
type googleAccessTokenRequest struct {
	AccessToken string `json:"access_token"`
}

// sessionMeta extracts the client address and user agent recorded alongside
// issued refresh tokens.
func sessionMeta(r *http.Request) models.SessionMeta {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}
	return models.SessionMeta{IP: ip, UserAgent: r.UserAgent()}
}

// setRefreshCookie installs the refresh token as an HttpOnly cookie scoped
// to the whole site.
func (h *Handler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearRefreshCookie expires the refresh cookie.
func (h *Handler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// writeAuthResponse sends the standard sign-in payload: access token in the
// body, refresh token in the cookie.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, issued models.IssuedTokens) {
	h.setRefreshCookie(w, issued.Refresh.SignedString)
	utils.WriteJSON(w, models.AuthResponse{
		AccessToken: issued.Access.SignedString,
		TokenType:   bearerTokenType,
		ExpiresIn:   issued.ExpiresIn,
		User:        issued.User,
	}, http.StatusOK)
}

// loginTestUser handles POST /auth/token — the dev-only password login
// against the configured test user.
func (h *Handler) loginTestUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req testUserLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	issued, err := h.services.AuthService.LoginTestUser(ctx, req.Email, req.Password, sessionMeta(r))
	if err != nil {
		log.Err(err).Msg("test user login failed")
		writeMappedError(w, err)
		return
	}

	h.writeAuthResponse(w, issued)
}

// refresh handles POST /auth/refresh. The presented refresh token comes from
// the HttpOnly cookie; a successful rotation answers with a fresh access
// token and replaces the cookie.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil || cookie.Value == "" {
		writeError(w, "no refresh token", http.StatusUnauthorized)
		return
	}

	issued, err := h.services.AuthService.Refresh(ctx, cookie.Value, sessionMeta(r))
	if err != nil {
		log.Err(err).Msg("refresh rotation failed")
		h.clearRefreshCookie(w)
		writeMappedError(w, err)
		return
	}

	h.setRefreshCookie(w, issued.Refresh.SignedString)
	utils.WriteJSON(w, models.RefreshResponse{
		AccessToken: issued.Access.SignedString,
		TokenType:   bearerTokenType,
		ExpiresIn:   issued.ExpiresIn,
		UserID:      issued.Refresh.UserID,
	}, http.StatusOK)
}

// logout handles GET /auth/logout: revokes every active session of the
// cookie's owner and clears the cookie. Idempotent — logging out without a
// valid cookie still succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		if err := h.services.AuthService.Logout(ctx, cookie.Value); err != nil {
			log.Err(err).Msg("logout failed")
			writeMappedError(w, err)
			return
		}
	}

	h.clearRefreshCookie(w)
	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

// loginGoogle handles GET /auth/login/google: redirects the browser to the
// Google consent screen.
func (h *Handler) loginGoogle(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	http.Redirect(w, r, h.services.OAuthService.AuthURL(state), http.StatusTemporaryRedirect)
}

// googleCallback handles GET /auth/callback: exchanges the authorization
// code, resolves the Google identity to a local account, and signs the user in.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	googleUser, err := h.services.OAuthService.ExchangeCode(ctx, code)
	if err != nil {
		log.Err(err).Msg("google code exchange failed")
		writeMappedError(w, err)
		return
	}

	h.signInGoogleUser(w, r, googleUser)
}

// googleIDToken handles POST /auth/google: verifies a client-obtained
// id_token and signs the user in.
func (h *Handler) googleIDToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req googleIDTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	googleUser, err := h.services.OAuthService.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		log.Err(err).Msg("google id_token verification failed")
		writeMappedError(w, err)
		return
	}

	h.signInGoogleUser(w, r, googleUser)
}

// googleAccessToken handles POST /auth/google/access: resolves a Google
// access token to an identity and signs the user in.
func (h *Handler) googleAccessToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req googleAccessTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	googleUser, err := h.services.OAuthService.VerifyAccessToken(ctx, req.AccessToken)
	if err != nil {
		log.Err(err).Msg("google access token verification failed")
		writeMappedError(w, err)
		return
	}

	h.signInGoogleUser(w, r, googleUser)
}

// signInGoogleUser is the shared tail of every Google flow: get-or-create
// the account and issue the token pair.
func (h *Handler) signInGoogleUser(w http.ResponseWriter, r *http.Request, googleUser models.GoogleUser) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.AuthService.GetOrCreateUser(ctx, googleUser)
	if err != nil {
		log.Err(err).Msg("resolving google user to an account failed")
		writeMappedError(w, err)
		return
	}

	issued, err := h.services.AuthService.IssueTokens(ctx, user, sessionMeta(r))
	if err != nil {
		log.Err(err).Msg("issuing tokens failed")
		writeMappedError(w, err)
		return
	}

	h.writeAuthResponse(w, issued)
}
