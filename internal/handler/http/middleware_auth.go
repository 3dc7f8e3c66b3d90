package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/utils"
)

// requireAuth validates the Authorization bearer token and stores the
// authenticated user ID in the request context under utils.UserIDCtxKey.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawToken, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, "missing or malformed bearer token", http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseAccessToken(r.Context(), rawToken)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("access token rejected")
			writeError(w, "invalid access token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
