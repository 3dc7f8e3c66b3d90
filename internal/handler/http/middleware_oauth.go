package http

import (
	"net/http"
)

// requireOAuth guards the Google routes. While Google credentials are absent
// the routes stay mounted but answer 503, so a misconfigured deployment is
// visible instead of crashing at startup.
func (h *Handler) requireOAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.OAuthService.Enabled() {
			writeError(w, "google oauth is not configured", http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}
