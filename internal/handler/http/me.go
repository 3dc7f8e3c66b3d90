package http

import (
	"net/http"

	"github.com/MKhiriev/go-deploy-gate/internal/utils"
	"github.com/MKhiriev/go-deploy-gate/models"
)

// me answers with the user ID of the authenticated caller. The requireAuth
// middleware has already validated the access token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, "invalid access token", http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, models.MeResponse{UserID: userID}, http.StatusOK)
}
