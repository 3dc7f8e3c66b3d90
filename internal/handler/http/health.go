package http

import (
	"net/http"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/utils"
)

// health answers the liveness question only: responding at all means the
// process is up. The database is deliberately not consulted here.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.HealthService.CheckLiveness(r.Context()), http.StatusOK)
}

// healthDB probes database connectivity on a dedicated short-lived
// connection. 200 when the probe succeeds, 503 with the failure details
// otherwise, so a database outage is distinguishable from the app being
// down (which would produce no response at all).
func (h *Handler) healthDB(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp, err := h.services.HealthService.CheckDatabase(r.Context())
	if err != nil {
		log.Err(err).Msg("database health check failed")
		utils.WriteJSON(w, resp, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
