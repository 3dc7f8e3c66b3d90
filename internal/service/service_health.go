package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/models"
)

// dbProbeTimeout bounds a single database connectivity probe so a hung
// database cannot hang the health endpoint.
const dbProbeTimeout = 5 * time.Second

// healthService answers the two health questions the platform asks:
// "is the process alive" and "can it reach its database". The two are
// deliberately independent — a database outage must not make the liveness
// endpoint unhealthy.
type healthService struct {
	db ConnectivityChecker

	logger *logger.Logger
}

func NewHealthService(db ConnectivityChecker, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

// CheckLiveness reports the process as healthy unconditionally: if this code
// runs, the process is serving requests. It never touches the database.
func (s *healthService) CheckLiveness(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{OK: true, Status: models.HealthStatusHealthy}
}

// CheckDatabase probes database connectivity over a dedicated short-lived
// connection. On failure the returned response carries the probe error text
// in Details so operators can distinguish "db unreachable" from other
// failure modes; the error itself is returned for logging and status
// mapping.
func (s *healthService) CheckDatabase(ctx context.Context) (models.HealthResponse, error) {
	probeCtx, cancel := context.WithTimeout(ctx, dbProbeTimeout)
	defer cancel()

	if err := s.db.CheckConnectivity(probeCtx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.CheckDatabase").Msg("database connectivity probe failed")
		return models.HealthResponse{
			OK:      false,
			Status:  models.HealthStatusUnhealthy,
			Details: "database unreachable: " + err.Error(),
		}, err
	}

	return models.HealthResponse{OK: true, Status: models.HealthStatusHealthy}, nil
}
