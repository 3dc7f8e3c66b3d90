package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// dbStatusRefreshInterval is how often the database-backed serving status is
// re-probed for gRPC health watchers.
const dbStatusRefreshInterval = 15 * time.Second

// dbServiceName is the per-service health name for the database probe. The
// empty name ("") reports overall process liveness, mirroring GET /health.
const dbServiceName = "db"

// Handler is the root gRPC transport handler. It exposes the standard
// grpc_health_v1 service: the empty service name answers liveness, the "db"
// service name answers database connectivity, refreshed on a ticker.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health is the canonical grpc-go health service implementation.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	// Liveness mirrors GET /health: serving as soon as the process serves.
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// The db status starts unknown until the first probe completes.
	h.health.SetServingStatus(dbServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register mounts the health service on the given gRPC server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// WatchDatabase refreshes the "db" serving status on a ticker until ctx is
// cancelled. Run it on its own goroutine after the server starts.
func (h *Handler) WatchDatabase(ctx context.Context) {
	h.refreshDBStatus(ctx)

	ticker := time.NewTicker(dbStatusRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.refreshDBStatus(ctx)
		}
	}
}

func (h *Handler) refreshDBStatus(ctx context.Context) {
	if _, err := h.services.HealthService.CheckDatabase(ctx); err != nil {
		h.logger.Err(err).Msg("grpc db health probe failed")
		h.health.SetServingStatus(dbServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.health.SetServingStatus(dbServiceName, healthpb.HealthCheckResponse_SERVING)
}
