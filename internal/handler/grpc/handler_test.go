package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/service"
	"github.com/MKhiriev/go-deploy-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type mockHealthService struct {
	databaseErr error
}

func (m *mockHealthService) CheckLiveness(_ context.Context) models.HealthResponse {
	return models.HealthResponse{OK: true, Status: models.HealthStatusHealthy}
}

func (m *mockHealthService) CheckDatabase(_ context.Context) (models.HealthResponse, error) {
	if m.databaseErr != nil {
		return models.HealthResponse{OK: false, Status: models.HealthStatusUnhealthy}, m.databaseErr
	}
	return models.HealthResponse{OK: true, Status: models.HealthStatusHealthy}, nil
}

func newTestGRPCHandler(t *testing.T, databaseErr error) *Handler {
	t.Helper()
	return NewHandler(
		&service.Services{HealthService: &mockHealthService{databaseErr: databaseErr}},
		logger.Nop(),
	)
}

func checkStatus(t *testing.T, h *Handler, svcName string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: svcName})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_LivenessServingImmediately(t *testing.T) {
	h := newTestGRPCHandler(t, nil)

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
}

func TestNewHandler_DBStatusStartsNotServing(t *testing.T) {
	h := newTestGRPCHandler(t, nil)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, dbServiceName))
}

func TestRefreshDBStatus_HealthyDatabase(t *testing.T) {
	h := newTestGRPCHandler(t, nil)

	h.refreshDBStatus(context.Background())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, dbServiceName))
}

func TestRefreshDBStatus_DatabaseOutage(t *testing.T) {
	h := newTestGRPCHandler(t, nil)

	// healthy first, then the database goes away
	h.refreshDBStatus(context.Background())
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, dbServiceName))

	h.services = &service.Services{HealthService: &mockHealthService{databaseErr: errors.New("connection refused")}}
	h.refreshDBStatus(context.Background())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, dbServiceName))

	// liveness stays serving through the outage
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
}
