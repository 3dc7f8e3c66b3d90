package handler

import (
	"testing"

	"github.com/MKhiriev/go-deploy-gate/internal/config"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPOnly(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: "0.0.0.0:8000"},
	}

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
	assert.Nil(t, handlers.GRPC)
}

func TestNewHandlers_HTTPAndGRPC(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{
			HTTPAddress: "0.0.0.0:8000",
			GRPCAddress: "0.0.0.0:9090",
		},
	}

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
	assert.NotNil(t, handlers.GRPC)
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, handlers)
}
