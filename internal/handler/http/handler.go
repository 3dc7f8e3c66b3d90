package http

import (
	"github.com/MKhiriev/go-deploy-gate/internal/config"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookies controls the Secure attribute on the refresh-token
	// cookie. False only in local development over plain http.
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		secureCookies: cfg.SecureCookies(),
		logger:        logger,
	}
}
