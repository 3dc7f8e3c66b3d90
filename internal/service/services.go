package service

import (
	"github.com/MKhiriev/go-deploy-gate/internal/config"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/store"
)

type Services struct {
	AuthService    AuthService
	OAuthService   OAuthService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, db ConnectivityChecker, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, repositories.RefreshTokenRepository, cfg.App, logger),
		OAuthService:   NewOAuthService(cfg.OAuth, logger),
		HealthService:  NewHealthService(db, logger),
		AppInfoService: appInfoService,
	}, nil
}
