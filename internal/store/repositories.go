package store

import (
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
)

// Repositories bundles every repository backed by the shared database
// connection. Constructed once at startup and handed to the service layer.
type Repositories struct {
	UserRepository         UserRepository
	RefreshTokenRepository RefreshTokenRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db, log),
		RefreshTokenRepository: NewRefreshTokenRepository(db, log),
	}
}
