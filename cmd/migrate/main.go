// Command migrate applies all pending schema migrations and exits.
//
// Exit code 0 means the schema is at head; any failure (config, connection,
// or migration error) exits non-zero so CI/CD steps can gate on it.
package main

import (
	"context"

	"github.com/MKhiriev/go-deploy-gate/internal/config"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/store"
)

func main() {
	log := logger.NewLogger("deploy-gate-migrate")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing database")
		}
	}()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	log.Info().Msg("migrations applied, schema is at head")
}
