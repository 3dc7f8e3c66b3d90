package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deploy-gate/internal/config"
	"github.com/MKhiriev/go-deploy-gate/internal/handler"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/pipeline"
	"github.com/MKhiriev/go-deploy-gate/internal/server"
	"github.com/MKhiriev/go-deploy-gate/internal/service"
	"github.com/MKhiriev/go-deploy-gate/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("deploy-gate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing database")
		}
	}()

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, db, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	// Server binds its listeners at construction. Keeping construction inside
	// the start-server stage makes a failed bind abort the deployment the
	// same way a failed migration does.
	var srv server.Server

	gate := pipeline.New(log,
		pipeline.Action{
			Name:    "apply-migrations",
			Advance: pipeline.StageMigrated,
			Run: func(ctx context.Context) error {
				return db.Migrate()
			},
		},
		pipeline.Action{
			Name:    "start-server",
			Advance: pipeline.StageServing,
			Run: func(ctx context.Context) error {
				srv, err = server.NewServer(handlers, cfg.Server, log)
				return err
			},
		},
	)

	if err = gate.Run(ctx); err != nil {
		log.Fatal().Err(err).Str("stage", gate.Stage().String()).Msg("deployment gate failed")
	}

	log.Info().Str("stage", gate.Stage().String()).Msg("deployment gate passed")

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
