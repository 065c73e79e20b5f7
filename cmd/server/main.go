package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-life-records/internal/adapter"
	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/handler"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/server"
	"github.com/MKhiriev/go-life-records/internal/service"
	"github.com/MKhiriev/go-life-records/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-life-records").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.Server.Mode)
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	identityProvider, err := adapter.NewHTTPIdentityProvider(cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity provider")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, identityProvider, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
