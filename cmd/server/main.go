package main

import (
	"context"
	"fmt"

	"showshelf/internal/config"
	"showshelf/internal/handler/http"
	"showshelf/internal/logger"
	"showshelf/internal/metrics"
	"showshelf/internal/server"
	"showshelf/internal/service"
	"showshelf/internal/store"
	"showshelf/internal/tmdb"
	"showshelf/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("showshelf-server")

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
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, log)
	tmdbClient := tmdb.NewClient(cfg.TMDB, log)
	collector := metrics.NewCollector()

	if !tmdbClient.Configured() {
		log.Warn().Msg("TMDB API key is not configured; search requests will be rejected")
	}

	handler := http.NewHandler(services, tmdbClient, db, collector, cfg.Server, log)

	server.NewServer(handler.Init(), cfg.Server, log).RunServer()
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
