package http

import (
	"context"
	"encoding/json"

	"showshelf/internal/config"
	"showshelf/internal/logger"
	"showshelf/internal/metrics"
	"showshelf/internal/service"
)

// SearchProvider is the metadata search gateway used by the TMDB proxy
// endpoint. Satisfied by *tmdb.Client.
type SearchProvider interface {
	Configured() bool
	Search(ctx context.Context, query, mediaType string) (json.RawMessage, error)
}

// Pinger reports backend storage liveness. Satisfied by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	search   SearchProvider
	db       Pinger
	metrics  *metrics.Collector
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, search SearchProvider, db Pinger, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		search:   search,
		db:       db,
		metrics:  collector,
		cfg:      cfg,
		logger:   logger,
	}
}
