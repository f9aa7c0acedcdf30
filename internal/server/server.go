package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"showshelf/internal/config"
	"showshelf/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	server *http.Server

	logger *logger.Logger
}

func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger) *Server {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	return &Server{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      http.TimeoutHandler(router, cfg.RequestTimeout, "request timed out"),
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout + time.Second,
		},
		logger: logger,
	}
}

// RunServer serves requests until a stop signal arrives, then drains
// in-flight connections before returning.
func (s *Server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
			stop()
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown gracefully stops the server, waiting up to shutdownTimeout for
// in-flight requests to finish.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
