package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/handler"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
)

// ErrNotConfigured is returned by NewServer without a listen address or an
// HTTP handler.
var ErrNotConfigured = errors.New("sync server needs a listen address and an HTTP handler")

type server struct {
	http   *httpServer
	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, ErrNotConfigured
	}

	logger.Debug().Str("address", cfg.HTTPAddress).Msg("creating sync server")
	return &server{
		http:   newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger: logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.http.RunServer()
	}()

	s.logger.Info().Str("address", s.http.server.Addr).Msg("sync server is listening")

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received, draining requests")
		s.Shutdown()
		<-stopped
	case <-stopped:
		// listener failed, already logged by httpServer
	}
	s.logger.Info().Msg("sync server stopped")
}

func (s *server) Shutdown() {
	s.http.Shutdown()
}
