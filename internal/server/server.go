package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/handler"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server for the task API router.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, ErrNoHTTPAddress
	}
	if handlers == nil || handlers.HTTP == nil {
		return nil, ErrNoHTTPHandler
	}

	logger.Info().Str("address", cfg.HTTPAddress).Str("base_path", cfg.BasePath).Msg("creating task API server")

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunUntilSignal() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil {
		return ErrNoHTTPHandler
	}

	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err := <-serveErr:
		// the listener failed before any stop signal
		return err
	}

	s.httpServer.shutdown()

	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
