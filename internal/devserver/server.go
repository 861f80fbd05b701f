package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/danmu-client/internal/config"
	"github.com/MKhiriev/danmu-client/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server is the development HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer builds the server for cfg. Nothing listens until [Server.Run].
func NewServer(cfg *config.DevServerConfig, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating dev server...")

	h, err := NewHandler(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           h.Init(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Run listens on the configured address and blocks until SIGINT, SIGTERM,
// SIGQUIT or cancellation of ctx, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is [Server.Run] on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching dev server")
		serveErr <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("dev server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("dev server shutdown: %w", err)
	}

	s.logger.Info().Msg("dev server shut down gracefully")
	return nil
}
