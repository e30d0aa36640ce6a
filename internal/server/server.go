// Package server provides the HTTP API server for orbitwatch. It exposes
// the reconciled constellation catalog, launch history, aggregate
// statistics, and live launch status as a read-only JSON API.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/orbitwatch/orbitwatch/internal/server/handlers"
	"github.com/orbitwatch/orbitwatch/internal/server/middleware"
	"github.com/orbitwatch/orbitwatch/internal/service"
	"github.com/orbitwatch/orbitwatch/pkg/logging"
)

// Server is the orbitwatch HTTP API server.
type Server struct {
	cfg    Config
	http   *http.Server
	logger *zerolog.Logger
}

// New creates a server wired to the given service.
func New(cfg Config, svc *service.Service, logger *zerolog.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	h := handlers.New(svc, logger)
	router := newRouter(h)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.Logger(logger),
	}
	if cfg.EnableCORS {
		mws = append(mws, middleware.CORS(cfg.CORS))
	}
	if cfg.EnableRateLimit {
		mws = append(mws, middleware.RateLimit(cfg.RateLimit))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return &Server{
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:         addr,
			Handler:      middleware.Chain(router, mws...),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.http.Addr
}

// Start begins serving requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting API server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// up to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down API server")
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
