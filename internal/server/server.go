package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hdbplan/hdbplan/internal/domain"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server ties the HTTP server to its rate limiter and logger.
type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
	logger     *zap.Logger
}

// New assembles the API server from its configuration and the active
// policy.
func New(cfg *Config, logger *zap.Logger, policy *domain.Policy) *Server {
	limiter := NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	cache := NewCache(cfg.Cache)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.ListenAddress,
			Handler:      NewHandler(logger, policy, cache, limiter),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		limiter: limiter,
		logger:  logger,
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests
// before returning.
func (s *Server) Run() error {
	defer s.limiter.Stop()

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening",
			zap.String("op", "server.Run"),
			zap.String("address", s.httpServer.Addr),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		s.logger.Info("shutting down",
			zap.String("op", "server.Run"),
			zap.String("signal", sig.String()),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server exited", zap.String("op", "server.Run"))
	return nil
}
