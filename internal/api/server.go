package api

import (
	"context"
	"net/http"
	"time"

	"github.com/ignite/recommendations-email-client/internal/config"
)

// Server represents the API server
type Server struct {
	config  config.ServerConfig
	handler http.Handler
	server  *http.Server
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, h *Handlers) *Server {
	opts := RouterOptions{AllowedOrigins: cfg.CORS.AllowedOrigins}
	if cfg.RateLimit.Enabled {
		opts.RequestsPerMinute = cfg.RateLimit.RequestsPerMinute
	}

	return &Server{
		config:  cfg.Server,
		handler: SetupRoutes(h, opts),
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       s.config.ReadTimeout(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.config.WriteTimeout(),
		IdleTimeout:       120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.handler
}
