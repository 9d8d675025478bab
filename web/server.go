// ABOUTME: HTTP surface for the selection engine and lists: health, help page, and JSON roll endpoints.
// ABOUTME: A chi router with request-id, recoverer, and zap request logging middleware.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/2389-research/vabot/agents"
	"github.com/2389-research/vabot/roll"
)

// ListSource yields a fresh string list on every call.
type ListSource interface {
	Load(logger *zap.Logger) []string
}

// Server serves the HTTP surface.
type Server struct {
	router   chi.Router
	addr     string
	selector *agents.Selector
	maps     ListSource
	rand     roll.Rand
	logger   *zap.Logger
}

// ServerConfig holds the configuration for the web server.
type ServerConfig struct {
	Addr     string // listen address (default: "127.0.0.1:8080")
	Selector *agents.Selector
	Maps     ListSource
	Rand     roll.Rand
	Logger   *zap.Logger
}

// NewServer creates a Server and sets up routing.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Selector == nil {
		return nil, errors.New("selector must not be nil")
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8080"
	}
	if cfg.Rand == nil {
		cfg.Rand = roll.Global
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	s := &Server{
		addr:     cfg.Addr,
		selector: cfg.Selector,
		maps:     cfg.Maps,
		rand:     cfg.Rand,
		logger:   cfg.Logger,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP implements http.Handler by delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully with a bounded wait for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("web server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	<-errCh
	s.logger.Info("web server stopped")
	return nil
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/agents", s.handleAgents)
		r.Get("/agents/ban", s.handleBan)
		r.Get("/maps/random", s.handleRandomMap)
	})

	return r
}
