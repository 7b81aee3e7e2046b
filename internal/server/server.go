// Package server serves posters over HTTP.
//
// Every request builds its options from the query string on top of a base
// set of options, so the same seed and parameters always return the same
// bytes.
//
//	GET /healthz
//	GET /palettes
//	GET /poster.svg?seed=7&style=Monochrome
//	GET /poster.png?layers=12&palette=cool-blues&seed=random
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/blobposter/pkg/pipeline"
)

// Server renders posters for HTTP clients.
type Server struct {
	logger *log.Logger
	base   pipeline.Options
}

// Option configures a Server.
type Option func(*Server)

// WithBaseOptions sets the options query parameters are applied on top of.
func WithBaseOptions(opts pipeline.Options) Option {
	return func(s *Server) {
		s.base = opts
	}
}

// New creates a server. A nil logger uses log.Default().
func New(logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger, base: pipeline.DefaultOptions()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/palettes", s.handlePalettes)
	r.Get("/poster.svg", s.handlePoster(pipeline.FormatSVG))
	r.Get("/poster.png", s.handlePoster(pipeline.FormatPNG))
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
