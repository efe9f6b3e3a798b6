// Package web serves the Grimoire browser: server-rendered pages over the
// Grimoire API plus a small JSON surface.
package web

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"grimoire/browser/internal/config"
	"grimoire/browser/internal/service"
	"grimoire/browser/internal/state"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Server is the HTTP front end.
type Server struct {
	cfg         config.ServerConfig
	service     *service.Service
	history     state.SearchHistory
	searchLimit int
	pages       map[string]*template.Template
	router      chi.Router
}

// NewServer parses the embedded templates and builds the router.
func NewServer(cfg *config.Config, svc *service.Service, history state.SearchHistory) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	searchLimit := cfg.Search.Limit
	if searchLimit <= 0 {
		searchLimit = 50
	}

	s := &Server{
		cfg:         cfg.Server,
		service:     svc,
		history:     history,
		searchLimit: searchLimit,
		pages:       pages,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) httpServer(ctx context.Context) *http.Server {
	return &http.Server{
		Addr:    s.cfg.Address(),
		Handler: s.router,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
	}
}

// Serve listens on the configured address and blocks until ctx is cancelled,
// then shuts the server down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	addr := s.cfg.Address()

	g, gctx := errgroup.WithContext(ctx)

	srv := s.httpServer(gctx)

	g.Go(func() error {
		log.Infof("🚀 Serving Grimoire browser on http://%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		log.Info("🛑 Shutting down HTTP server...")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
