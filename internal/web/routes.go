package web

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/units", s.handleUnits)
	r.Get("/units/{id}", s.handleUnit)
	r.Get("/catalogues", s.handleCatalogues)
	r.Get("/catalogues/{id}", s.handleCatalogue)
	r.Get("/factions", s.handleFactions)
	r.Get("/factions/{name}", s.handleCategory)
	r.Get("/factions/{name}/units", s.handleFactionUnits)
	r.Get("/search", s.handleSearch)

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}).Handler)
		r.Get("/factions/{category}", s.handleAPICategory)
	})

	r.NotFound(s.handleNotFound)

	return r
}
