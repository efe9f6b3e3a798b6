package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"grimoire/browser/internal/client"
	"grimoire/browser/internal/domain"
	"grimoire/browser/internal/service"
	"grimoire/browser/internal/view"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type homeData struct {
	GameSystem view.Resource[*domain.GameSystem]
}

type unitsData struct {
	Action  string
	Search  string
	Faction string
	Scoped  bool
	Units   view.Resource[[]domain.UnitSummary]
}

type unitData struct {
	Unit view.Resource[*domain.Unit]
}

type cataloguesData struct {
	Catalogues view.Resource[[]domain.Catalogue]
}

type catalogueData struct {
	Catalogue view.Resource[*domain.CatalogueDetail]
}

type factionsData struct {
	Categories []domain.Category
}

type categoryData struct {
	Name        string
	Description string
	Factions    view.Resource[[]domain.FactionEntry]
}

type searchData struct {
	Query   string
	Results view.Resource[*domain.SearchResults]
	Recent  []string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	// The game system needs no shaping, so it is read straight from the client.
	gameSystem := view.Load(r.Context(), "", s.service.Client().GetGameSystem)
	if gameSystem.IsFailed() {
		log.Debugf("Game system unavailable: %s", gameSystem.Message)
	}

	s.render(w, r, http.StatusOK, "home", "Grimoire", homeData{GameSystem: gameSystem})
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	faction := r.URL.Query().Get("faction")

	units := view.Load(r.Context(), "Failed to load units", func(ctx context.Context) ([]domain.UnitSummary, error) {
		return s.service.Units(ctx, faction, search)
	})
	logFailure("units", units.Err)

	title := "Units"
	if faction != "" {
		title = faction + " Units"
	}
	s.render(w, r, pageStatus(units.Err), "units", title, unitsData{
		Action:  "/units",
		Search:  search,
		Faction: faction,
		Units:   units,
	})
}

func (s *Server) handleFactionUnits(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")
	search := r.URL.Query().Get("search")

	units := view.Load(r.Context(), "Failed to load units", func(ctx context.Context) ([]domain.UnitSummary, error) {
		return s.service.FactionUnits(ctx, name, search)
	})
	logFailure("faction units", units.Err)

	s.render(w, r, pageStatus(units.Err), "units", name+" Units", unitsData{
		Action:  "/factions/" + url.PathEscape(name) + "/units",
		Search:  search,
		Faction: name,
		Scoped:  true,
		Units:   units,
	})
}

func (s *Server) handleUnit(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	unit := view.Load(r.Context(), "Failed to load unit", func(ctx context.Context) (*domain.Unit, error) {
		return s.service.UnitDetail(ctx, id)
	})
	logFailure("unit", unit.Err)

	title := "Unit"
	if unit.IsReady() {
		title = unit.Data.Name
	}
	s.render(w, r, pageStatus(unit.Err), "unit", title, unitData{Unit: unit})
}

func (s *Server) handleCatalogues(w http.ResponseWriter, r *http.Request) {
	catalogues := view.Load(r.Context(), "Failed to load catalogues", s.service.Client().ListCatalogues)
	logFailure("catalogues", catalogues.Err)

	s.render(w, r, pageStatus(catalogues.Err), "catalogues", "Catalogues", cataloguesData{Catalogues: catalogues})
}

func (s *Server) handleCatalogue(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	catalogue := view.Load(r.Context(), "Failed to load catalogue", func(ctx context.Context) (*domain.CatalogueDetail, error) {
		return s.service.CatalogueDetail(ctx, id)
	})
	logFailure("catalogue", catalogue.Err)

	title := "Catalogue"
	if catalogue.IsReady() {
		title = catalogue.Data.Name
	}
	s.render(w, r, pageStatus(catalogue.Err), "catalogue", title, catalogueData{Catalogue: catalogue})
}

func (s *Server) handleFactions(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "factions", "Factions", factionsData{Categories: domain.Categories})
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	token := pathParam(r, "name")

	factions := view.Load(r.Context(), "Failed to load factions", func(ctx context.Context) ([]domain.FactionEntry, error) {
		return s.service.CategoryFactions(ctx, token)
	})
	logFailure("category factions", factions.Err)

	data := categoryData{
		Name:     domain.Capitalize(token),
		Factions: factions,
	}
	if category, ok := domain.ParseCategory(token); ok {
		data.Description = category.Description()
	}

	s.render(w, r, pageStatus(factions.Err), "category", data.Name+" Factions", data)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	data := searchData{Query: query}
	if query != "" {
		data.Results = view.Load(ctx, "Search failed", func(ctx context.Context) (*domain.SearchResults, error) {
			return s.service.Search(ctx, query, s.searchLimit)
		})
		logFailure("search", data.Results.Err)

		if err := s.history.Record(ctx, query); err != nil {
			log.Warnf("⚠️ Failed to record search history: %v", err)
		}
	}

	recent, err := s.history.Recent(ctx)
	if err != nil {
		log.Warnf("⚠️ Failed to read search history: %v", err)
	}
	data.Recent = recent

	s.render(w, r, pageStatus(data.Results.Err), "search", "Search", data)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound", "Not Found", nil)
}

// pathParam returns a decoded URL parameter. chi matches on RawPath when the
// request carries one, and only then is the segment still escaped.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

// pageStatus maps a page-level failure to a status code. Upstream failures
// still serve the page with the error inline.
func pageStatus(err error) int {
	var apiErr *client.APIError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, service.ErrInvalidCategory):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrFactionNotFound):
		return http.StatusNotFound
	case errors.As(err, &apiErr) && apiErr.NotFound():
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

func logFailure(what string, err error) {
	if err != nil {
		log.Errorf("❌ Failed to load %s: %v", what, err)
	}
}
