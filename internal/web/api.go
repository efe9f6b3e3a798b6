package web

import (
	"errors"
	"net/http"

	"grimoire/browser/internal/domain"
	"grimoire/browser/internal/service"

	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"
)

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// handleAPICategory serves the derived leaf factions of a category as JSON.
func (s *Server) handleAPICategory(w http.ResponseWriter, r *http.Request) {
	token := pathParam(r, "category")

	entries, err := s.service.CategoryFactions(r.Context(), token)
	if err != nil {
		status, code := apiStatus(err)
		log.Warnf("⚠️ API category %q failed: %v", token, err)

		render.Status(r, status)
		render.JSON(w, r, errorResponse{Error: code, Message: err.Error()})
		return
	}

	if entries == nil {
		entries = []domain.FactionEntry{}
	}
	render.JSON(w, r, dataResponse{Data: entries})
}

func apiStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidCategory):
		return http.StatusBadRequest, "invalid_category"
	case errors.Is(err, service.ErrFactionNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusBadGateway, "upstream_error"
	}
}
