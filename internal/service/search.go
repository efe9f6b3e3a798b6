package service

import (
	"context"
	"strings"

	"grimoire/browser/internal/domain"
)

// Search runs a full-text search. A blank query returns no results without
// calling the API.
func (s *Service) Search(ctx context.Context, query string, limit int) (*domain.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &domain.SearchResults{}, nil
	}
	return s.client.Search(ctx, query, limit)
}
