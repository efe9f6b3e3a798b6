package service

import (
	"context"
	"testing"

	"grimoire/browser/internal/client/clienttest"
	"grimoire/browser/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	want := &domain.SearchResults{
		Query:   "lord",
		Results: []domain.SearchResult{{Type: "unit", ID: "u1", Name: "Overlord"}},
		Total:   1,
	}
	mockClient := new(clienttest.MockClient)
	mockClient.On("Search", mock.Anything, "lord", 50).Return(want, nil)

	got, err := NewService(mockClient, 0).Search(context.Background(), "  lord ", 50)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearch_BlankQuery(t *testing.T) {
	mockClient := new(clienttest.MockClient)

	got, err := NewService(mockClient, 0).Search(context.Background(), "   ", 50)
	require.NoError(t, err)
	assert.Empty(t, got.Results)
	mockClient.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}
