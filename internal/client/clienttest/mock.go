// Package clienttest provides a testify mock of client.GrimoireClient.
package clienttest

import (
	"context"

	"grimoire/browser/internal/client"
	"grimoire/browser/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

var _ client.GrimoireClient = (*MockClient)(nil)

func (m *MockClient) GetGameSystem(ctx context.Context) (*domain.GameSystem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameSystem), args.Error(1)
}

func (m *MockClient) ListCatalogues(ctx context.Context) ([]domain.Catalogue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Catalogue), args.Error(1)
}

func (m *MockClient) GetCatalogue(ctx context.Context, id string) (*domain.CatalogueDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogueDetail), args.Error(1)
}

func (m *MockClient) GetCatalogueUnits(ctx context.Context, id string) ([]domain.UnitSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnitSummary), args.Error(1)
}

func (m *MockClient) ListUnits(ctx context.Context, filter client.UnitFilter) (*domain.UnitPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UnitPage), args.Error(1)
}

func (m *MockClient) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockClient) GetUnitWeapons(ctx context.Context, id string) (*domain.WeaponSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeaponSet), args.Error(1)
}

func (m *MockClient) ListFactions(ctx context.Context) ([]domain.Faction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Faction), args.Error(1)
}

func (m *MockClient) GetFactionUnits(ctx context.Context, name string) ([]domain.UnitSummary, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnitSummary), args.Error(1)
}

func (m *MockClient) Search(ctx context.Context, query string, limit int) (*domain.SearchResults, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResults), args.Error(1)
}

// Units builds n placeholder unit summaries.
func Units(n int) []domain.UnitSummary {
	units := make([]domain.UnitSummary, n)
	for i := range units {
		units[i] = domain.UnitSummary{ID: string(rune('a' + i)), Name: string(rune('A' + i))}
	}
	return units
}
