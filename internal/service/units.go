package service

import (
	"context"
	"strings"

	"grimoire/browser/internal/client"
	"grimoire/browser/internal/domain"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Units lists units through the generic /units endpoint.
func (s *Service) Units(ctx context.Context, faction, search string) ([]domain.UnitSummary, error) {
	page, err := s.client.ListUnits(ctx, client.UnitFilter{
		Faction: faction,
		Search:  search,
		Limit:   s.unitLimit,
	})
	if err != nil {
		return nil, err
	}
	return page.Units, nil
}

// FactionUnits lists the units of one leaf faction. The faction endpoint is
// tried first; if it fails the generic list filtered by faction is used
// instead and the first failure is dropped. search narrows the result by
// case-insensitive substring match on the unit name.
func (s *Service) FactionUnits(ctx context.Context, name, search string) ([]domain.UnitSummary, error) {
	units, err := s.client.GetFactionUnits(ctx, name)
	if err != nil {
		log.Debugf("🔄 Faction endpoint failed for %s, falling back to unit list: %v", name, err)

		page, err := s.client.ListUnits(ctx, client.UnitFilter{
			Faction: name,
			Search:  search,
			Limit:   s.unitLimit,
		})
		if err != nil {
			return nil, err
		}
		units = page.Units
	}

	return FilterUnits(units, search), nil
}

// FilterUnits keeps the units whose name contains search, ignoring case.
func FilterUnits(units []domain.UnitSummary, search string) []domain.UnitSummary {
	search = strings.TrimSpace(search)
	if search == "" {
		return units
	}

	needle := strings.ToLower(search)
	filtered := make([]domain.UnitSummary, 0, len(units))
	for _, unit := range units {
		if strings.Contains(strings.ToLower(unit.Name), needle) {
			filtered = append(filtered, unit)
		}
	}
	return filtered
}

// UnitDetail fetches a unit. When the unit record carries no weapons they are
// requested separately; a failure there leaves the unit without weapons.
func (s *Service) UnitDetail(ctx context.Context, id string) (*domain.Unit, error) {
	unit, err := s.client.GetUnit(ctx, id)
	if err != nil {
		return nil, err
	}

	if unit.Weapons.Empty() {
		weapons, err := s.client.GetUnitWeapons(ctx, id)
		if err != nil {
			log.Debugf("No weapons for unit %s: %v", id, err)
		} else if !weapons.Empty() {
			unit.Weapons = weapons
		}
	}

	return unit, nil
}

// CatalogueDetail fetches a catalogue and its unit list concurrently.
func (s *Service) CatalogueDetail(ctx context.Context, id string) (*domain.CatalogueDetail, error) {
	var (
		detail *domain.CatalogueDetail
		units  []domain.UnitSummary
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		detail, err = s.client.GetCatalogue(gctx, id)
		return err
	})

	g.Go(func() error {
		var err error
		units, err = s.client.GetCatalogueUnits(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail.Units = units
	return detail, nil
}
