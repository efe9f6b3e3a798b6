package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"grimoire/browser/internal/domain"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrFactionNotFound = errors.New("no faction found for category")
)

// leafSeparator joins the segments of a compound catalogue name.
const leafSeparator = " - "

// CategoryFactions derives the leaf factions under one top-level category and
// counts their units. The token is validated case-insensitively but the
// faction is looked up by the token with its first letter upper-cased. A failed count look-up yields 0 for that faction only.
func (s *Service) CategoryFactions(ctx context.Context, token string) ([]domain.FactionEntry, error) {
	if _, ok := domain.ParseCategory(token); !ok {
		return nil, fmt.Errorf("%w: %s. valid categories are: %s",
			ErrInvalidCategory, token, strings.Join(domain.CategoryNames(), ", "))
	}

	factions, err := s.client.ListFactions(ctx)
	if err != nil {
		return nil, err
	}

	// Only the first letter is raised, so "XENOS" looks up "XENOS".
	name := domain.Capitalize(token)
	topLevel, found := findFaction(factions, name)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrFactionNotFound, name)
	}

	entries := GroupByLeaf(topLevel.Catalogues)
	s.populateUnitCounts(ctx, entries)

	log.Debugf("Derived %d %s factions", len(entries), name)
	return entries, nil
}

func (s *Service) populateUnitCounts(ctx context.Context, entries []domain.FactionEntry) {
	errGroup := new(errgroup.Group)

	for i := range entries {
		i := i
		errGroup.Go(func() error {
			count := 0

			units, err := s.client.GetFactionUnits(ctx, entries[i].Name)
			if err != nil {
				log.Warnf("⚠️ Failed to count units for %s, showing 0: %v", entries[i].Name, err)
			} else {
				count = len(units)
			}

			entries[i].UnitCount = &count
			return nil
		})
	}

	_ = errGroup.Wait()
}

func findFaction(factions []domain.Faction, name string) (domain.Faction, bool) {
	for _, faction := range factions {
		if faction.Name == name {
			return faction, true
		}
	}
	return domain.Faction{}, false
}

// LeafFactionName returns the last " - " segment of a compound catalogue name,
// e.g. "Imperium - Adeptus Astartes - Deathwatch" -> "Deathwatch".
func LeafFactionName(catalogueName string) string {
	parts := strings.Split(catalogueName, leafSeparator)
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return catalogueName
}

// GroupByLeaf partitions catalogue names by leaf faction name. Entries are
// ordered by locale collation of the name; each entry keeps its catalogues in
// input order. Unit counts are left unset.
func GroupByLeaf(catalogues []string) []domain.FactionEntry {
	groups := make(map[string][]string)
	for _, catalogueName := range catalogues {
		leaf := LeafFactionName(catalogueName)
		groups[leaf] = append(groups[leaf], catalogueName)
	}

	entries := make([]domain.FactionEntry, 0, len(groups))
	for name, names := range groups {
		entries = append(entries, domain.FactionEntry{
			Name:       name,
			Catalogues: names,
		})
	}

	SortFactionEntries(entries)
	return entries
}

// SortFactionEntries orders entries the way a browser's localeCompare would.
func SortFactionEntries(entries []domain.FactionEntry) {
	collator := collate.New(language.English)
	sort.SliceStable(entries, func(i, j int) bool {
		if c := collator.CompareString(entries[i].Name, entries[j].Name); c != 0 {
			return c < 0
		}
		return entries[i].Name < entries[j].Name
	})
}
