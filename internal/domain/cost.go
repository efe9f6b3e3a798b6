package domain

import (
	"fmt"
	"sort"
	"strings"
)

// CostTier is a breakpoint: from MinModels models upwards the unit costs Cost.
type CostTier struct {
	MinModels int `json:"minModels"`
	Cost      int `json:"cost"`
}

type TieredCosts struct {
	BaseCost int        `json:"baseCost"`
	Tiers    []CostTier `json:"tiers"`
}

// String renders the schedule as "80 pts (5+ models: 80 pts, 10+ models: 160 pts)".
// Tiers keep the order the API sent them in.
func (t TieredCosts) String() string {
	base := fmt.Sprintf("%d pts", t.BaseCost)
	if len(t.Tiers) == 0 {
		return base
	}

	parts := make([]string, 0, len(t.Tiers))
	for _, tier := range t.Tiers {
		parts = append(parts, tier.String())
	}
	return fmt.Sprintf("%s (%s)", base, strings.Join(parts, ", "))
}

func (c CostTier) String() string {
	return fmt.Sprintf("%d+ models: %d pts", c.MinModels, c.Cost)
}

// FormatCosts renders a flat cost map as "<cost> <type>" pairs ordered by type name.
func FormatCosts(costs map[string]int) string {
	if len(costs) == 0 {
		return ""
	}

	types := make([]string, 0, len(costs))
	for costType := range costs {
		types = append(types, costType)
	}
	sort.Strings(types)

	parts := make([]string, 0, len(types))
	for _, costType := range types {
		parts = append(parts, fmt.Sprintf("%d %s", costs[costType], costType))
	}
	return strings.Join(parts, ", ")
}

func pointsLabel(tiered *TieredCosts, costs map[string]int) string {
	if tiered != nil && len(tiered.Tiers) > 0 {
		return tiered.String()
	}
	return FormatCosts(costs)
}
