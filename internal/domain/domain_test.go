package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		token string
		want  Category
		ok    bool
	}{
		{"xenos", CategoryXenos, true},
		{"Imperium", CategoryImperium, true},
		{"CHAOS", CategoryChaos, true},
		{"Orks", "", false},
		{"", "", false},
		{" xenos", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseCategory(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Xenos", CategoryXenos.DisplayName())
	assert.Equal(t, "Imperium", CategoryImperium.DisplayName())
	assert.Equal(t, "Chaos", CategoryChaos.DisplayName())
	assert.Equal(t, []string{"xenos", "imperium", "chaos"}, CategoryNames())
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Xenos", Capitalize("xenos"))
	assert.Equal(t, "XENOS", Capitalize("XENOS"))
	assert.Equal(t, "Éldar", Capitalize("éldar"))
}

func TestTieredCostsString(t *testing.T) {
	tiered := TieredCosts{
		BaseCost: 80,
		Tiers: []CostTier{
			{MinModels: 5, Cost: 80},
			{MinModels: 10, Cost: 160},
		},
	}
	assert.Equal(t, "80 pts (5+ models: 80 pts, 10+ models: 160 pts)", tiered.String())
	assert.Equal(t, "65 pts", TieredCosts{BaseCost: 65}.String())
}

func TestFormatCosts(t *testing.T) {
	assert.Equal(t, "", FormatCosts(nil))
	assert.Equal(t, "85 pts", FormatCosts(map[string]int{"pts": 85}))
	assert.Equal(t, "0 Crusade, 85 pts", FormatCosts(map[string]int{"pts": 85, "Crusade": 0}))
}

func TestPointsLabel(t *testing.T) {
	unit := Unit{Costs: map[string]int{"pts": 90}}
	assert.Equal(t, "90 pts", unit.PointsLabel())

	unit.TieredCosts = &TieredCosts{BaseCost: 90, Tiers: []CostTier{{MinModels: 6, Cost: 180}}}
	assert.Equal(t, "90 pts (6+ models: 180 pts)", unit.PointsLabel())

	summary := UnitSummary{Costs: map[string]int{"pts": 40}, TieredCosts: &TieredCosts{BaseCost: 40}}
	assert.Equal(t, "40 pts", summary.PointsLabel())
}

func TestFactionEntryCount(t *testing.T) {
	entry := FactionEntry{Name: "Necrons"}
	assert.Equal(t, 0, entry.Count())

	n := 42
	entry.UnitCount = &n
	assert.Equal(t, 42, entry.Count())
}

func TestWeaponSetEmpty(t *testing.T) {
	var nilSet *WeaponSet
	assert.True(t, nilSet.Empty())
	assert.True(t, (&WeaponSet{}).Empty())
	assert.False(t, (&WeaponSet{Melee: []Weapon{{Name: "Close combat weapon"}}}).Empty())
}
