package cli

import (
	"fmt"
	"io"
	"strings"

	"grimoire/browser/internal/domain"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderCatalogues(w io.Writer, catalogues []domain.Catalogue) {
	if len(catalogues) == 0 {
		_, _ = fmt.Fprintln(w, "No catalogues found.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Name", "Revision", "Library"})
	for _, c := range catalogues {
		library := ""
		if c.Library {
			library = "yes"
		}
		t.AppendRow(table.Row{c.ID, c.Name, c.Revision, library})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d catalogues", len(catalogues))})
	t.Render()
}

func renderUnits(w io.Writer, units []domain.UnitSummary) {
	if len(units) == 0 {
		_, _ = fmt.Fprintln(w, "No units found.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Name", "Type", "Points"})
	for _, u := range units {
		t.AppendRow(table.Row{u.ID, u.Name, u.Type, u.PointsLabel()})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d units", len(units))})
	t.Render()
}

func renderUnit(w io.Writer, unit *domain.Unit) {
	_, _ = fmt.Fprintln(w, unit.Name)

	info := newTable(w)
	info.AppendRow(table.Row{"ID", unit.ID})
	if unit.Type != "" {
		info.AppendRow(table.Row{"Type", unit.Type})
	}
	if unit.Faction != nil {
		info.AppendRow(table.Row{"Faction", unit.Faction.Name})
	}
	if unit.Catalogue != nil {
		info.AppendRow(table.Row{"Catalogue", unit.Catalogue.Name})
	}
	if points := unit.PointsLabel(); points != "" {
		info.AppendRow(table.Row{"Points", points})
	}
	if len(unit.Categories) > 0 {
		names := make([]string, 0, len(unit.Categories))
		for _, c := range unit.Categories {
			names = append(names, c.Name)
		}
		info.AppendRow(table.Row{"Keywords", strings.Join(names, ", ")})
	}
	info.Render()

	if unit.Profiles != nil {
		if p := unit.Profiles.Unit; p != nil {
			t := newTable(w)
			t.AppendHeader(table.Row{"M", "T", "Sv", "W", "Ld", "OC"})
			t.AppendRow(table.Row{p.Movement, p.Toughness, p.Save, p.Wounds, p.Leadership, p.ObjectiveControl})
			t.Render()
		}
	}

	if unit.Weapons != nil {
		renderWeapons(w, "Ranged weapons", "BS", unit.Weapons.Ranged, func(wp domain.Weapon) string { return wp.BallisticSkill })
		renderWeapons(w, "Melee weapons", "WS", unit.Weapons.Melee, func(wp domain.Weapon) string { return wp.WeaponSkill })
	}

	if unit.Profiles != nil && len(unit.Profiles.Abilities) > 0 {
		_, _ = fmt.Fprintln(w, "Abilities")
		for _, a := range unit.Profiles.Abilities {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", a.Name, a.Description)
		}
	}
}

func renderWeapons(w io.Writer, title, skillHeader string, weapons []domain.Weapon, skill func(domain.Weapon) string) {
	if len(weapons) == 0 {
		return
	}

	t := newTable(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Name", "Range", "A", skillHeader, "S", "AP", "D", "Keywords"})
	for _, wp := range weapons {
		t.AppendRow(table.Row{wp.Name, wp.Range, wp.Attacks, skill(wp), wp.Strength, wp.ArmorPenetration, wp.Damage, strings.Join(wp.Keywords, ", ")})
	}
	t.Render()
}

func renderFactions(w io.Writer, entries []domain.FactionEntry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No factions found.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Faction", "Units", "Catalogues"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Name, e.Count(), strings.Join(e.Catalogues, ", ")})
	}
	t.Render()
}

func renderSearch(w io.Writer, results *domain.SearchResults) {
	if len(results.Results) == 0 {
		_, _ = fmt.Fprintf(w, "No results for %q.\n", results.Query)
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Type", "ID", "Name", "Summary"})
	for _, r := range results.Results {
		t.AppendRow(table.Row{r.Type, r.ID, r.Name, r.Summary})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d of %d results", len(results.Results), results.Total)})
	t.Render()
}

func renderGameSystem(w io.Writer, system *domain.GameSystem) {
	t := newTable(w)
	t.AppendRow(table.Row{"Name", system.Name})
	t.AppendRow(table.Row{"ID", system.ID})
	t.AppendRow(table.Row{"Revision", system.Revision})
	if system.BattleScribeVersion != "" {
		t.AppendRow(table.Row{"BattleScribe", system.BattleScribeVersion})
	}
	if len(system.CostTypes) > 0 {
		names := make([]string, 0, len(system.CostTypes))
		for _, c := range system.CostTypes {
			names = append(names, c.Name)
		}
		t.AppendRow(table.Row{"Cost types", strings.Join(names, ", ")})
	}
	t.Render()
}
