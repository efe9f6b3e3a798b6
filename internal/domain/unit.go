package domain

type UnitProfile struct {
	Movement         string `json:"movement"`
	Toughness        int    `json:"toughness"`
	Save             string `json:"save"`
	Wounds           int    `json:"wounds"`
	Leadership       string `json:"leadership"`
	ObjectiveControl int    `json:"objectiveControl"`
}

type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TransportProfile struct {
	Capacity string `json:"capacity"`
}

type UnitProfiles struct {
	Unit      *UnitProfile      `json:"unit,omitempty"`
	Abilities []Ability         `json:"abilities,omitempty"`
	Transport *TransportProfile `json:"transport,omitempty"`
}

// Weapon covers both ranged and melee profiles; ranged weapons carry
// BallisticSkill, melee weapons WeaponSkill.
type Weapon struct {
	Name             string   `json:"name"`
	Range            string   `json:"range"`
	Attacks          string   `json:"attacks"`
	BallisticSkill   string   `json:"ballisticSkill,omitempty"`
	WeaponSkill      string   `json:"weaponSkill,omitempty"`
	Strength         string   `json:"strength"`
	ArmorPenetration string   `json:"armorPenetration"`
	Damage           string   `json:"damage"`
	Keywords         []string `json:"keywords"`
}

type WeaponSet struct {
	Ranged []Weapon `json:"ranged,omitempty"`
	Melee  []Weapon `json:"melee,omitempty"`
}

func (w *WeaponSet) Empty() bool {
	return w == nil || (len(w.Ranged) == 0 && len(w.Melee) == 0)
}

type CategoryInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Primary bool   `json:"primary"`
}

type RuleInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UnitConstraints struct {
	MaxPerRoster int `json:"maxPerRoster,omitempty"`
	MinPerRoster int `json:"minPerRoster,omitempty"`
	MaxPerForce  int `json:"maxPerForce,omitempty"`
	MinPerForce  int `json:"minPerForce,omitempty"`
}

type Unit struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Publication *Publication     `json:"publication,omitempty"`
	Profiles    *UnitProfiles    `json:"profiles,omitempty"`
	Weapons     *WeaponSet       `json:"weapons,omitempty"`
	Categories  []CategoryInfo   `json:"categories,omitempty"`
	Rules       []RuleInfo       `json:"rules,omitempty"`
	Costs       map[string]int   `json:"costs,omitempty"`
	TieredCosts *TieredCosts     `json:"tieredCosts,omitempty"`
	Constraints *UnitConstraints `json:"constraints,omitempty"`
	Faction     *FactionInfo     `json:"faction,omitempty"`
	Catalogue   *Catalogue       `json:"catalogue,omitempty"`
}

// PointsLabel prefers the tiered schedule over the flat cost map.
func (u Unit) PointsLabel() string {
	return pointsLabel(u.TieredCosts, u.Costs)
}

// UnitSummary is the row shape of every unit list endpoint.
type UnitSummary struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	TargetID    string         `json:"targetId,omitempty"`
	Type        string         `json:"type,omitempty"`
	Costs       map[string]int `json:"costs,omitempty"`
	TieredCosts *TieredCosts   `json:"tieredCosts,omitempty"`
}

func (u UnitSummary) PointsLabel() string {
	return pointsLabel(u.TieredCosts, u.Costs)
}

type SearchResult struct {
	Type    string `json:"type"` // "unit", "weapon", "ability"
	ID      string `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
}

type SearchResults struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

// UnitPage is one page of the paginated /units listing.
type UnitPage struct {
	Units   []UnitSummary `json:"data"`
	Total   int           `json:"total"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
	HasMore bool          `json:"hasMore"`
}
