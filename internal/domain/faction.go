package domain

// Faction is a faction record as served by the API. Top-level factions carry
// compound catalogue names such as "Xenos - Necrons".
type Faction struct {
	Name       string   `json:"name"`
	Catalogues []string `json:"catalogues"`
}

// FactionEntry is a leaf faction derived from a top-level faction's
// catalogue names. It only lives for the duration of one request.
type FactionEntry struct {
	Name       string   `json:"name"`
	Catalogues []string `json:"catalogues"`
	UnitCount  *int     `json:"unitCount,omitempty"` // nil until the count look-up settles
}

// Count returns the unit count, or 0 while it is still unknown.
func (f FactionEntry) Count() int {
	if f.UnitCount == nil {
		return 0
	}
	return *f.UnitCount
}

// FactionInfo is the faction reference embedded in a unit.
type FactionInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
