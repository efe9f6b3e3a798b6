package domain

type Catalogue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Revision string `json:"revision"`
	Library  bool   `json:"library"` // Shared library catalogue rather than a playable army
}

type Publication struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ShortName       string `json:"shortName,omitempty"`
	PublicationDate string `json:"publicationDate,omitempty"`
	Page            string `json:"page,omitempty"`
}

// CatalogueDetail is the full catalogue record returned by /catalogues/{id}.
type CatalogueDetail struct {
	Catalogue
	GameSystemID     string        `json:"gameSystemId"`
	LinkedCatalogues []Catalogue   `json:"linkedCatalogues"`
	Units            []UnitSummary `json:"units"`
	Publications     []Publication `json:"publications"`
}

type CostType struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DefaultCostLimit string `json:"defaultCostLimit"`
	Hidden           bool   `json:"hidden"`
}

type ProfileType struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Characteristics []string `json:"characteristics"`
}

// GameSystem describes the rules edition the API serves.
type GameSystem struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Revision            string         `json:"revision"`
	BattleScribeVersion string         `json:"battleScribeVersion"`
	ProfileTypes        []ProfileType  `json:"profileTypes"`
	Categories          []CategoryInfo `json:"categories"`
	CostTypes           []CostType     `json:"costTypes"`
}
