package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"grimoire/browser/internal/config"
	"grimoire/browser/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type GrimoireClient interface {
	GetGameSystem(ctx context.Context) (*domain.GameSystem, error)

	ListCatalogues(ctx context.Context) ([]domain.Catalogue, error)
	GetCatalogue(ctx context.Context, id string) (*domain.CatalogueDetail, error)
	GetCatalogueUnits(ctx context.Context, id string) ([]domain.UnitSummary, error)

	ListUnits(ctx context.Context, filter UnitFilter) (*domain.UnitPage, error)
	GetUnit(ctx context.Context, id string) (*domain.Unit, error)
	GetUnitWeapons(ctx context.Context, id string) (*domain.WeaponSet, error)

	ListFactions(ctx context.Context) ([]domain.Faction, error)
	GetFactionUnits(ctx context.Context, name string) ([]domain.UnitSummary, error)

	Search(ctx context.Context, query string, limit int) (*domain.SearchResults, error)
}

// UnitFilter holds the optional /units query parameters. Zero values are not sent.
type UnitFilter struct {
	Faction  string
	Category string
	Search   string
	Limit    int
	Offset   int
}

func (f UnitFilter) params() map[string]string {
	params := make(map[string]string)
	if f.Faction != "" {
		params["faction"] = f.Faction
	}
	if f.Category != "" {
		params["category"] = f.Category
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	if f.Limit > 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	if f.Offset > 0 {
		params["offset"] = strconv.Itoa(f.Offset)
	}
	return params
}

type grimoireClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
}

func NewGrimoireClient(cfg config.APIConfig) GrimoireClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if cfg.MaxRetries > 0 {
		client.
			SetRetryCount(cfg.MaxRetries).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(5 * time.Second)
	}

	return &grimoireClient{
		rl:         ratelimit.New(cfg.MaxRequestsPerSecond),
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

func (c *grimoireClient) GetGameSystem(ctx context.Context) (*domain.GameSystem, error) {
	var system domain.GameSystem
	if err := c.getData(ctx, "GetGameSystem", "/game-system", nil, &system); err != nil {
		return nil, err
	}
	return &system, nil
}

func (c *grimoireClient) ListCatalogues(ctx context.Context) ([]domain.Catalogue, error) {
	var catalogues []domain.Catalogue
	if err := c.getData(ctx, "ListCatalogues", "/catalogues", nil, &catalogues); err != nil {
		return nil, err
	}
	return catalogues, nil
}

func (c *grimoireClient) GetCatalogue(ctx context.Context, id string) (*domain.CatalogueDetail, error) {
	var catalogue domain.CatalogueDetail
	path := fmt.Sprintf("/catalogues/%s", url.PathEscape(id))
	if err := c.getData(ctx, "GetCatalogue", path, nil, &catalogue); err != nil {
		return nil, err
	}
	return &catalogue, nil
}

func (c *grimoireClient) GetCatalogueUnits(ctx context.Context, id string) ([]domain.UnitSummary, error) {
	var units []domain.UnitSummary
	path := fmt.Sprintf("/catalogues/%s/units", url.PathEscape(id))
	if err := c.getData(ctx, "GetCatalogueUnits", path, nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (c *grimoireClient) ListUnits(ctx context.Context, filter UnitFilter) (*domain.UnitPage, error) {
	var page domain.UnitPage
	if err := c.get(ctx, "ListUnits", "/units", filter.params(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *grimoireClient) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	var unit domain.Unit
	path := fmt.Sprintf("/units/%s", url.PathEscape(id))
	if err := c.getData(ctx, "GetUnit", path, nil, &unit); err != nil {
		return nil, err
	}
	normalizeUnit(&unit)
	return &unit, nil
}

func (c *grimoireClient) GetUnitWeapons(ctx context.Context, id string) (*domain.WeaponSet, error) {
	var weapons domain.WeaponSet
	path := fmt.Sprintf("/units/%s/weapons", url.PathEscape(id))
	if err := c.getData(ctx, "GetUnitWeapons", path, nil, &weapons); err != nil {
		return nil, err
	}
	return &weapons, nil
}

func (c *grimoireClient) ListFactions(ctx context.Context) ([]domain.Faction, error) {
	var factions []domain.Faction
	if err := c.getData(ctx, "ListFactions", "/factions", nil, &factions); err != nil {
		return nil, err
	}
	return factions, nil
}

func (c *grimoireClient) GetFactionUnits(ctx context.Context, name string) ([]domain.UnitSummary, error) {
	var units []domain.UnitSummary
	path := fmt.Sprintf("/factions/%s/units", url.PathEscape(name))
	if err := c.getData(ctx, "GetFactionUnits", path, nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (c *grimoireClient) Search(ctx context.Context, query string, limit int) (*domain.SearchResults, error) {
	params := map[string]string{"q": query}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var results domain.SearchResults
	if err := c.getData(ctx, "Search", "/search", params, &results); err != nil {
		return nil, err
	}
	normalizeSearchResults(&results)
	return &results, nil
}

// getData fetches path and decodes the "data" member of the response envelope into out.
func (c *grimoireClient) getData(ctx context.Context, op, path string, params map[string]string, out any) error {
	env := envelope{Data: out}
	return c.get(ctx, op, path, params, &env)
}

func (c *grimoireClient) get(ctx context.Context, op, path string, params map[string]string, out any) error {
	c.rl.Take()

	endpoint := c.baseURL + path

	req := c.httpClient.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return newTransportError(op, fmt.Errorf("request cancelled: %w", ctx.Err()))
		}
		return newTransportError(op, err)
	}

	body := resp.String()
	if resp.IsError() {
		log.Debugf("GET %s answered %s", endpoint, resp.Status())
		return newStatusError(op, resp.StatusCode(), body)
	}

	if err := decode(body, out); err != nil {
		return newDecodeError(op, err)
	}

	log.Debugf("GET %s ok", endpoint)
	return nil
}

