package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"shinaBack/internal/models"
)

// DirectusClient talks to the Directus-style tire catalog API.
type DirectusClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewDirectusClient constructs a tire catalog client.
func NewDirectusClient(httpClient *http.Client, baseURL, token string) *DirectusClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DirectusClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

func (c *DirectusClient) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("directus: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read body: %v", models.ErrUpstreamUnavailable, err)
	}
	return body, resp.StatusCode, nil
}

// ListTires fetches tires matching the filter, passing criteria through as
// Directus filter parameters.
func (c *DirectusClient) ListTires(ctx context.Context, f models.TireFilter) ([]models.Tire, error) {
	params := url.Values{}
	setEq := func(field, value string) {
		if value != "" {
			params.Set(fmt.Sprintf("filter[%s][_eq]", field), value)
		}
	}
	setEq("width", f.Width)
	setEq("height", f.Height)
	setEq("diameter", f.Diameter)
	setEq("season", f.Season)
	setEq("brand", f.Brand)
	setEq("spike", f.Spike)
	setEq("runflat", f.Runflat)
	setEq("cargo", f.Cargo)
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}

	body, status, err := c.get(ctx, "/items/tires", params)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, fmt.Errorf("%w: tires list: http %d", models.ErrUpstreamUnavailable, status)
	}

	tires := make([]models.Tire, 0)
	for _, item := range decodeItems(body) {
		var raw RawTire
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}
		if tire, ok := NormalizeTire(raw); ok {
			tires = append(tires, tire)
		}
	}
	return tires, nil
}

// GetTire fetches a single tire by its opaque id.
func (c *DirectusClient) GetTire(ctx context.Context, id string) (models.Tire, error) {
	body, status, err := c.get(ctx, "/items/tires/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Tire{}, err
	}
	if status == http.StatusNotFound {
		return models.Tire{}, models.ErrTireNotFound
	}
	if status >= 300 {
		return models.Tire{}, fmt.Errorf("%w: tire %s: http %d", models.ErrUpstreamUnavailable, id, status)
	}

	var envelope struct {
		Data RawTire `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.Tire{}, models.ErrTireNotFound
	}
	tire, ok := NormalizeTire(envelope.Data)
	if !ok {
		return models.Tire{}, models.ErrTireNotFound
	}
	return tire, nil
}

// TireBrands returns the distinct tire brand names.
func (c *DirectusClient) TireBrands(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("fields", "brand")
	params.Set("groupBy", "brand")

	body, status, err := c.get(ctx, "/items/tires", params)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, fmt.Errorf("%w: brands: http %d", models.ErrUpstreamUnavailable, status)
	}

	seen := make(map[string]struct{})
	brands := make([]string, 0)
	for _, item := range decodeItems(body) {
		var rec struct {
			Brand flexString `json:"brand"`
		}
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		name := strings.TrimSpace(string(rec.Brand))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		brands = append(brands, name)
	}
	sort.Strings(brands)
	return brands, nil
}

// Dimensions aggregates the distinct width/height/diameter values present in
// the catalog.
func (c *DirectusClient) Dimensions(ctx context.Context) (models.DimensionSet, error) {
	params := url.Values{}
	params.Set("fields", "width,height,diameter")
	params.Set("groupBy", "width,height,diameter")

	body, status, err := c.get(ctx, "/items/tires", params)
	if err != nil {
		return models.DimensionSet{}, err
	}
	if status >= 300 {
		return models.DimensionSet{}, fmt.Errorf("%w: dimensions: http %d", models.ErrUpstreamUnavailable, status)
	}

	widths := make(map[string]struct{})
	heights := make(map[string]struct{})
	diameters := make(map[string]struct{})
	for _, item := range decodeItems(body) {
		var rec struct {
			Width    *flexFloat `json:"width"`
			Height   *flexFloat `json:"height"`
			Diameter *flexFloat `json:"diameter"`
		}
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		if rec.Width != nil {
			widths[formatNum(float64(*rec.Width))] = struct{}{}
		}
		if rec.Height != nil {
			heights[formatNum(float64(*rec.Height))] = struct{}{}
		}
		if rec.Diameter != nil {
			diameters[formatNum(float64(*rec.Diameter))] = struct{}{}
		}
	}

	return models.DimensionSet{
		Widths:    sortedNumeric(widths),
		Heights:   sortedNumeric(heights),
		Diameters: sortedNumeric(diameters),
	}, nil
}

// SeasonValues returns the distinct season labels used by the catalog.
func (c *DirectusClient) SeasonValues(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("fields", "season")
	params.Set("groupBy", "season")

	body, status, err := c.get(ctx, "/items/tires", params)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, fmt.Errorf("%w: seasons: http %d", models.ErrUpstreamUnavailable, status)
	}

	seen := make(map[string]struct{})
	seasons := make([]string, 0)
	for _, item := range decodeItems(body) {
		var rec struct {
			Season flexString `json:"season"`
		}
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		val := strings.TrimSpace(string(rec.Season))
		if val == "" {
			continue
		}
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		seasons = append(seasons, val)
	}
	sort.Strings(seasons)
	return seasons, nil
}

const tireByArticleQuery = `query TireByArticle($article: String!) {
  tires(filter: { article: { _eq: $article } }, limit: 1) {
    id
    title
    brand
    model
    article
    price
    stock
    width
    height
    diameter
    season
    spike
    runflat
    cargo
    image
  }
}`

// TireByArticle resolves a tire through the GraphQL endpoint by its article
// number.
func (c *DirectusClient) TireByArticle(ctx context.Context, article string) (models.Tire, error) {
	payload := struct {
		Query     string            `json:"query"`
		Variables map[string]string `json:"variables"`
	}{
		Query:     tireByArticleQuery,
		Variables: map[string]string{"article": article},
	}

	body, err := json.Marshal(&payload)
	if err != nil {
		return models.Tire{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return models.Tire{}, fmt.Errorf("directus: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Tire{}, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return models.Tire{}, fmt.Errorf("%w: graphql: http %d", models.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var out struct {
		Data struct {
			Tires []RawTire `json:"tires"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.Tire{}, models.ErrTireNotFound
	}
	if len(out.Data.Tires) == 0 {
		return models.Tire{}, models.ErrTireNotFound
	}
	tire, ok := NormalizeTire(out.Data.Tires[0])
	if !ok {
		return models.Tire{}, models.ErrTireNotFound
	}
	return tire, nil
}

func sortedNumeric(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		a, errA := strconv.ParseFloat(values[i], 64)
		b, errB := strconv.ParseFloat(values[j], 64)
		if errA != nil || errB != nil {
			return values[i] < values[j]
		}
		return a < b
	})
	return values
}
