package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shinaBack/internal/models"
)

// wheelsTimeout bounds the wheels listing call; the rest of the Tirebase
// endpoints rely on the transport default.
const wheelsTimeout = 30 * time.Second

// TirebaseClient talks to the Tirebase wheels/fitment API. The access token
// travels as a query parameter.
type TirebaseClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewTirebaseClient(httpClient *http.Client, baseURL, token string) *TirebaseClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TirebaseClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

func (c *TirebaseClient) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.token)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("tirebase: build request: %w", err)
	}
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

// Brands returns the full vehicle manufacturer list in upstream order.
func (c *TirebaseClient) Brands(ctx context.Context) ([]models.BrandRef, error) {
	body, status, err := c.get(ctx, "/brands", nil)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, fmt.Errorf("%w: brands: http %d", models.ErrUpstreamUnavailable, status)
	}

	brands := make([]models.BrandRef, 0)
	for _, item := range decodeItems(body) {
		var brand models.BrandRef
		if err := json.Unmarshal(item, &brand); err != nil {
			continue
		}
		if brand.Slug == "" {
			continue
		}
		brands = append(brands, brand)
	}
	return brands, nil
}

// Models returns the model list of one brand in upstream order.
func (c *TirebaseClient) Models(ctx context.Context, brandSlug string) ([]models.ModelRef, error) {
	params := url.Values{}
	params.Set("brand_slug", brandSlug)

	body, status, err := c.get(ctx, "/models", params)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, fmt.Errorf("%w: models %s: http %d", models.ErrUpstreamUnavailable, brandSlug, status)
	}

	refs := make([]models.ModelRef, 0)
	for _, item := range decodeItems(body) {
		var ref models.ModelRef
		if err := json.Unmarshal(item, &ref); err != nil {
			continue
		}
		if ref.Slug == "" {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

type rawFitment struct {
	Brand struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"brand"`
	Model struct {
		Name  string `json:"name"`
		Slug  string `json:"slug"`
		Years []int  `json:"years"`
	} `json:"model"`
	Fastener flexString `json:"fastener"`
	Fitments []struct {
		BoltCount  *flexFloat `json:"pn"`
		PCD        *flexFloat `json:"pcd"`
		ET         *flexFloat `json:"et"`
		CenterBore *flexFloat `json:"cb"`
		Hub        *flexFloat `json:"hub"`
		Diameter   *flexFloat `json:"diameter"`
		Width      *flexFloat `json:"width"`
	} `json:"fitments"`
}

// Fitment returns the fitment record for a brand/model/year, including the
// fastener spec parsed from the upstream free-text description.
func (c *TirebaseClient) Fitment(ctx context.Context, brandSlug, modelSlug string, year int) (models.VehicleFitmentRecord, error) {
	params := url.Values{}
	params.Set("brand_slug", brandSlug)
	params.Set("model_slug", modelSlug)
	if year > 0 {
		params.Set("year", fmt.Sprintf("%d", year))
	}

	body, status, err := c.get(ctx, "/fitment", params)
	if err != nil {
		return models.VehicleFitmentRecord{}, err
	}
	if status == http.StatusNotFound {
		return models.VehicleFitmentRecord{}, models.ErrNoRecord
	}
	if status >= 300 {
		return models.VehicleFitmentRecord{}, fmt.Errorf("%w: fitment: http %d", models.ErrUpstreamUnavailable, status)
	}

	var raw rawFitment
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.VehicleFitmentRecord{}, models.ErrNoRecord
	}
	if raw.Brand.Slug == "" && raw.Model.Slug == "" {
		return models.VehicleFitmentRecord{}, models.ErrNoRecord
	}

	record := models.VehicleFitmentRecord{
		BrandName: raw.Brand.Name,
		BrandSlug: raw.Brand.Slug,
		ModelName: raw.Model.Name,
		ModelSlug: raw.Model.Slug,
		Years:     raw.Model.Years,
		Fastener:  ParseFastener(string(raw.Fastener)),
	}

	record.AllFitments = make([]models.WheelFitment, 0, len(raw.Fitments))
	for _, f := range raw.Fitments {
		fit := models.WheelFitment{
			PCD: fmt.Sprintf("%sx%s",
				formatNum(floatOr(f.BoltCount, defaultBoltCount)),
				formatNum(floatOr(f.PCD, defaultCircleDiam))),
			ET:         floatOr(f.ET, defaultWheelET),
			CenterBore: floatOr(firstFloat(f.CenterBore, f.Hub), defaultCenterBore),
		}
		if f.Diameter != nil {
			fit.Diameter = formatNum(float64(*f.Diameter))
		}
		if f.Width != nil {
			fit.Width = formatNum(float64(*f.Width))
		}
		record.AllFitments = append(record.AllFitments, fit)
	}
	return record, nil
}

// Wheels fetches wheels matching the filter. The call is bounded by a
// 30-second timeout.
func (c *TirebaseClient) Wheels(ctx context.Context, f models.WheelFilter) ([]models.Wheel, error) {
	ctx, cancel := context.WithTimeout(ctx, wheelsTimeout)
	defer cancel()

	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("diameter", f.Diameter)
	set("width", f.Width)
	set("pcd", f.PCD)
	set("et", f.ET)
	set("hub", f.Hub)
	set("type", f.Type)
	set("brand", f.Brand)
	if f.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", f.Limit))
	}

	body, status, err := c.get(ctx, "/wheels", params)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, fmt.Errorf("%w: wheels: http %d", models.ErrUpstreamUnavailable, status)
	}

	wheels := make([]models.Wheel, 0)
	for _, item := range decodeItems(body) {
		var raw RawWheel
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}
		if wheel, ok := NormalizeWheel(raw); ok {
			wheels = append(wheels, wheel)
		}
	}
	return wheels, nil
}

// GetWheel fetches a single wheel by id.
func (c *TirebaseClient) GetWheel(ctx context.Context, id string) (models.Wheel, error) {
	body, status, err := c.get(ctx, "/wheels/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Wheel{}, err
	}
	if status == http.StatusNotFound {
		return models.Wheel{}, models.ErrWheelNotFound
	}
	if status >= 300 {
		return models.Wheel{}, fmt.Errorf("%w: wheel %s: http %d", models.ErrUpstreamUnavailable, id, status)
	}

	var raw RawWheel
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Wheel{}, models.ErrWheelNotFound
	}
	wheel, ok := NormalizeWheel(raw)
	if !ok {
		return models.Wheel{}, models.ErrWheelNotFound
	}
	return wheel, nil
}
