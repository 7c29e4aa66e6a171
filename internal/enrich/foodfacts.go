package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
)

// ErrNotFound is returned when the search matched no product with nutrition data.
var ErrNotFound = errors.New("no matching product")

const kjPerKcal = 4.184

// FoodFactsOptions configures the Open Food Facts client.
type FoodFactsOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// FoodFacts searches the Open Food Facts product database by free text.
type FoodFacts struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

func NewFoodFacts(opts FoodFactsOptions) *FoodFacts {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &FoodFacts{
		httpClient: client,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		log:        log.With("component", "enrich.FoodFacts"),
	}
}

type searchResponse struct {
	Products []product `json:"products"`
}

type product struct {
	ProductName string         `json:"product_name"`
	Nutriments  map[string]any `json:"nutriments"`
}

// Search returns the per-100g nutrition of the first product matching query.
func (c *FoodFacts) Search(ctx context.Context, query string) (*models.Nutrients, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNotFound
	}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "1")
	params.Set("fields", "product_name,nutriments")
	apiURL := c.baseURL + "/cgi/search.pl?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "mcp-food-vision/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search failed with status %d: %s", resp.StatusCode, string(body))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	if len(out.Products) == 0 {
		return nil, ErrNotFound
	}
	n, ok := nutrientsFrom(out.Products[0].Nutriments)
	if !ok {
		return nil, ErrNotFound
	}
	c.log.Debug("product found", "query", query, "product", out.Products[0].ProductName)
	return &n, nil
}

// nutrientsFrom normalizes an Open Food Facts nutriments map to per-100g
// values. Sodium is reported in grams and converted to milligrams. Negative
// values count as missing. ok is false when the map carries no energy or
// macronutrient value at all, or when any value is physically implausible.
func nutrientsFrom(m map[string]any) (models.Nutrients, bool) {
	var n models.Nutrients
	found := false
	get := func(key string) float64 {
		v, ok := extractFloat(m, key)
		if !ok || v < 0 {
			return 0
		}
		found = true
		return v
	}

	if v, ok := extractFloat(m, "energy-kcal_100g"); ok && v >= 0 {
		n.Calories = v
		found = true
	} else if v, ok := extractFloat(m, "energy-kj_100g"); ok && v >= 0 {
		n.Calories = v / kjPerKcal
		found = true
	}
	n.Protein = get("proteins_100g")
	n.Carbs = get("carbohydrates_100g")
	n.Fat = get("fat_100g")
	n.Fiber = get("fiber_100g")
	n.Sodium = get("sodium_100g") * 1000
	if !found || !n.PlausiblePer100g() {
		return models.Nutrients{}, false
	}
	return n, true
}

// extractFloat coerces a nutriments value to float64. The API mixes numbers
// and numeric strings.
func extractFloat(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
