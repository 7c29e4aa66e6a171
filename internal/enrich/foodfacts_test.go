package enrich

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFoodFactsSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cgi/search.pl" {
			t.Errorf("path: got=%s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("search_terms") != "green papaya" || q.Get("page_size") != "1" || q.Get("json") != "1" {
			t.Errorf("query: got=%s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"count":1,"products":[{"product_name":"Papaya","nutriments":{
			"energy-kcal_100g": 43,
			"proteins_100g": "0.5",
			"carbohydrates_100g": 10.8,
			"fat_100g": 0.3,
			"fiber_100g": 1.7,
			"sodium_100g": 0.008
		}}]}`))
	}))
	defer srv.Close()

	c := NewFoodFacts(FoodFactsOptions{BaseURL: srv.URL})
	n, err := c.Search(context.Background(), "green papaya")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if n.Calories != 43 || n.Protein != 0.5 || n.Carbs != 10.8 || n.Fiber != 1.7 {
		t.Fatalf("nutrients: got=%+v", n)
	}
	if math.Abs(n.Sodium-8) > 1e-9 {
		t.Fatalf("sodium: want=8 got=%v", n.Sodium)
	}
}

func TestFoodFactsNoProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":0,"products":[]}`))
	}))
	defer srv.Close()

	c := NewFoodFacts(FoodFactsOptions{BaseURL: srv.URL})
	if _, err := c.Search(context.Background(), "unobtainium"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got=%v", err)
	}
	if _, err := c.Search(context.Background(), "  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank query: want ErrNotFound, got=%v", err)
	}
}

func TestFoodFactsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewFoodFacts(FoodFactsOptions{BaseURL: srv.URL})
	_, err := c.Search(context.Background(), "rice")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("want status error, got=%v", err)
	}
}

func TestNutrientsFrom(t *testing.T) {
	n, ok := nutrientsFrom(map[string]any{"energy-kj_100g": 418.4, "fat_100g": -3.0})
	if !ok {
		t.Fatalf("want ok")
	}
	if math.Abs(n.Calories-100) > 1e-9 || n.Fat != 0 {
		t.Fatalf("nutrients: got=%+v", n)
	}
	if _, ok := nutrientsFrom(map[string]any{"nova-group": 4.0}); ok {
		t.Fatalf("map without nutrition values should not be ok")
	}
	if _, ok := nutrientsFrom(nil); ok {
		t.Fatalf("nil map should not be ok")
	}
}

func TestNutrientsFromRejectsImplausibleValues(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
	}{
		{"infinite string", map[string]any{"energy-kcal_100g": "Infinity"}},
		{"nan string", map[string]any{"energy-kcal_100g": "NaN"}},
		{"overflowing energy", map[string]any{"energy-kcal_100g": 1e308, "proteins_100g": 5.0}},
		{"energy above pure fat", map[string]any{"energy-kcal_100g": 950.0}},
		{"energy from kJ above bound", map[string]any{"energy-kj_100g": 5000.0}},
		{"macro above 100g", map[string]any{"energy-kcal_100g": 100.0, "carbohydrates_100g": "120"}},
		{"sodium above 100g", map[string]any{"energy-kcal_100g": 100.0, "sodium_100g": 150.0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if n, ok := nutrientsFrom(tc.in); ok {
				t.Fatalf("want rejection, got=%+v", n)
			}
		})
	}

	n, ok := nutrientsFrom(map[string]any{"energy-kcal_100g": "Infinity", "energy-kj_100g": 836.8})
	if !ok || math.Abs(n.Calories-200) > 1e-9 {
		t.Fatalf("non-finite kcal should fall back to kJ: got=%+v ok=%v", n, ok)
	}
}

func TestFoodFactsSearchImplausibleProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"product_name":"Broken","nutriments":{"energy-kcal_100g":1e308}}]}`))
	}))
	defer srv.Close()

	c := NewFoodFacts(FoodFactsOptions{BaseURL: srv.URL})
	n, err := c.Search(context.Background(), "broken")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got n=%+v err=%v", n, err)
	}
}
