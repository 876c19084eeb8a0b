package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shinaBack/internal/models"
)

func TestDirectusListTiresFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %q; want Bearer tok", r.Header.Get("Authorization"))
		}
		q := r.URL.Query()
		if q.Get("filter[width][_eq]") != "205" || q.Get("filter[season][_eq]") != "winter" {
			t.Errorf("unexpected filter params: %v", q)
		}
		w.Write([]byte(`{"data": [
			{"id": 1, "brand": "Nokian", "model": "HKPL 10", "width": 205, "height": 55, "diameter": 16},
			{"brand": "no id, dropped"}
		]}`))
	}))
	defer srv.Close()

	client := NewDirectusClient(srv.Client(), srv.URL, "tok")
	tires, err := client.ListTires(context.Background(), models.TireFilter{Width: "205", Season: "winter"})
	if err != nil {
		t.Fatalf("ListTires error: %v", err)
	}
	if len(tires) != 1 {
		t.Fatalf("got %d tires; want 1", len(tires))
	}
	if tires[0].Name != "Nokian HKPL 10 205/55 R16" {
		t.Errorf("Name = %q; synthesized name is wrong", tires[0].Name)
	}
}

func TestDirectusGetTireNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewDirectusClient(srv.Client(), srv.URL, "tok")
	if _, err := client.GetTire(context.Background(), "nope"); !errors.Is(err, models.ErrTireNotFound) {
		t.Errorf("err = %v; want ErrTireNotFound", err)
	}
}

func TestDirectusTireBrandsDedupesAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"brand": "Nokian"},
			{"brand": "Bridgestone"},
			{"brand": "Nokian"},
			{"brand": ""}
		]}`))
	}))
	defer srv.Close()

	client := NewDirectusClient(srv.Client(), srv.URL, "tok")
	brands, err := client.TireBrands(context.Background())
	if err != nil {
		t.Fatalf("TireBrands error: %v", err)
	}
	want := []string{"Bridgestone", "Nokian"}
	if len(brands) != len(want) || brands[0] != want[0] || brands[1] != want[1] {
		t.Errorf("brands = %v; want %v", brands, want)
	}
}

func TestDirectusDimensionsSortedNumerically(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"width": 215, "height": 60, "diameter": 16},
			{"width": 185, "height": 55, "diameter": 14},
			{"width": 205, "height": 55, "diameter": 16}
		]}`))
	}))
	defer srv.Close()

	client := NewDirectusClient(srv.Client(), srv.URL, "tok")
	dims, err := client.Dimensions(context.Background())
	if err != nil {
		t.Fatalf("Dimensions error: %v", err)
	}
	if len(dims.Widths) != 3 || dims.Widths[0] != "185" || dims.Widths[2] != "215" {
		t.Errorf("Widths = %v; want numeric ascending", dims.Widths)
	}
	if len(dims.Diameters) != 2 || dims.Diameters[0] != "14" {
		t.Errorf("Diameters = %v; want deduped ascending", dims.Diameters)
	}
}

func TestDirectusTireByArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graphql" || r.Method != http.MethodPost {
			t.Errorf("%s %s; want POST /graphql", r.Method, r.URL.Path)
		}
		var payload struct {
			Variables map[string]string `json:"variables"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Variables["article"] != "ART-42" {
			t.Errorf("article variable = %q; want ART-42", payload.Variables["article"])
		}
		w.Write([]byte(`{"data": {"tires": [{"id": 7, "title": "Nordman 7", "article": "ART-42"}]}}`))
	}))
	defer srv.Close()

	client := NewDirectusClient(srv.Client(), srv.URL, "tok")
	tire, err := client.TireByArticle(context.Background(), "ART-42")
	if err != nil {
		t.Fatalf("TireByArticle error: %v", err)
	}
	if tire.ID != "7" || tire.Name != "Nordman 7" {
		t.Errorf("tire = %+v; want id 7 / Nordman 7", tire)
	}
}

func TestDirectusTireByArticleNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"tires": []}}`))
	}))
	defer srv.Close()

	client := NewDirectusClient(srv.Client(), srv.URL, "tok")
	if _, err := client.TireByArticle(context.Background(), "missing"); !errors.Is(err, models.ErrTireNotFound) {
		t.Errorf("err = %v; want ErrTireNotFound", err)
	}
}
