package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shinaBack/internal/models"
)

func TestTirebaseBrandsSkipsEmptySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/brands" {
			t.Errorf("path = %q; want /brands", r.URL.Path)
		}
		if r.URL.Query().Get("access_token") != "secret" {
			t.Errorf("access_token = %q; want secret", r.URL.Query().Get("access_token"))
		}
		w.Write([]byte(`{"data": [
			{"name": "Toyota", "slug": "toyota"},
			{"name": "Broken"},
			{"name": "Kia", "slug": "kia"}
		]}`))
	}))
	defer srv.Close()

	client := NewTirebaseClient(srv.Client(), srv.URL, "secret")
	brands, err := client.Brands(context.Background())
	if err != nil {
		t.Fatalf("Brands error: %v", err)
	}
	if len(brands) != 2 {
		t.Fatalf("got %d brands; want 2", len(brands))
	}
	if brands[0].Slug != "toyota" || brands[1].Slug != "kia" {
		t.Errorf("brands = %+v; upstream order not preserved", brands)
	}
}

func TestTirebaseFitment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("brand_slug") != "toyota" || q.Get("model_slug") != "camry" || q.Get("year") != "2021" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Write([]byte(`{
			"brand": {"name": "Toyota", "slug": "toyota"},
			"model": {"name": "Camry", "slug": "camry", "years": [2018, 2021]},
			"fastener": "Lug nuts M12 x 1.5",
			"fitments": [
				{"pn": 5, "pcd": 114.3, "et": 40, "cb": 60.1, "diameter": 17, "width": 7.5},
				{}
			]
		}`))
	}))
	defer srv.Close()

	client := NewTirebaseClient(srv.Client(), srv.URL, "secret")
	record, err := client.Fitment(context.Background(), "toyota", "camry", 2021)
	if err != nil {
		t.Fatalf("Fitment error: %v", err)
	}

	if record.BrandSlug != "toyota" || record.ModelSlug != "camry" {
		t.Errorf("record = %+v; wrong brand/model", record)
	}
	if record.Fastener.Type == nil || *record.Fastener.Type != models.FastenerNut {
		t.Error("fastener type was not parsed as nut")
	}
	if record.Fastener.Thread == nil || *record.Fastener.Thread != "12x1.5" {
		t.Error("fastener thread was not parsed")
	}

	if len(record.AllFitments) != 2 {
		t.Fatalf("got %d fitments; want 2", len(record.AllFitments))
	}
	if record.AllFitments[0].PCD != "5x114.3" {
		t.Errorf("PCD = %q; want 5x114.3", record.AllFitments[0].PCD)
	}
	// The empty fitment picks up defaults.
	if record.AllFitments[1].PCD != "5x100" || record.AllFitments[1].ET != 40 {
		t.Errorf("default fitment = %+v; want 5x100 / ET40", record.AllFitments[1])
	}
}

func TestTirebaseFitmentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewTirebaseClient(srv.Client(), srv.URL, "secret")
	if _, err := client.Fitment(context.Background(), "nope", "nope", 0); !errors.Is(err, models.ErrNoRecord) {
		t.Errorf("err = %v; want ErrNoRecord", err)
	}
}

func TestTirebaseWheelsNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [
			{"id": 1, "title": "Alutec Grip", "type": "кованые"},
			{"title": "no id, dropped"}
		]}`))
	}))
	defer srv.Close()

	client := NewTirebaseClient(srv.Client(), srv.URL, "secret")
	wheels, err := client.Wheels(context.Background(), models.WheelFilter{Diameter: "17"})
	if err != nil {
		t.Fatalf("Wheels error: %v", err)
	}
	if len(wheels) != 1 {
		t.Fatalf("got %d wheels; want 1", len(wheels))
	}
	if wheels[0].WheelType != models.WheelForged {
		t.Errorf("WheelType = %q; want forged", wheels[0].WheelType)
	}
}

func TestTirebaseServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewTirebaseClient(srv.Client(), srv.URL, "secret")
	if _, err := client.Brands(context.Background()); !errors.Is(err, models.ErrUpstreamUnavailable) {
		t.Errorf("err = %v; want ErrUpstreamUnavailable", err)
	}
}
