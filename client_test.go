package dishcovery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// newTestServer serves the discovery API surface the SDK touches, with
// wire-convention payloads.
func newTestServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var clickCount atomic.Int64

	mux := http.NewServeMux()
	// handle registers a method-restricted route; Go 1.21's ServeMux does
	// not yet support "METHOD /path" patterns.
	handle := func(method, path string, h http.HandlerFunc) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.NotFound(w, r)
				return
			}
			h(w, r)
		})
	}
	handle(http.MethodPost, "/api/v1/image-search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"restaurant_id":"r1","restaurant_name":"Pho Thin","restaurant_rating":4.5,
			 "score":0.92,"price_level":1,"address":"13 Lo Duc, Hanoi",
			 "latitude":21.0136,"longitude":105.8544},
			{"restaurant_id":"r2","restaurant_name":"Pho 24","score":0.81,"distance":3.2}
		]}`))
	})
	handle(http.MethodGet, "/api/v1/recommendation/guest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"restaurant_id":"r3","restaurant_name":"Bun Cha Huong Lien","score":0.7}]}`))
	})
	handle(http.MethodGet, "/api/v1/restaurant/r1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"restaurant_id":"r1","restaurant_name":"Pho Thin",
			"restaurant_rating":4.5,"restaurant_rating_count":132,
			"opening_hours":"06:00-22:00","address":"13 Lo Duc, Hanoi",
			"restaurant_description":"Hanoi-style stir-fried beef pho."}}`))
	})
	handle(http.MethodGet, "/api/v1/restaurant/r1/dishes", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		_, _ = w.Write([]byte(`{"data":[{"item_name":"Pho tai lan p` + page + `","item_price":70000}],
			"metadata":{"page":` + page + `,"size":3,"total":7}}`))
	})
	handle(http.MethodGet, "/api/v1/restaurant/r1/reviews", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		_, _ = w.Write([]byte(`{"data":[{"review_user_name":"an","user_rating":5,"user_review":"best pho"}],
			"metadata":{"page":` + page + `,"size":2,"total":4}}`))
	})
	handle(http.MethodPost, "/api/v1/recommendation/add-click", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("click body: %v", err)
		}
		if body["user_id"] == "" || body["restaurant_id"] == "" {
			t.Errorf("click body missing ids: %v", body)
		}
		clickCount.Add(1)
		_, _ = w.Write([]byte(`{"data":null}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &clickCount
}

type fixedProvider struct{ lat, lon float64 }

func (p fixedProvider) CurrentPosition(context.Context, LocationOptions) (Coordinates, error) {
	return Coordinates{Latitude: p.lat, Longitude: p.lon}, nil
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without base URL")
	}
}

func TestClient_SearchToDetailFlow(t *testing.T) {
	srv, clicks := newTestServer(t)
	client, err := New(
		WithBaseURL(srv.URL),
		WithStaticToken("tok-123"),
		WithLocationProvider(fixedProvider{lat: 21.0278, lon: 105.8342}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()
	ctx := context.Background()

	coords := client.Location().Acquire(ctx)
	if coords == nil {
		t.Fatal("location provider ignored")
	}

	results, err := client.Search().ByImage(ctx, strings.NewReader("jpeg"), "dish.jpg", 0, coords)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].DistanceKm == nil {
		t.Error("client distance enrichment did not run")
	}
	if results[1].DistanceKm == nil || *results[1].DistanceKm != 3.2 {
		t.Error("server distance lost")
	}

	client.Session().SaveSearch(results, "blob:preview")

	view, err := client.Details().Open(ctx, results[0], coords)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	rec := view.Restaurant()
	if rec.Description != "Hanoi-style stir-fried beef pho." {
		t.Errorf("detail merge lost description: %q", rec.Description)
	}
	if rec.MatchScore == nil || *rec.MatchScore != 0.92 {
		t.Errorf("summary match score lost: %v", rec.MatchScore)
	}
	if !strings.Contains(rec.MapURL, "google.com/maps/search") {
		t.Errorf("map url = %q", rec.MapURL)
	}
	if len(view.MenuItems()) != 1 || view.MenuPageNumber() != 1 {
		t.Errorf("first menu page not seeded: %+v", view.MenuItems())
	}

	items, err := view.MenuPage(ctx, 2)
	if err != nil {
		t.Fatalf("menu page failed: %v", err)
	}
	if items[0].Name != "Pho tai lan p2" {
		t.Errorf("page 2 items = %+v", items)
	}

	client.Clicks().Log("u1", rec.ID)
	client.Clicks().Flush()
	if n := clicks.Load(); n != 1 {
		t.Errorf("click count = %d", n)
	}

	restored, preview, ok := client.Session().LoadSearch()
	if !ok || preview != "blob:preview" {
		t.Fatalf("session restore failed: ok=%v preview=%q", ok, preview)
	}
	if len(restored) != 2 || restored[0].ID != "r1" {
		t.Errorf("restored results = %+v", restored)
	}
}

func TestClient_FilterPipelineOnResults(t *testing.T) {
	srv, _ := newTestServer(t)
	client, err := New(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	results, err := client.Search().ByImage(
		context.Background(), strings.NewReader("jpeg"), "dish.jpg", 5, nil)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	filtered := ApplyFilters(results, FilterSpec{MinRating: 4})
	if len(filtered) != 1 || filtered[0].ID != "r1" {
		t.Fatalf("rating filter: %+v", filtered)
	}
	// Pure pipeline: the input survives untouched.
	if len(results) != 2 {
		t.Fatalf("input mutated: %d", len(results))
	}
}

func TestClient_GuestRecommendations(t *testing.T) {
	srv, _ := newTestServer(t)
	client, err := New(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	results, err := client.Search().Recommendations(context.Background(), "", 5, nil)
	if err != nil {
		t.Fatalf("recommendations failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "r3" {
		t.Fatalf("guest feed = %+v", results)
	}
}

func TestHaversineKm_PublicHelper(t *testing.T) {
	hanoi := Coordinates{Latitude: 21.0278, Longitude: 105.8342}
	hcmc := Coordinates{Latitude: 10.7769, Longitude: 106.7009}

	d := HaversineKm(hanoi, hcmc)
	if d < 1100 || d > 1200 {
		t.Errorf("Hanoi-HCMC distance = %f", d)
	}
	if HaversineKm(hanoi, hanoi) != 0 {
		t.Errorf("identical points = %f", HaversineKm(hanoi, hanoi))
	}
}
