package rank

import (
	"reflect"
	"testing"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

func f(v float64) *float64 { return &v }

// fixture returns the canonical three-restaurant list used across tests.
func fixture() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: "a", MatchScore: f(0.9), Rating: 4, DistanceKm: f(2)},
		{ID: "b", MatchScore: f(0.5), Rating: 4.8, DistanceKm: nil},
		{ID: "c", MatchScore: f(0.7), Rating: 3, DistanceKm: f(1)},
	}
}

func ids(list []domain.Restaurant) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.ID
	}
	return out
}

func TestApply_DistanceSort_NullLast(t *testing.T) {
	got := Apply(fixture(), Spec{SortBy: SortByDistance})
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v got %v", want, ids(got))
	}
}

func TestApply_ScoreSort_WithRatingFilter(t *testing.T) {
	got := Apply(fixture(), Spec{SortBy: SortByScore, MinRating: 4})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v got %v", want, ids(got))
	}
}

func TestApply_RatingSort(t *testing.T) {
	got := Apply(fixture(), Spec{SortBy: SortByRating})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v got %v", want, ids(got))
	}
}

func TestApply_DefaultsToScoreSort(t *testing.T) {
	got := Apply(fixture(), Spec{})
	want := []string{"a", "c", "b"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v got %v", want, ids(got))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	list := fixture()
	snapshot := fixture()
	_ = Apply(list, Spec{SortBy: SortByDistance, MinRating: 3})
	if !reflect.DeepEqual(ids(list), ids(snapshot)) {
		t.Fatalf("input mutated: %v", ids(list))
	}
}

func TestApply_ZeroMinRatingKeepsUnrated(t *testing.T) {
	list := []domain.Restaurant{{ID: "x"}} // no rating at all
	got := Apply(list, Spec{MinRating: 0})
	if len(got) != 1 {
		t.Fatalf("unrated item dropped by no-op filter")
	}
}

func TestApply_PriceFilter(t *testing.T) {
	list := []domain.Restaurant{
		{ID: "cheap", PriceLevel: domain.PriceCheap},
		{ID: "pricey", PriceLevel: domain.PricePricey},
		{ID: "unknown"}, // no price level
	}

	got := Apply(list, Spec{PriceLevels: []domain.PriceLevel{domain.PriceCheap, domain.PriceModerate}})
	want := []string{"cheap"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v got %v", want, ids(got))
	}

	// Empty filter set keeps everything, including unknown levels.
	got = Apply(list, Spec{})
	if len(got) != 3 {
		t.Fatalf("empty price filter dropped items: %v", ids(got))
	}
}

func TestApply_StableForEqualKeys(t *testing.T) {
	list := []domain.Restaurant{
		{ID: "n1"}, // both nil distance
		{ID: "n2"},
		{ID: "k", DistanceKm: f(3)},
	}
	got := Apply(list, Spec{SortBy: SortByDistance})
	want := []string{"k", "n1", "n2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("nil-distance items reordered: want %v got %v", want, ids(got))
	}
}
