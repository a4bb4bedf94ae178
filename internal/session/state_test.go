package session

import (
	"testing"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/geo"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/nearby"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

func recs(names ...string) []pairing.Recommendation {
	out := make([]pairing.Recommendation, 0, len(names))
	for _, n := range names {
		out = append(out, pairing.Recommendation{Name: n, Type: "Cocktail"})
	}
	return out
}

func TestReduce_SearchStartedResetsView(t *testing.T) {
	state := NewState(pairing.SeasonSummer)
	state.Err = "old error"
	state.Recommendations = recs("Old Drink")
	state.ActiveTab = TabFavorites
	state.NearbyPlaces = map[string]NearbyState{
		"Old Drink": {Places: []nearby.Place{{Title: "t", URI: "u"}}},
	}

	state = Reduce(state, SearchStarted{Seq: 1, Query: "Ramen", Budget: "$20"})

	if !state.Searching {
		t.Error("expected Searching true")
	}
	if state.Err != "" {
		t.Error("expected error cleared")
	}
	if state.Recommendations != nil {
		t.Error("expected recommendations cleared")
	}
	if len(state.NearbyPlaces) != 0 {
		t.Error("expected nearby state reset")
	}
	if state.ActiveTab != TabRecommendations {
		t.Error("expected tab forced to recommendations")
	}
	if state.Query != "Ramen" || state.Budget != "$20" {
		t.Errorf("query/budget not recorded: %q %q", state.Query, state.Budget)
	}
}

func TestReduce_SearchLifecycle(t *testing.T) {
	state := NewState(pairing.SeasonSummer)

	state = Reduce(state, SearchStarted{Seq: 1, Query: "Ramen"})
	state = Reduce(state, SearchSucceeded{Seq: 1, Recommendations: recs("Sake")})

	if state.Searching {
		t.Error("expected Searching false after resolution")
	}
	if len(state.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(state.Recommendations))
	}

	state = Reduce(state, SearchStarted{Seq: 2, Query: "Pizza"})
	state = Reduce(state, SearchFailed{Seq: 2, Message: "nope"})

	if state.Recommendations != nil {
		t.Error("recommendations must be nil after a failed search")
	}
	if state.Err != "nope" {
		t.Errorf("expected failure message, got %q", state.Err)
	}
}

func TestReduce_StaleResolutionDiscarded(t *testing.T) {
	state := NewState(pairing.SeasonSummer)

	state = Reduce(state, SearchStarted{Seq: 1, Query: "Ramen"})
	state = Reduce(state, SearchStarted{Seq: 2, Query: "Pizza"})

	// The older search resolves last; its outcome must not apply.
	state = Reduce(state, SearchSucceeded{Seq: 1, Recommendations: recs("Sake")})

	if !state.Searching {
		t.Error("newest search is still in flight, Searching must stay true")
	}
	if state.Recommendations != nil {
		t.Error("stale success must be discarded")
	}

	state = Reduce(state, SearchFailed{Seq: 1, Message: "stale"})
	if state.Err != "" {
		t.Error("stale failure must be discarded")
	}

	state = Reduce(state, SearchSucceeded{Seq: 2, Recommendations: recs("Chianti")})
	if state.Searching || len(state.Recommendations) != 1 || state.Recommendations[0].Name != "Chianti" {
		t.Errorf("newest resolution must apply: %+v", state)
	}
}

func TestReduce_OldSearchStartIgnored(t *testing.T) {
	state := NewState(pairing.SeasonSummer)

	state = Reduce(state, SearchStarted{Seq: 5, Query: "Pizza"})
	state = Reduce(state, SearchStarted{Seq: 3, Query: "Ramen"})

	if state.Query != "Pizza" {
		t.Errorf("an out-of-order start must not rewind state, got query %q", state.Query)
	}
}

func TestReduce_NearbyLifecyclePerDrink(t *testing.T) {
	state := NewState(pairing.SeasonSummer)

	state = Reduce(state, NearbyStarted{Drink: "Paloma"})
	state = Reduce(state, NearbyStarted{Drink: "Stout"})

	if !state.NearbyPlaces["Paloma"].IsLoading || !state.NearbyPlaces["Stout"].IsLoading {
		t.Fatal("expected both drinks loading")
	}

	state = Reduce(state, NearbyLoaded{Drink: "Paloma", Places: []nearby.Place{{Title: "t", URI: "u"}}})
	state = Reduce(state, NearbyFailed{Drink: "Stout", Message: "nope"})

	if state.NearbyPlaces["Paloma"].IsLoading || len(state.NearbyPlaces["Paloma"].Places) != 1 {
		t.Errorf("Paloma entry wrong: %+v", state.NearbyPlaces["Paloma"])
	}
	if state.NearbyPlaces["Stout"].Error != "nope" {
		t.Errorf("Stout entry wrong: %+v", state.NearbyPlaces["Stout"])
	}
}

func TestReduce_IsPure(t *testing.T) {
	original := NewState(pairing.SeasonSummer)
	original.NearbyPlaces["Paloma"] = NearbyState{IsLoading: true}

	_ = Reduce(original, NearbyLoaded{Drink: "Paloma", Places: nil})

	if !original.NearbyPlaces["Paloma"].IsLoading {
		t.Error("Reduce mutated its input state")
	}
}

func TestReduce_LocationTransitions(t *testing.T) {
	state := NewState(pairing.SeasonSummer)

	if state.Location != geo.PermissionPrompt {
		t.Fatalf("fresh session must start in prompt, got %s", state.Location)
	}

	state = Reduce(state, LocationDenied{})
	if state.Location != geo.PermissionDenied || state.Coordinates != nil {
		t.Error("denied must clear coordinates")
	}

	state = Reduce(state, LocationGranted{Coordinates: geo.Coordinates{Latitude: 1, Longitude: 2}})
	if state.Location != geo.PermissionGranted || state.Coordinates == nil || state.Coordinates.Latitude != 1 {
		t.Error("granted must record coordinates")
	}
}
