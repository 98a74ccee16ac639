package prefs

import (
	"testing"

	"townmate-be/pkg/store"
)

func place(category string, rating float64) store.Place {
	return store.Place{Category: category, Rating: rating, Price: store.PriceModerate}
}

func TestScoreWithoutTraining(t *testing.T) {
	empty := NewProfile(nil, nil)

	tests := []struct {
		rating float64
		want   int
	}{
		{5.0, 7},
		{4.5, 7}, // rounds half away from zero
		{4.0, 6},
		{3.0, 5},
		{0.0, 2},
	}

	for _, tt := range tests {
		p := place(store.CategoryCafes, tt.rating)
		if got := Score(p, empty); got != tt.want {
			t.Errorf("Score(rating=%.1f, untrained) = %d, want %d", tt.rating, got, tt.want)
		}
	}
}

func TestScoreLikedPromptBoosts(t *testing.T) {
	cafe := place(store.CategoryCafes, 2.5) // rating bonus cancels at the midpoint

	liked := NewProfile([]string{PromptCoffeeCrawl}, nil)
	if got := Score(cafe, liked); got != 7 {
		t.Errorf("liked coffee-crawl on a cafe = %d, want 7", got)
	}

	disliked := NewProfile(nil, []string{PromptCoffeeCrawl})
	if got := Score(cafe, disliked); got != 4 {
		t.Errorf("disliked coffee-crawl on a cafe = %d, want 4", got)
	}

	// A prompt whose surface does not cover the place changes nothing.
	neutral := NewProfile([]string{PromptBeachDay}, nil)
	if got := Score(cafe, neutral); got != 5 {
		t.Errorf("unrelated liked prompt on a cafe = %d, want baseline 5", got)
	}
}

func TestScoreLikingNeverLowers(t *testing.T) {
	catalog := []store.Place{
		place(store.CategoryCafes, 4.0),
		place(store.CategoryBeaches, 3.5),
		place(store.CategoryRestaurants, 4.8),
		place(store.CategoryHikes, 2.0),
	}

	base := NewProfile([]string{PromptLiveMusic}, nil)
	boosted := NewProfile([]string{PromptLiveMusic, PromptCoffeeCrawl, PromptBeachDay}, nil)

	for i, p := range catalog {
		if Score(p, boosted) < Score(p, base) {
			t.Errorf("place %d: adding liked prompts lowered the score", i)
		}
	}
}

func TestScorePriceFlags(t *testing.T) {
	cheapEats := store.Place{Category: store.CategoryRestaurants, Rating: 2.5, Price: store.PriceCheap}

	// street-food covers restaurants (1.3) and budget-eats adds the price
	// flag (0.8): 5 + 1.3 + 0.8 = 7.1 → 7.
	prof := NewProfile([]string{PromptStreetFood, PromptBudgetEats}, nil)
	if got := Score(cheapEats, prof); got != 7 {
		t.Errorf("cheap restaurant with street-food+budget-eats = %d, want 7", got)
	}

	splurge := store.Place{Category: store.CategoryRestaurants, Rating: 2.5, Price: store.PriceSplurge}
	prof = NewProfile(nil, []string{PromptSplurgeNights})
	// fine-dining affinity does not cover it (no reservations feature, no
	// tags) but splurge-nights is disliked and the price qualifies: 5 - 0.8.
	if got := Score(splurge, prof); got != 4 {
		t.Errorf("pricey restaurant with disliked splurge-nights = %d, want 4", got)
	}
}

func TestScoreClamped(t *testing.T) {
	beach := store.Place{
		Category: store.CategoryBeaches,
		Rating:   5.0,
		Tags:     []string{"sunset", "swim", "sand", "bike path"},
		Price:    store.PriceFree,
	}
	everything := NewProfile([]string{
		PromptSunsetViews, PromptBeachDay, PromptSwimmingHoles, PromptBikeRides,
	}, nil)
	if got := Score(beach, everything); got > 10 || got < 1 {
		t.Errorf("score %d escaped the 1..10 range", got)
	}
}

func TestProfile(t *testing.T) {
	p := NewProfile([]string{PromptBeachDay}, []string{PromptBeachDay, PromptLiveMusic})
	if !p.Likes(PromptBeachDay) {
		t.Error("liked set must win when a prompt appears in both")
	}
	if p.Dislikes(PromptBeachDay) {
		t.Error("prompt in both sets must not stay disliked")
	}
	if !p.Dislikes(PromptLiveMusic) {
		t.Error("disliked-only prompt lost")
	}
	if !p.HasTrainingData() {
		t.Error("profile with answers reports no training data")
	}
	if NewProfile(nil, nil).HasTrainingData() {
		t.Error("empty profile reports training data")
	}
}

func TestCompleteness(t *testing.T) {
	liked := []string{PromptBeachDay, PromptLiveMusic, PromptCoffeeCrawl}
	disliked := []string{PromptLongHikes, PromptCraftBeer, PromptKaraokeNights}
	p := NewProfile(liked, disliked)
	want := 6.0 / float64(TotalTrainingPrompts)
	if got := p.Completeness(); got != want {
		t.Errorf("Completeness = %f, want %f", got, want)
	}
}

func TestKnownPrompt(t *testing.T) {
	if !KnownPrompt(PromptSunsetViews) {
		t.Error("deck prompt not recognized")
	}
	if KnownPrompt("jet-skiing") {
		t.Error("unknown id accepted")
	}
}
