package prefs

import (
	"math"

	"townmate-be/pkg/store"
)

// affinity maps a training prompt to the catalog surface it speaks for.
// A liked prompt boosts matching places; a disliked prompt subtracts the
// same amount.
type affinity struct {
	categories []string
	features   []string
	tagParts   []string
	weight     float64
}

var affinities = map[string]affinity{
	PromptSunsetViews: {
		categories: []string{store.CategoryViewpoints, store.CategoryBeaches},
		tagParts:   []string{"sunset", "view"},
		weight:     1.5,
	},
	PromptLiveMusic: {
		categories: []string{store.CategoryLiveMusic},
		features:   []string{"live music"},
		tagParts:   []string{"music", "band"},
		weight:     1.5,
	},
	PromptCoffeeCrawl: {
		categories: []string{store.CategoryCafes},
		tagParts:   []string{"coffee", "espresso"},
		weight:     1.5,
	},
	PromptLongHikes: {
		categories: []string{store.CategoryHikes},
		tagParts:   []string{"trail", "summit"},
		weight:     1.5,
	},
	PromptBeachDay: {
		categories: []string{store.CategoryBeaches},
		tagParts:   []string{"beach", "sand"},
		weight:     1.5,
	},
	PromptStudyCafes: {
		categories: []string{store.CategoryStudySpots, store.CategoryCafes},
		features:   []string{"wifi", "outlets"},
		tagParts:   []string{"study", "quiet"},
		weight:     1.2,
	},
	PromptStreetFood: {
		categories: []string{store.CategoryRestaurants, store.CategoryMarkets},
		tagParts:   []string{"street food", "taco", "food truck"},
		weight:     1.3,
	},
	PromptFineDining: {
		categories: []string{store.CategoryRestaurants},
		features:   []string{"reservations"},
		tagParts:   []string{"fine dining", "tasting"},
		weight:     1.3,
	},
	PromptMuseumAfternoons: {
		categories: []string{store.CategoryMuseums},
		tagParts:   []string{"art", "exhibit", "history"},
		weight:     1.3,
	},
	PromptLateNightEats: {
		categories: []string{store.CategoryRestaurants},
		features:   []string{"open late"},
		tagParts:   []string{"late night", "24 hour"},
		weight:     1.2,
	},
	PromptSwimmingHoles: {
		categories: []string{store.CategoryBeaches},
		tagParts:   []string{"swim", "cove", "water"},
		weight:     1.3,
	},
	PromptCraftBeer: {
		categories: []string{store.CategoryBars},
		tagParts:   []string{"brewery", "beer", "taproom"},
		weight:     1.3,
	},
	PromptFarmersMarkets: {
		categories: []string{store.CategoryMarkets},
		tagParts:   []string{"market", "produce", "local"},
		weight:     1.2,
	},
	PromptBikeRides: {
		categories: []string{store.CategoryParks, store.CategoryHikes},
		tagParts:   []string{"bike", "path"},
		weight:     1.0,
	},
	PromptKaraokeNights: {
		categories: []string{store.CategoryBars, store.CategoryActivities},
		tagParts:   []string{"karaoke"},
		weight:     1.2,
	},
	PromptBoardGameBars: {
		categories: []string{store.CategoryBars, store.CategoryActivities},
		tagParts:   []string{"board game", "arcade", "trivia"},
		weight:     1.2,
	},
}

// Score computes the 1..10 affinity of a place for a profile. It is a pure
// function of its arguments so the ranker can recompute it per candidate.
//
// Without training data the score is a monotonic function of rating alone.
// With training data it starts at a baseline of 5, adds a boost per liked
// prompt whose surface covers this place, subtracts the symmetric penalty
// per disliked prompt, applies the budget/splurge/transport flags derived
// from the deck, and finishes with a small rating-centered bonus.
func Score(p store.Place, prof Profile) int {
	if !prof.HasTrainingData() {
		// Rating alone, shifted onto the shared scale. Kept below the
		// trained-profile range so a liked category never scores worse
		// than the untrained fallback.
		return clampScore(math.Round(p.Rating + 2))
	}

	score := 5.0
	for id, aff := range affinities {
		if !aff.covers(p) {
			continue
		}
		if prof.Likes(id) {
			score += aff.weight
		}
		if prof.Dislikes(id) {
			score -= aff.weight
		}
	}

	// Budget and splurge prompts speak about price, not category.
	if prof.Likes(PromptBudgetEats) && p.Price <= store.PriceCheap {
		score += 0.8
	}
	if prof.Dislikes(PromptBudgetEats) && p.Price <= store.PriceCheap {
		score -= 0.8
	}
	if prof.Likes(PromptSplurgeNights) && p.Price >= store.PriceModerate {
		score += 0.8
	}
	if prof.Dislikes(PromptSplurgeNights) && p.Price >= store.PriceModerate {
		score -= 0.8
	}
	// Bike preference favors anywhere reachable on a path.
	if prof.Likes(PromptBikeRides) && p.HasTag("bike") {
		score += 0.5
	}

	// Rating-centered bonus: 2.5 is the catalog midpoint.
	score += (p.Rating - 2.5) * 0.4

	return clampScore(math.Round(score))
}

func (a affinity) covers(p store.Place) bool {
	for _, c := range a.categories {
		if p.Category == c {
			return true
		}
	}
	for _, f := range a.features {
		if p.HasFeature(f) {
			return true
		}
	}
	for _, t := range a.tagParts {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

func clampScore(v float64) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return int(v)
}
