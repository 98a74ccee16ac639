// Package prefs holds the user's like/dislike training signal and the
// place affinity scorer built on top of it.
package prefs

// Training prompt ids. The training UI shows these as swipeable cards; the
// engine only ever sees the accumulated liked/disliked id sets.
const (
	PromptSunsetViews      = "sunset-views"
	PromptLiveMusic        = "live-music"
	PromptCoffeeCrawl      = "coffee-crawl"
	PromptLongHikes        = "long-hikes"
	PromptBeachDay         = "beach-day"
	PromptStudyCafes       = "study-cafes"
	PromptStreetFood       = "street-food"
	PromptFineDining       = "fine-dining"
	PromptMuseumAfternoons = "museum-afternoons"
	PromptLateNightEats    = "late-night-eats"
	PromptSwimmingHoles    = "swimming-holes"
	PromptCraftBeer        = "craft-beer"
	PromptFarmersMarkets   = "farmers-markets"
	PromptBikeRides        = "bike-rides"
	PromptBudgetEats       = "budget-eats"
	PromptSplurgeNights    = "splurge-nights"
	PromptKaraokeNights    = "karaoke-nights"
	PromptBoardGameBars    = "board-game-bars"
)

// TotalTrainingPrompts is the size of the fixed training deck; completeness
// is measured against it.
const TotalTrainingPrompts = 18

var trainingDeck = map[string]struct{}{
	PromptSunsetViews:      {},
	PromptLiveMusic:        {},
	PromptCoffeeCrawl:      {},
	PromptLongHikes:        {},
	PromptBeachDay:         {},
	PromptStudyCafes:       {},
	PromptStreetFood:       {},
	PromptFineDining:       {},
	PromptMuseumAfternoons: {},
	PromptLateNightEats:    {},
	PromptSwimmingHoles:    {},
	PromptCraftBeer:        {},
	PromptFarmersMarkets:   {},
	PromptBikeRides:        {},
	PromptBudgetEats:       {},
	PromptSplurgeNights:    {},
	PromptKaraokeNights:    {},
	PromptBoardGameBars:    {},
}

// KnownPrompt reports whether id names a card in the training deck.
func KnownPrompt(id string) bool {
	_, ok := trainingDeck[id]
	return ok
}

// Profile is a user's accumulated training signal. It is read once per
// session and never mutated by the engine.
type Profile struct {
	liked    map[string]struct{}
	disliked map[string]struct{}
}

// NewProfile builds a profile from the persisted id sets. A prompt present
// in both sets counts as liked; the training UI prevents that state but old
// persisted data may still carry it.
func NewProfile(liked, disliked []string) Profile {
	p := Profile{
		liked:    make(map[string]struct{}, len(liked)),
		disliked: make(map[string]struct{}, len(disliked)),
	}
	for _, id := range disliked {
		p.disliked[id] = struct{}{}
	}
	for _, id := range liked {
		p.liked[id] = struct{}{}
		delete(p.disliked, id)
	}
	return p
}

// Likes reports whether the prompt id is in the liked set.
func (p Profile) Likes(id string) bool {
	_, ok := p.liked[id]
	return ok
}

// Dislikes reports whether the prompt id is in the disliked set.
func (p Profile) Dislikes(id string) bool {
	_, ok := p.disliked[id]
	return ok
}

// HasTrainingData reports whether the user answered any training prompt.
func (p Profile) HasTrainingData() bool {
	return len(p.liked)+len(p.disliked) > 0
}

// Completeness is the fraction of the training deck the user has answered.
func (p Profile) Completeness() float64 {
	return float64(len(p.liked)+len(p.disliked)) / float64(TotalTrainingPrompts)
}
