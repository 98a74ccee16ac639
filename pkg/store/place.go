package store

import "strings"

// Catalog categories. The curated catalog is small enough that categories
// are a closed set; the engine's filter tables key off these names.
const (
	CategoryCafes       = "Cafes"
	CategoryRestaurants = "Restaurants"
	CategoryBars        = "Bars & Nightlife"
	CategoryHikes       = "Hikes & Trails"
	CategoryBeaches     = "Beaches"
	CategoryParks       = "Parks"
	CategoryViewpoints  = "Viewpoints"
	CategoryMuseums     = "Museums & Galleries"
	CategoryLiveMusic   = "Live Music"
	CategoryStudySpots  = "Study Spots"
	CategoryMarkets     = "Markets"
	CategoryActivities  = "Activities"
)

// Price tiers, ordered. Free < $ < $$ < $$$.
const (
	PriceFree = iota
	PriceCheap
	PriceModerate
	PriceSplurge
)

// Place is the engine's read-only view of a catalog entry. It is mapped from
// the persisted model once per turn and never mutated by the engine.
type Place struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Tags          []string `json:"tags"`
	Features      []string `json:"features"`
	Price         int      `json:"price"`
	Rating        float64  `json:"rating"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	DistanceLabel string   `json:"distance_label"`
	DurationLabel string   `json:"duration_label"`
	Description   string   `json:"description"`
}

// HasTag reports whether any tag contains the given substring.
func (p Place) HasTag(part string) bool {
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), strings.ToLower(part)) {
			return true
		}
	}
	return false
}

// HasFeature reports whether the feature set contains the given entry.
func (p Place) HasFeature(name string) bool {
	for _, f := range p.Features {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// PriceLabel renders the tier the way the app displays it.
func PriceLabel(tier int) string {
	switch tier {
	case PriceFree:
		return "Free"
	case PriceCheap:
		return "$"
	case PriceModerate:
		return "$$"
	default:
		return "$$$"
	}
}
