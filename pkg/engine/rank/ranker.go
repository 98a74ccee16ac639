// Package rank produces the ordered shortlist behind every recommendation.
// Hard filters derived from the find context run first; survivors are scored
// with a weighted sum dominated by the preference score.
package rank

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"time"

	"townmate-be/pkg/engine/findctx"
	"townmate-be/pkg/engine/prefs"
	"townmate-be/pkg/geo"
	"townmate-be/pkg/store"
)

// DefaultLimit is the shortlist size returned to the conversation.
const DefaultLimit = 3

// Request carries everything a ranking pass needs. Seed doubles as the
// deterministic tiebreak source so identical requests rank identically.
type Request struct {
	Ctx     findctx.Context
	Profile prefs.Profile
	Base    *geo.Point
	Seed    string
	Now     time.Time
	Limit   int
}

// Result is either a non-empty shortlist or an explicit no-match naming the
// dimension to loosen. The ranker never silently broadens filters itself.
type Result struct {
	Picks   []store.Place
	NoMatch bool
	// Loosen names the context dimension whose filter emptied the pool.
	Loosen string
}

// Category sets per filter dimension.
var (
	outdoorCategories = set(store.CategoryHikes, store.CategoryBeaches, store.CategoryParks, store.CategoryViewpoints)
	indoorCategories  = set(store.CategoryMuseums, store.CategoryCafes, store.CategoryStudySpots, store.CategoryBars, store.CategoryActivities, store.CategoryLiveMusic, store.CategoryRestaurants)
	foodCategories    = set(store.CategoryRestaurants, store.CategoryCafes, store.CategoryMarkets)
	dateCategories    = set(store.CategoryRestaurants, store.CategoryViewpoints, store.CategoryLiveMusic, store.CategoryBeaches, store.CategoryMuseums, store.CategoryBars)
	groupCategories   = set(store.CategoryBars, store.CategoryActivities, store.CategoryBeaches, store.CategoryParks, store.CategoryLiveMusic, store.CategoryRestaurants, store.CategoryMarkets)
	soloCategories    = set(store.CategoryCafes, store.CategoryStudySpots, store.CategoryHikes, store.CategoryMuseums, store.CategoryParks, store.CategoryViewpoints)
	activeCategories  = set(store.CategoryHikes, store.CategoryBeaches, store.CategoryActivities, store.CategoryParks)
	hotCategories     = set(store.CategoryBeaches, store.CategoryParks, store.CategoryCafes, store.CategoryMuseums)
)

// Distance ceilings in km per transport mode.
var transportCeilingKm = map[string]float64{
	"walk": 2.0,
	"bike": 6.0,
	"bus":  12.0,
}

const nearOnlyCeilingKm = 2.5

// Rank filters the catalog by the request's hard constraints, scores the
// survivors and returns the top picks. Zero survivors yield an explicit
// no-match result.
func Rank(catalog []store.Place, req Request) Result {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	pool := catalog
	var emptiedBy string
	apply := func(dimension string, keep func(store.Place) bool) {
		if len(pool) == 0 || emptiedBy != "" {
			return
		}
		var next []store.Place
		for _, p := range pool {
			if keep(p) {
				next = append(next, p)
			}
		}
		if len(next) == 0 {
			emptiedBy = dimension
			return
		}
		pool = next
	}

	ctx := req.Ctx
	if ctx.Vibe != "" {
		apply("vibe", func(p store.Place) bool { return vibeAllows(ctx.Vibe, p) })
	}
	if ctx.Meal != "" {
		apply("meal", func(p store.Place) bool { return mealAllows(ctx.Meal, p) })
	}
	if ctx.Budget != "" {
		apply("budget", func(p store.Place) bool { return budgetAllows(ctx.Budget, p) })
	}
	if ctx.Social != "" {
		apply("social setting", func(p store.Place) bool { return socialAllows(ctx.Social, p) })
	}
	if ctx.Weather != "" {
		apply("weather", func(p store.Place) bool { return weatherAllows(ctx.Weather, p) })
	}
	if ctx.Effort != "" {
		apply("effort", func(p store.Place) bool { return effortAllows(ctx.Effort, p) })
	}
	if ctx.HikeLength != "" {
		apply("hike length", func(p store.Place) bool { return hikeAllows(ctx.HikeLength, p) })
	}
	if ctx.WantsSwim {
		apply("swimming", func(p store.Place) bool {
			return p.Category == store.CategoryBeaches || p.HasTag("swim") || p.HasTag("pool")
		})
	}
	if ctx.WantsTan {
		apply("sunbathing", func(p store.Place) bool {
			return p.Category == store.CategoryBeaches || p.Category == store.CategoryParks
		})
	}
	if ctx.Timing == "quick" || ctx.Timing == "now" {
		apply("time available", func(p store.Place) bool {
			hrs := geo.ParseHours(p.DurationLabel)
			return hrs == 0 || hrs <= 1.25
		})
	}
	if req.Base != nil {
		if ceiling, ok := transportCeilingKm[ctx.Transport]; ok {
			apply("transport range", func(p store.Place) bool {
				return geo.DistanceKm(*req.Base, geo.Point{Lat: p.Lat, Lng: p.Lng}) <= ceiling
			})
		}
		if ctx.NearOnly {
			apply("distance", func(p store.Place) bool {
				return geo.DistanceKm(*req.Base, geo.Point{Lat: p.Lat, Lng: p.Lng}) <= nearOnlyCeilingKm
			})
		}
	}

	if emptiedBy != "" {
		return Result{NoMatch: true, Loosen: emptiedBy}
	}
	if len(pool) == 0 {
		return Result{NoMatch: true, Loosen: "request"}
	}

	// Deterministic tiebreak: seed the jitter from the prompt so repeated
	// identical requests vary phrasing upstream, not ordering.
	rng := rand.New(rand.NewSource(int64(hashSeed(req.Seed))))

	type scored struct {
		place store.Place
		total float64
	}
	ranked := make([]scored, 0, len(pool))
	for _, p := range pool {
		total := float64(prefs.Score(p, req.Profile)) * 3.0
		total += p.Rating * 1.5
		if req.Base != nil {
			km := geo.DistanceKm(*req.Base, geo.Point{Lat: p.Lat, Lng: p.Lng})
			decay := 8.0 - 1.5*km
			if decay < 0 {
				decay = 0
			}
			total += decay
		}
		if ctx.Timing == "quick" || ctx.Timing == "now" {
			if hrs := geo.ParseHours(p.DurationLabel); hrs > 0 {
				shorter := 4.0 - 2.0*hrs
				if shorter < 0 {
					shorter = 0
				}
				total += shorter
			}
		}
		total += timeOfDayBonus(req.Now, p)
		total += rng.Float64() * 0.5
		ranked = append(ranked, scored{place: p, total: total})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].total > ranked[j].total })

	if limit > len(ranked) {
		limit = len(ranked)
	}
	picks := make([]store.Place, 0, limit)
	for _, s := range ranked[:limit] {
		picks = append(picks, s.place)
	}
	return Result{Picks: picks}
}

func vibeAllows(vibe string, p store.Place) bool {
	switch vibe {
	case "outdoor":
		return outdoorCategories[p.Category]
	case "indoor":
		return indoorCategories[p.Category]
	case "food":
		return foodCategories[p.Category]
	default: // mix
		return true
	}
}

func budgetAllows(budget string, p store.Place) bool {
	switch budget {
	case "free":
		return p.Price == store.PriceFree
	case "cheap":
		return p.Price <= store.PriceCheap
	default: // flexible
		return true
	}
}

func socialAllows(social string, p store.Place) bool {
	switch social {
	case "date":
		return dateCategories[p.Category]
	case "group":
		return groupCategories[p.Category]
	case "solo":
		return soloCategories[p.Category]
	}
	return true
}

func weatherAllows(weather string, p store.Place) bool {
	switch weather {
	case "rainy", "cold":
		return indoorCategories[p.Category]
	case "windy":
		return p.Category != store.CategoryBeaches
	case "hot":
		return hotCategories[p.Category]
	default: // sunny
		return true
	}
}

func effortAllows(effort string, p store.Place) bool {
	if effort == "active" {
		return activeCategories[p.Category]
	}
	// chill: anything that is not a workout
	return p.Category != store.CategoryHikes || p.HasTag("easy")
}

func hikeAllows(length string, p store.Place) bool {
	if p.Category != store.CategoryHikes {
		return true
	}
	hrs := geo.ParseHours(p.DurationLabel)
	if hrs == 0 {
		return true
	}
	if length == "short" {
		return hrs <= 1.5
	}
	return hrs >= 1.5
}

func mealAllows(meal string, p store.Place) bool {
	if meal == "coffee" {
		return p.Category == store.CategoryCafes || p.HasTag("coffee")
	}
	if !foodCategories[p.Category] {
		return false
	}
	switch meal {
	case "breakfast", "brunch":
		return p.HasTag(meal) || p.HasTag("breakfast") || p.Category == store.CategoryCafes
	case "late-night":
		return p.HasFeature("open-late") || p.HasTag("late")
	default: // lunch, dinner
		return p.Category == store.CategoryRestaurants || p.Category == store.CategoryMarkets
	}
}

// timeOfDayBonus nudges the ordering toward what the hour suggests: evening
// favors viewpoints, live music and food; morning favors coffee, hikes and
// study spots.
func timeOfDayBonus(now time.Time, p store.Place) float64 {
	hour := now.Hour()
	switch {
	case hour >= 17 || hour < 2:
		switch p.Category {
		case store.CategoryViewpoints, store.CategoryLiveMusic, store.CategoryBars:
			return 2.0
		case store.CategoryRestaurants:
			return 1.5
		case store.CategoryStudySpots, store.CategoryHikes:
			return -1.0
		}
	case hour < 11:
		switch p.Category {
		case store.CategoryCafes, store.CategoryHikes, store.CategoryStudySpots:
			return 2.0
		case store.CategoryBars, store.CategoryLiveMusic:
			return -2.0
		}
	default: // midday
		switch p.Category {
		case store.CategoryBeaches, store.CategoryParks, store.CategoryMarkets:
			return 1.0
		}
	}
	return 0
}

func hashSeed(seed string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return h.Sum32()
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
