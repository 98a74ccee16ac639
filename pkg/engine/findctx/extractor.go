// Package findctx turns a free-text utterance into a partially-filled
// filter. Each field has its own keyword family and is extracted
// independently; an absent field means "unconstrained", never "excluded".
package findctx

import "strings"

// Context is the transient, per-utterance filter. The zero value carries no
// constraints at all.
type Context struct {
	Vibe       string // outdoor | indoor | food | mix
	Budget     string // free | cheap | flexible
	Social     string // solo | date | group
	Timing     string // now | quick | tonight | weekend
	Weather    string // sunny | rainy | windy | hot | cold
	Meal       string // breakfast | brunch | lunch | dinner | late-night | coffee
	HikeLength string // short | long
	Effort     string // chill | active
	Transport  string // walk | bike | bus | car
	WantsSwim  bool
	WantsTan   bool
	NearOnly   bool
}

// family maps one field value to the vocabulary that selects it. Families
// within a field are tried in declaration order; the first hit wins.
type family struct {
	value string
	words []string
}

var vibeFamilies = []family{
	{"outdoor", []string{"outdoor", "outside", "nature", "fresh air", "hike", "trail", "beach", "park"}},
	{"indoor", []string{"indoor", "inside", "museum", "gallery", "rainy day", "cozy", "cosy"}},
	{"food", []string{"food", "eat", "hungry", "restaurant", "dinner", "lunch", "brunch", "breakfast", "snack", "taco", "pizza", "sushi", "burger", "coffee", "dessert"}},
	{"mix", []string{"mix", "bit of everything", "whatever", "surprise me", "anything"}},
}

var budgetFamilies = []family{
	{"free", []string{"free", "no money", "broke", "zero dollars", "without spending"}},
	{"cheap", []string{"cheap", "budget", "affordable", "inexpensive", "student budget", "low cost"}},
	{"flexible", []string{"any price", "price doesn't matter", "splurge", "treat myself", "fancy", "nice place"}},
}

var socialFamilies = []family{
	{"date", []string{"date", "romantic", "girlfriend", "boyfriend", "partner", "anniversary", "two of us"}},
	{"group", []string{"group", "friends", "crew", "everyone", "roommates", "club", "team", "with the boys", "with the girls"}},
	{"solo", []string{"solo", "alone", "by myself", "just me", "me time"}},
}

var timingFamilies = []family{
	{"now", []string{"right now", "now", "immediately", "asap"}},
	{"quick", []string{"quick", "short on time", "an hour", "fast", "in a hurry", "before class"}},
	{"tonight", []string{"tonight", "this evening", "after dark", "evening"}},
	{"weekend", []string{"weekend", "saturday", "sunday"}},
}

var weatherFamilies = []family{
	{"rainy", []string{"rainy", "raining", "rain", "wet", "drizzle", "storm"}},
	{"sunny", []string{"sunny", "sunshine", "clear day", "beautiful out"}},
	{"windy", []string{"windy", "breezy", "gusty"}},
	{"hot", []string{"hot", "heat", "scorching", "boiling"}},
	{"cold", []string{"cold", "freezing", "chilly weather"}},
}

var mealFamilies = []family{
	{"breakfast", []string{"breakfast", "morning food", "pancakes", "eggs"}},
	{"brunch", []string{"brunch", "mimosa"}},
	{"lunch", []string{"lunch", "midday"}},
	{"late-night", []string{"late night", "midnight", "after midnight", "late-night"}},
	{"dinner", []string{"dinner", "tonight's meal", "supper"}},
	{"coffee", []string{"coffee", "espresso", "latte", "cafe", "caffeine"}},
}

var hikeFamilies = []family{
	{"long", []string{"long hike", "all day hike", "big hike", "full day"}},
	{"short", []string{"short hike", "quick hike", "easy hike", "small hike"}},
}

var effortFamilies = []family{
	{"active", []string{"active", "workout", "exercise", "sweat", "energetic", "sporty"}},
	{"chill", []string{"chill", "relax", "relaxing", "low key", "lowkey", "lazy", "mellow", "laid back"}},
}

var transportFamilies = []family{
	{"walk", []string{"walking distance", "on foot", "walkable", "walk there"}},
	{"bike", []string{"bike", "biking", "cycle", "cycling"}},
	{"bus", []string{"bus", "transit", "public transport"}},
	{"car", []string{"drive", "driving", "car", "road trip"}},
}

var swimWords = []string{"swim", "swimming", "dip", "in the water"}
var tanWords = []string{"tan", "tanning", "sunbathe", "sunbathing", "lay out"}
var nearWords = []string{"near me", "nearby", "close by", "around here", "close to me", "walking distance"}

// Extract parses the utterance into a Context. It never fails; fields whose
// vocabulary does not appear stay empty. Fields are evaluated in a fixed
// order so extraction is deterministic.
func Extract(utterance string) Context {
	lower := strings.ToLower(utterance)

	ctx := Context{
		Vibe:       firstMatch(lower, vibeFamilies),
		Budget:     firstMatch(lower, budgetFamilies),
		Social:     firstMatch(lower, socialFamilies),
		Timing:     firstMatch(lower, timingFamilies),
		Weather:    firstMatch(lower, weatherFamilies),
		Meal:       firstMatch(lower, mealFamilies),
		HikeLength: firstMatch(lower, hikeFamilies),
		Effort:     firstMatch(lower, effortFamilies),
		Transport:  firstMatch(lower, transportFamilies),
	}
	ctx.WantsSwim = containsAny(lower, swimWords)
	ctx.WantsTan = containsAny(lower, tanWords)
	ctx.NearOnly = containsAny(lower, nearWords)
	return ctx
}

// HasSignal reports whether the utterance carried enough structure to skip
// clarification. Any single field present is sufficient.
func (c Context) HasSignal() bool {
	return c.Vibe != "" || c.Budget != "" || c.Social != "" || c.Timing != "" ||
		c.Weather != "" || c.Meal != "" || c.HikeLength != "" || c.Effort != "" ||
		c.Transport != "" || c.WantsSwim || c.WantsTan || c.NearOnly
}

// Merge overlays add onto base: fields already set in base win, since base
// is what the user said first.
func Merge(base, add Context) Context {
	out := base
	if out.Vibe == "" {
		out.Vibe = add.Vibe
	}
	if out.Budget == "" {
		out.Budget = add.Budget
	}
	if out.Social == "" {
		out.Social = add.Social
	}
	if out.Timing == "" {
		out.Timing = add.Timing
	}
	if out.Weather == "" {
		out.Weather = add.Weather
	}
	if out.Meal == "" {
		out.Meal = add.Meal
	}
	if out.HikeLength == "" {
		out.HikeLength = add.HikeLength
	}
	if out.Effort == "" {
		out.Effort = add.Effort
	}
	if out.Transport == "" {
		out.Transport = add.Transport
	}
	out.WantsSwim = out.WantsSwim || add.WantsSwim
	out.WantsTan = out.WantsTan || add.WantsTan
	out.NearOnly = out.NearOnly || add.NearOnly
	return out
}

func firstMatch(lower string, families []family) string {
	for _, f := range families {
		if containsAny(lower, f.words) {
			return f.value
		}
	}
	return ""
}

// containsAny matches multi-word phrases by substring and single words by
// whole-word membership, so "now" does not fire inside "know".
func containsAny(s string, words []string) bool {
	var fields []string
	for _, w := range words {
		if strings.Contains(w, " ") || strings.Contains(w, "-") {
			if strings.Contains(s, w) {
				return true
			}
			continue
		}
		if fields == nil {
			fields = tokenize(s)
		}
		for _, f := range fields {
			if f == w {
				return true
			}
		}
	}
	return false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}
