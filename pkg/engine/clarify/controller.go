// Package clarify runs the short question dialog used when a recommendation
// request arrives without enough structure. Questions always follow the
// fixed order vibe → budget → timing → social; an answer is applied to
// whichever still-missing field it parses as, not the one that was asked.
package clarify

import (
	"hash/fnv"

	"townmate-be/pkg/engine/findctx"
	"townmate-be/pkg/fuzzy"
	"townmate-be/pkg/store"
)

// Begin opens a clarification session for an under-specified request,
// pre-filling whatever the seed utterance already carried.
func Begin(seed string) *store.Clarification {
	c := &store.Clarification{Seed: seed}
	ext := findctx.Extract(seed)
	c.Vibe = ext.Vibe
	c.Budget = ext.Budget
	c.Timing = ext.Timing
	c.Social = ext.Social
	return c
}

// Extra vocabulary accepted only inside the dialog, where bare answers like
// "whatever" or "doesn't matter" are natural. Declaration order is match
// order, so a reply hitting two values resolves the same way every time.
type answerOption struct {
	value string
	words []string
}

var (
	vibeAnswers = []answerOption{
		{"outdoor", []string{"outdoor", "outdoors", "outdoorsy", "outside"}},
		{"indoor", []string{"indoor", "indoors", "inside"}},
		{"food", []string{"food", "eat", "eating", "hungry"}},
		{"mix", []string{"mix", "both", "either", "whatever", "surprise"}},
	}
	budgetAnswers = []answerOption{
		{"free", []string{"free", "nothing", "broke"}},
		{"cheap", []string{"cheap", "budget", "affordable"}},
		{"flexible", []string{"flexible", "anything", "whatever", "doesnt matter", "no limit", "open"}},
	}
	timingAnswers = []answerOption{
		{"now", []string{"now", "immediately"}},
		{"quick", []string{"quick", "short", "hour"}},
		{"tonight", []string{"tonight", "evening", "later"}},
		{"weekend", []string{"weekend", "saturday", "sunday"}},
	}
	socialAnswers = []answerOption{
		{"solo", []string{"solo", "alone", "myself"}},
		{"date", []string{"date", "romantic", "partner"}},
		{"group", []string{"group", "friends", "crew", "everyone"}},
	}
)

// Apply parses a reply against every still-missing field and fills all
// matches. Returns true if at least one field was filled.
func Apply(c *store.Clarification, reply string) bool {
	ext := findctx.Extract(reply)
	applied := false

	if c.Vibe == "" {
		if v := pickAnswer(reply, ext.Vibe, vibeAnswers); v != "" {
			c.Vibe = v
			applied = true
		}
	}
	if c.Budget == "" {
		if v := pickAnswer(reply, ext.Budget, budgetAnswers); v != "" {
			c.Budget = v
			applied = true
		}
	}
	if c.Timing == "" {
		if v := pickAnswer(reply, ext.Timing, timingAnswers); v != "" {
			c.Timing = v
			applied = true
		}
	}
	if c.Social == "" {
		if v := pickAnswer(reply, ext.Social, socialAnswers); v != "" {
			c.Social = v
			applied = true
		}
	}
	return applied
}

// pickAnswer prefers the full extractor's verdict, then the dialog-only
// vocabulary in declaration order with typo tolerance.
func pickAnswer(reply, extracted string, answers []answerOption) string {
	if extracted != "" {
		return extracted
	}
	for _, opt := range answers {
		for _, w := range opt.words {
			if fuzzy.PhraseMatch(reply, w) {
				return opt.value
			}
		}
	}
	return ""
}

var questions = []struct {
	missing  func(*store.Clarification) bool
	variants []string
}{
	{
		func(c *store.Clarification) bool { return c.Vibe == "" },
		[]string{
			"Are you feeling outdoors, indoors, or mostly just food?",
			"First things first — outdoor adventure, indoor hangout, or food mission?",
		},
	},
	{
		func(c *store.Clarification) bool { return c.Budget == "" },
		[]string{
			"What's the budget — free, cheap, or doesn't matter?",
			"Spending-wise: keeping it free, cheap, or flexible?",
		},
	},
	{
		func(c *store.Clarification) bool { return c.Timing == "" },
		[]string{
			"When is this happening — right now, something quick, tonight, or the weekend?",
			"Timing check: now, a quick outing, tonight, or weekend plans?",
		},
	},
	{
		func(c *store.Clarification) bool { return c.Social == "" },
		[]string{
			"Who's coming — just you, a date, or the whole group?",
			"Is this a solo thing, a date, or a group outing?",
		},
	},
}

// Next returns the next question in fixed order, or ok=false once all four
// dimensions are filled. Phrasing varies deterministically with the seed
// utterance so identical sessions read identically in tests.
func Next(c *store.Clarification) (string, bool) {
	for _, step := range questions {
		if step.missing(c) {
			idx := int(seedHash(c.Seed)) % len(step.variants)
			return step.variants[idx], true
		}
	}
	return "", false
}

func seedHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// BuildContext merges the answered dimensions over the context extracted
// from the seed utterance; seed-level detail (meal, weather, wants) is kept.
func BuildContext(c *store.Clarification) findctx.Context {
	ctx := findctx.Extract(c.Seed)
	answered := findctx.Context{
		Vibe:   c.Vibe,
		Budget: c.Budget,
		Timing: c.Timing,
		Social: c.Social,
	}
	return findctx.Merge(answered, ctx)
}
