package intent

import "townmate-be/pkg/store"

// Rule is one entry of the declarative keyword table: any of the patterns
// matching (fuzzily) selects the rule. Replies may carry a navigation
// suggestion. The table is data; the matcher stays generic and testable.
type Rule struct {
	Name     string
	Patterns []string
	Replies  []string
	Nav      *store.Navigation
}

// Rules is loaded once and matched in order; earlier rules win ties.
var Rules = []Rule{
	{
		Name:     "greeting",
		Patterns: []string{"hello", "hi there", "hey", "good morning", "good evening", "what's up"},
		Replies: []string{
			"Hey! Ask me for something to do, a place to eat, or tell me to book you a table.",
			"Hi! I know this town pretty well — want food, plans, or a reservation?",
		},
	},
	{
		Name:     "thanks",
		Patterns: []string{"thank you", "thanks", "appreciate it"},
		Replies: []string{
			"Anytime. Come back when you're hungry or bored.",
			"Happy to help!",
		},
	},
	{
		Name:     "explore",
		Patterns: []string{"explore", "browse places", "see the map", "look around"},
		Replies: []string{
			"The Explore tab has the full curated map — every spot we track.",
		},
		Nav: &store.Navigation{TargetView: "explore", Label: "Open Explore"},
	},
	{
		Name:     "groups",
		Patterns: []string{"start a jam", "make a group", "invite friends", "group hangout"},
		Replies: []string{
			"Jams live in the Jams tab — start one and your friends can pile in.",
		},
		Nav: &store.Navigation{TargetView: "jams", Label: "Open Jams"},
	},
	{
		Name:     "plans",
		Patterns: []string{"my plans", "show itinerary", "saved plans", "what did i plan"},
		Replies: []string{
			"Your itineraries are under Plans.",
		},
		Nav: &store.Navigation{TargetView: "plans", Label: "Open Plans"},
	},
	{
		Name:     "training",
		Patterns: []string{"train my taste", "teach you my taste", "preference training", "tune my picks"},
		Replies: []string{
			"Swipe through the taste cards and my picks get sharper.",
		},
		Nav: &store.Navigation{TargetView: "training", Label: "Train my taste"},
	},
	{
		Name:     "help",
		Patterns: []string{"help", "what can you do", "how does this work"},
		Replies: []string{
			"I can recommend places, answer \"what should I do\", remember your last shortlist so you can say \"the second one\", and draft restaurant reservations.",
		},
	},
	{
		Name:     "hours",
		Patterns: []string{"opening hours", "when does it open", "when do they close"},
		Replies: []string{
			"Opening hours live on each place's detail page — tap a pick to see them.",
		},
	},
	{
		Name:     "weather smalltalk",
		Patterns: []string{"nice weather", "lovely day", "gloomy today"},
		Replies: []string{
			"If the weather's on your mind, ask me for something to match it — \"rainy day plans\" works.",
		},
	},
	{
		Name:     "goodbye",
		Patterns: []string{"bye", "goodbye", "see you", "later"},
		Replies: []string{
			"See you around town!",
		},
	},
}
