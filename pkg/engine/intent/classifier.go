// Package intent selects exactly one behavior per utterance. Selection is
// pure: session flags come in as input and no state is touched. Priority
// order matters — active flows are checked first so a mid-dialog answer is
// never misrouted to generic chat, and reservation phrasing outranks
// recommendation phrasing when both would apply.
package intent

import (
	"strings"

	"townmate-be/pkg/engine/findctx"
	"townmate-be/pkg/engine/recmem"
	"townmate-be/pkg/fuzzy"
)

// Kind is the selected behavior for a turn.
type Kind int

const (
	KindReservationReply Kind = iota // answer inside a pending draft
	KindClarifyReply                 // answer inside a clarification dialog
	KindFollowUp                     // reference into recommendation memory
	KindReservation                  // new reservation intent
	KindRecommendation               // new find-something intent
	KindNearMe                       // "what's near me"
	KindIndecision                   // "I don't know what to do"
	KindRule                         // fixed keyword table hit
	KindFallback                     // generic catch-all
)

// State is the slice of session state the classifier needs.
type State struct {
	DraftPending  bool
	ClarifyActive bool
	HasMemory     bool
}

// Classification is the selection result. Rule is set for KindRule;
// NeedsClarify qualifies KindRecommendation; FollowUp carries the parsed
// reference for KindFollowUp.
type Classification struct {
	Kind         Kind
	Rule         *Rule
	NeedsClarify bool
	FollowUp     *recmem.FollowUp
}

var reservationPhrases = []string{
	"book a table", "make a reservation", "reserve a table", "book me a table",
	"get us a table", "book dinner", "reserve for", "make a booking",
}

var recommendationPhrases = []string{
	"recommend", "suggest", "find me", "find us", "where should", "what should i do",
	"something to do", "somewhere to go", "what's good", "any ideas", "show me somewhere",
	"i'm hungry", "we're hungry", "place to eat", "take me somewhere",
}

var nearMePhrases = []string{
	"near me", "nearby", "around here", "close by", "walking distance from me",
}

var indecisionPhrases = []string{
	"i don't know", "i dont know", "no idea", "can't decide", "cant decide",
	"i'm bored", "im bored", "whatever", "you pick", "surprise me", "anything",
}

// Classify selects the behavior for an utterance given the session state.
func Classify(utterance string, st State) Classification {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	words := len(strings.Fields(lower))

	// 1. Pending flows own the turn. Reservation wins over clarification
	// when both are somehow active, and a brand-new reservation phrasing
	// restarts the flow rather than being treated as an answer.
	if st.DraftPending {
		if matchesAny(lower, reservationPhrases) {
			return Classification{Kind: KindReservation}
		}
		return Classification{Kind: KindReservationReply}
	}
	if st.ClarifyActive {
		// A fully specified request mid-dialog abandons clarification.
		if matchesAny(lower, recommendationPhrases) && findctx.Extract(utterance).HasSignal() {
			return Classification{Kind: KindRecommendation}
		}
		if matchesAny(lower, reservationPhrases) {
			return Classification{Kind: KindReservation}
		}
		return Classification{Kind: KindClarifyReply}
	}

	// 2. Follow-ups against the remembered shortlist. Bare qualifiers only
	// count when the utterance is terse; "find me cheap eats" is a new
	// request, "cheaper" is a follow-up.
	if st.HasMemory {
		if f := recmem.Parse(utterance); f != nil {
			if f.Qualifier == "" || words <= 3 {
				return Classification{Kind: KindFollowUp, FollowUp: f}
			}
		}
	}

	// 3. Explicit reservation phrasing.
	if matchesAny(lower, reservationPhrases) {
		return Classification{Kind: KindReservation}
	}

	// 4. Near-me, indecision, then general recommendation phrasing.
	if matchesAny(lower, nearMePhrases) {
		return Classification{Kind: KindNearMe}
	}
	if matchesAny(lower, indecisionPhrases) {
		return Classification{Kind: KindIndecision}
	}
	if matchesAny(lower, recommendationPhrases) || findctx.Extract(utterance).HasSignal() {
		needs := !findctx.Extract(utterance).HasSignal()
		return Classification{Kind: KindRecommendation, NeedsClarify: needs}
	}

	// 5. Fixed keyword table, fuzzily matched.
	for i := range Rules {
		if fuzzy.MatchAny(utterance, Rules[i].Patterns) {
			return Classification{Kind: KindRule, Rule: &Rules[i]}
		}
	}

	return Classification{Kind: KindFallback}
}

// matchesAny is phrase containment with typo tolerance: multi-word phrases
// must have all significant words present; single words go through the edit
// budget.
func matchesAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return fuzzy.MatchAny(lower, phrases)
}
