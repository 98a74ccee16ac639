package reserve

import (
	"fmt"
	"strings"

	"townmate-be/pkg/fuzzy"
	"townmate-be/pkg/store"
)

// Reply classifications for an utterance while a draft is pending.
type ReplyKind int

const (
	ReplyAffirm ReplyKind = iota
	ReplyDecline
	ReplyEdit
)

var affirmPhrases = []string{
	"yes", "yep", "yeah", "sure", "confirm", "book it", "go ahead", "do it",
	"sounds good", "looks good", "correct", "ok", "okay",
}

var declinePhrases = []string{
	"no", "nope", "cancel", "never mind", "nevermind", "forget it", "stop",
	"don't", "scratch that",
}

// ClassifyReply decides how a pending-draft utterance is meant: affirmative
// submits, negative cancels, anything else is treated as an edit.
func ClassifyReply(utterance string) ReplyKind {
	trimmed := strings.TrimSpace(strings.ToLower(utterance))
	words := strings.Fields(trimmed)

	// Short replies get the fuzzy treatment; longer ones only count as a
	// yes/no when they open with one.
	probe := trimmed
	if len(words) > 3 {
		probe = strings.Join(words[:2], " ")
	}
	for _, p := range declinePhrases {
		if fuzzy.PhraseMatch(probe, p) {
			return ReplyDecline
		}
	}
	for _, p := range affirmPhrases {
		if fuzzy.PhraseMatch(probe, p) {
			return ReplyAffirm
		}
	}
	return ReplyEdit
}

// Summary renders the draft for confirmation, naming whatever is still
// missing so the user knows what to fill in.
func Summary(d *store.ReservationDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I have: a table at %s", d.RestaurantName)
	if d.PartySize > 0 {
		fmt.Fprintf(&b, " for %d", d.PartySize)
	}
	if d.ReservationTime != "" {
		fmt.Fprintf(&b, " at %s", d.ReservationTime)
	}
	if d.SpecialRequest != "" {
		fmt.Fprintf(&b, " (%s)", d.SpecialRequest)
	}
	b.WriteString(".")

	var missing []string
	if d.ReservationTime == "" {
		missing = append(missing, "a time")
	}
	if d.PartySize == 0 {
		missing = append(missing, "the party size")
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, " I still need %s.", strings.Join(missing, " and "))
		b.WriteString(" Add details, or say yes to send it as is.")
	} else {
		b.WriteString(" Shall I call them?")
	}
	return b.String()
}

// Complete reports whether the draft has every field the calling service
// needs.
func Complete(d *store.ReservationDraft) bool {
	return d.RestaurantName != "" && d.ReservationTime != "" && d.PartySize > 0
}
