// Package reserve implements the reservation drafting flow: independent
// field parsers, the none → drafted → (confirmed | cancelled) state machine
// and the confirmation wording.
package reserve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"townmate-be/pkg/store"
)

var (
	timePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b|\b(\d{1,2}):(\d{2})\b`)
	// "for 4", "for 4 people", "party of 6", "table for 2"
	partyPattern = regexp.MustCompile(`(?i)\b(?:for|party of|table for)\s+(\d{1,2})\b(?:\s*(?:people|ppl|of us|guests))?`)
	// name sits after "at" (or "book <name>") and before the next
	// field-introducing token
	namePattern = regexp.MustCompile(`\b(?:at|to|At|To)\s+([A-Z][\w'&.-]*(?:\s+[A-Z&][\w'&.-]*)*)`)
	notePattern = regexp.MustCompile(`(?i)(?:note|special request|mention)\s*[:,]?\s+(.+)$`)
)

var noteKeywords = []string{
	"window", "patio", "outside table", "birthday", "anniversary", "quiet",
	"allergy", "allergic", "high chair", "wheelchair",
}

// ParseRestaurantName pulls a venue name out of the utterance. Empty string
// when no name can be extracted; the flow must then ask instead of guessing.
func ParseRestaurantName(utterance string) string {
	if m := namePattern.FindStringSubmatch(utterance); m != nil {
		return cleanName(m[1])
	}
	return ""
}

// ParseTime normalizes the first time mention to "h:mm pm" form. Bare hours
// without am/pm are taken as evening, which is what reservation requests
// almost always mean.
func ParseTime(utterance string) string {
	m := timePattern.FindStringSubmatch(utterance)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		hour, _ := strconv.Atoi(m[1])
		minute := "00"
		if m[2] != "" {
			minute = m[2]
		}
		return fmt.Sprintf("%d:%s %s", hour, minute, strings.ToLower(m[3]))
	}
	hour, _ := strconv.Atoi(m[4])
	suffix := "pm"
	if hour >= 12 {
		if hour > 12 {
			hour -= 12
		}
	}
	return fmt.Sprintf("%d:%s %s", hour, m[5], suffix)
}

// ParsePartySize extracts the headcount; 0 when absent.
func ParsePartySize(utterance string) int {
	if m := partyPattern.FindStringSubmatch(utterance); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// ParseSpecialRequest captures an explicit note ("note: ...") or a known
// request keyword phrase.
func ParseSpecialRequest(utterance string) string {
	if m := notePattern.FindStringSubmatch(utterance); m != nil {
		return strings.TrimSpace(m[1])
	}
	lower := strings.ToLower(utterance)
	for _, kw := range noteKeywords {
		if idx := strings.Index(lower, kw); idx >= 0 {
			// take the clause around the keyword
			clause := utterance[idx:]
			if cut := strings.IndexAny(clause, ".,;"); cut > 0 {
				clause = clause[:cut]
			}
			return strings.TrimSpace(clause)
		}
	}
	return ""
}

// cleanName strips trailing field tokens the name regex may have swallowed,
// e.g. "Sun Sushi For" from "at Sun Sushi for 4".
func cleanName(raw string) string {
	words := strings.Fields(raw)
	stop := map[string]bool{
		"for": true, "at": true, "on": true, "tonight": true, "tomorrow": true,
		"this": true, "next": true, "around": true, "pm": true, "am": true,
	}
	var kept []string
	for _, w := range words {
		if stop[strings.ToLower(w)] {
			break
		}
		kept = append(kept, w)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}

// ParseDraft runs every field parser over a reservation-intent utterance.
// ok=false when no restaurant name could be extracted.
func ParseDraft(utterance string) (store.ReservationDraft, bool) {
	draft := store.ReservationDraft{
		RestaurantName:  ParseRestaurantName(utterance),
		ReservationTime: ParseTime(utterance),
		PartySize:       ParsePartySize(utterance),
		SpecialRequest:  ParseSpecialRequest(utterance),
	}
	return draft, draft.RestaurantName != ""
}

// ApplyEdits overlays any fields the utterance parses onto an existing
// draft. Returns true if anything changed.
func ApplyEdits(d *store.ReservationDraft, utterance string) bool {
	changed := false
	if t := ParseTime(utterance); t != "" && t != d.ReservationTime {
		d.ReservationTime = t
		changed = true
	}
	if n := ParsePartySize(utterance); n != 0 && n != d.PartySize {
		d.PartySize = n
		changed = true
	}
	if r := ParseSpecialRequest(utterance); r != "" && r != d.SpecialRequest {
		d.SpecialRequest = r
		changed = true
	}
	if name := ParseRestaurantName(utterance); name != "" && name != d.RestaurantName {
		d.RestaurantName = name
		changed = true
	}
	return changed
}
