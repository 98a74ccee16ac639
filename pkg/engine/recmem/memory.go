// Package recmem resolves referential follow-ups ("the second one",
// "cheaper", "another") against the single-slot recommendation memory.
package recmem

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"townmate-be/pkg/store"
)

// FollowUp is a parsed referential reply. Exactly one of Ordinal/Best/
// Qualifier/Another is meaningful.
type FollowUp struct {
	Ordinal   int    // 1-based index into picks; 0 when absent
	Best      bool   // "best one" / "top one" → picks[0]
	Qualifier string // comparative: "cheaper", "closer", ...
	Another   bool   // "another one" → re-roll the same request
}

var (
	bareNumber    = regexp.MustCompile(`^\s*#?(\d{1,2})\s*$`)
	optionPattern = regexp.MustCompile(`(?i)\b(?:option|number|pick)\s+#?(\d{1,2})\b`)
)

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4,
	"1st": 1, "2nd": 2, "3rd": 3, "4th": 4,
}

var qualifierWords = []string{
	"cheaper", "closer", "quieter", "fancier", "shorter", "longer", "warmer",
	"cheap", "free", "different",
}

// Parse recognizes a follow-up reference in an utterance. Returns nil when
// the utterance is not a follow-up at all.
func Parse(utterance string) *FollowUp {
	lower := strings.ToLower(strings.TrimSpace(utterance))

	if m := bareNumber.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &FollowUp{Ordinal: n}
	}
	if m := optionPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &FollowUp{Ordinal: n}
	}
	for word, n := range ordinalWords {
		if strings.Contains(lower, word+" one") || strings.Contains(lower, "the "+word) {
			return &FollowUp{Ordinal: n}
		}
	}
	if strings.Contains(lower, "best one") || strings.Contains(lower, "top one") ||
		strings.Contains(lower, "the best") || strings.Contains(lower, "top pick") {
		return &FollowUp{Best: true}
	}
	if strings.Contains(lower, "another") || strings.Contains(lower, "something else") ||
		strings.Contains(lower, "other options") {
		return &FollowUp{Another: true}
	}
	for _, q := range qualifierWords {
		if containsWord(lower, q) {
			return &FollowUp{Qualifier: q}
		}
	}
	return nil
}

// Replace stores a fresh shortlist, fully overwriting the previous slot.
func Replace(s *store.Session, kind, seed string, picks []store.Place, base *store.LatLng, now time.Time) {
	s.Memory = &store.Recommendation{
		Kind:       kind,
		SeedPrompt: seed,
		Picks:      picks,
		Base:       base,
		UpdatedAt:  now,
	}
}

// Select resolves an ordinal/best reference against the memory. ok=false
// when the slot is empty or the index is out of range; the caller must fall
// back to a fresh ranking rather than erroring.
func Select(mem *store.Recommendation, f *FollowUp) (store.Place, bool) {
	if mem == nil || len(mem.Picks) == 0 {
		return store.Place{}, false
	}
	if f.Best {
		return mem.Picks[0], true
	}
	if f.Ordinal >= 1 && f.Ordinal <= len(mem.Picks) {
		return mem.Picks[f.Ordinal-1], true
	}
	return store.Place{}, false
}

// RequeryPrompt builds the seed for a comparative follow-up: the original
// prompt concatenated with the new qualifier.
func RequeryPrompt(mem *store.Recommendation, f *FollowUp) string {
	if f.Another {
		return mem.SeedPrompt + " another"
	}
	return mem.SeedPrompt + " " + f.Qualifier
}

func containsWord(s, w string) bool {
	for _, f := range strings.Fields(s) {
		if strings.Trim(f, ".,!?") == w {
			return true
		}
	}
	return false
}
