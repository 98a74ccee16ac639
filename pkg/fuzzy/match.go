// Package fuzzy implements the edit-distance-tolerant phrase matching used
// by the intent classifier. A phrase matches when every significant word of
// the target has some input word within a small edit-distance budget, so
// typos like "exlpore" still resolve without exact phrasing.
package fuzzy

import "strings"

// stopwords carry no intent signal and are skipped on both sides.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "to": {}, "me": {}, "i": {}, "my": {},
	"of": {}, "for": {}, "in": {}, "on": {}, "at": {}, "is": {}, "it": {},
	"do": {}, "can": {}, "you": {}, "please": {}, "pls": {}, "some": {},
}

// Distance computes the Levenshtein distance between two strings,
// rune-wise, using the two-row iteration.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// budget returns the allowed edit distance for a target word. Short words
// get a tighter budget so "bus" does not swallow "but".
func budget(word string) int {
	if len([]rune(word)) <= 4 {
		return 1
	}
	return 2
}

// WordMatch reports whether input is within the edit budget of target.
func WordMatch(input, target string) bool {
	if input == target {
		return true
	}
	return Distance(input, target) <= budget(target)
}

// Tokenize lowercases, strips punctuation and splits on whitespace.
func Tokenize(s string) []string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

// PhraseMatch reports whether the input utterance matches the target phrase:
// every significant word of the phrase must have some input word within its
// edit budget. Phrases made only of stopwords never match.
func PhraseMatch(input, phrase string) bool {
	inputWords := Tokenize(input)
	significant := 0
	for _, pw := range Tokenize(phrase) {
		if _, skip := stopwords[pw]; skip {
			continue
		}
		significant++
		found := false
		for _, iw := range inputWords {
			if _, skip := stopwords[iw]; skip {
				continue
			}
			if WordMatch(iw, pw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return significant > 0
}

// MatchAny reports whether the input matches any of the given phrases.
func MatchAny(input string, phrases []string) bool {
	for _, p := range phrases {
		if PhraseMatch(input, p) {
			return true
		}
	}
	return false
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
