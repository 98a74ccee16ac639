package fuzzy

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"explore", "explore", 0},
		{"exlpore", "explore", 2}, // transposition costs two edits
		{"cafe", "café", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestWordMatch(t *testing.T) {
	tests := []struct {
		input  string
		target string
		want   bool
	}{
		{"explore", "explore", true},
		{"exlpore", "explore", true},  // 2 edits, long word budget
		{"expllore", "explore", true}, // insertion
		{"xyz", "explore", false},
		{"hey", "hey", true},
		{"heyy", "hey", true},  // short word still allows 1 edit
		{"hello", "hey", false}, // 3 edits over the short budget
	}

	for _, tt := range tests {
		t.Run(tt.input+"->"+tt.target, func(t *testing.T) {
			if got := WordMatch(tt.input, tt.target); got != tt.want {
				t.Errorf("WordMatch(%q, %q) = %v, want %v", tt.input, tt.target, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Hello, World! It's 2 PM.")
	want := []string{"hello", "world", "it", "s", "2", "pm"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPhraseMatch(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		phrase string
		want   bool
	}{
		{"exact phrase", "book a table", "book a table", true},
		{"stopwords skipped", "book me a table please", "book a table", true},
		{"typo in significant word", "bok a table", "book a table", true},
		{"missing significant word", "book something", "book a table", false},
		{"word order irrelevant", "a table please book", "book a table", true},
		{"stopword-only phrase never matches", "to the", "to the", false},
		{"single word typo", "exlpore", "explore", true},
		{"unrelated", "what time is it", "book a table", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhraseMatch(tt.input, tt.phrase); got != tt.want {
				t.Errorf("PhraseMatch(%q, %q) = %v, want %v", tt.input, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestMatchAny(t *testing.T) {
	phrases := []string{"book a table", "make a reservation"}
	if !MatchAny("can you make a reservation", phrases) {
		t.Error("MatchAny should match the second phrase")
	}
	if MatchAny("what is the weather", phrases) {
		t.Error("MatchAny should not match an unrelated utterance")
	}
}
