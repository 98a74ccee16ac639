package reserve

import "testing"

func TestParseRestaurantName(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
	}{
		{"book a table at Luna Rossa for 4 at 7pm", "Luna Rossa"},
		{"make a reservation at Noodle Bar Ten", "Noodle Bar Ten"},
		{"book a table at Blue Door Tonight", "Blue Door"},
		{"book a table for 2", ""},
		{"reserve at the usual place", ""},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			if got := ParseRestaurantName(tt.utterance); got != tt.want {
				t.Errorf("ParseRestaurantName(%q) = %q, want %q", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
	}{
		{"at 7pm", "7:00 pm"},
		{"around 7:30 PM", "7:30 pm"},
		{"10:15am works", "10:15 am"},
		{"at 18:30", "6:30 pm"},
		{"at 7:30", "7:30 pm"}, // bare clock time defaults to evening
		{"sometime tomorrow", ""},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			if got := ParseTime(tt.utterance); got != tt.want {
				t.Errorf("ParseTime(%q) = %q, want %q", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestParsePartySize(t *testing.T) {
	tests := []struct {
		utterance string
		want      int
	}{
		{"for 4", 4},
		{"table for 2 people", 2},
		{"party of 12", 12},
		{"for dinner", 0},
		{"no headcount here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			if got := ParsePartySize(tt.utterance); got != tt.want {
				t.Errorf("ParsePartySize(%q) = %d, want %d", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestParseSpecialRequest(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"explicit note", "book it, note: window seat please", "window seat please"},
		{"keyword clause", "we need a window table, thanks", "window table"},
		{"birthday", "it's her birthday", "birthday"},
		{"nothing", "book a table at Luna Rossa", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSpecialRequest(tt.utterance); got != tt.want {
				t.Errorf("ParseSpecialRequest(%q) = %q, want %q", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestParseDraft(t *testing.T) {
	draft, ok := ParseDraft("book a table at Luna Rossa for 4 at 7pm")
	if !ok {
		t.Fatal("draft with a clear venue name should parse")
	}
	if draft.RestaurantName != "Luna Rossa" {
		t.Errorf("RestaurantName = %q", draft.RestaurantName)
	}
	if draft.ReservationTime != "7:00 pm" {
		t.Errorf("ReservationTime = %q", draft.ReservationTime)
	}
	if draft.PartySize != 4 {
		t.Errorf("PartySize = %d", draft.PartySize)
	}

	if _, ok := ParseDraft("book a table for 2 somewhere"); ok {
		t.Error("a draft without a venue name must not parse")
	}
}

func TestApplyEdits(t *testing.T) {
	d, _ := ParseDraft("book a table at Luna Rossa for 4 at 7pm")

	if !ApplyEdits(&d, "make it 8pm") {
		t.Fatal("time edit not applied")
	}
	if d.ReservationTime != "8:00 pm" {
		t.Errorf("ReservationTime = %q, want 8:00 pm", d.ReservationTime)
	}
	if d.PartySize != 4 || d.RestaurantName != "Luna Rossa" {
		t.Error("unrelated fields changed by a time edit")
	}

	if !ApplyEdits(&d, "actually party of 6") {
		t.Fatal("party edit not applied")
	}
	if d.PartySize != 6 {
		t.Errorf("PartySize = %d, want 6", d.PartySize)
	}

	if ApplyEdits(&d, "hmm let me think") {
		t.Error("an utterance with no parseable fields reported a change")
	}
}
