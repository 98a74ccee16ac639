package findctx

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Context
	}{
		{
			name:      "rich food request",
			utterance: "find me a cheap dinner with friends tonight",
			want:      Context{Vibe: "food", Budget: "cheap", Social: "group", Timing: "tonight", Meal: "dinner"},
		},
		{
			name:      "outdoor hike",
			utterance: "a short hike in nature",
			want:      Context{Vibe: "outdoor", HikeLength: "short"},
		},
		{
			name:      "coffee near me",
			utterance: "coffee near me",
			want:      Context{Vibe: "food", Meal: "coffee", NearOnly: true},
		},
		{
			name:      "swim and tan at the beach",
			utterance: "beach day, want to swim and sunbathe",
			want:      Context{Vibe: "outdoor", WantsSwim: true, WantsTan: true},
		},
		{
			name:      "transport and weather",
			utterance: "somewhere I can bike to on a sunny day",
			want:      Context{Weather: "sunny", Transport: "bike"},
		},
		{
			name:      "no signal at all",
			utterance: "hello there",
			want:      Context{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.utterance)
			if got != tt.want {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestExtractWholeWordOnly(t *testing.T) {
	// "know" must not trigger the "now" timing family.
	if got := Extract("I know a place"); got.Timing != "" {
		t.Errorf("Timing = %q, want empty; single words must match whole words only", got.Timing)
	}
	if got := Extract("right now"); got.Timing != "now" {
		t.Errorf("Timing = %q, want %q", got.Timing, "now")
	}
}

func TestHasSignal(t *testing.T) {
	if (Context{}).HasSignal() {
		t.Error("zero context should carry no signal")
	}
	if !(Context{Budget: "free"}).HasSignal() {
		t.Error("a single filled field is a signal")
	}
	if !(Context{NearOnly: true}).HasSignal() {
		t.Error("NearOnly alone is a signal")
	}
}

func TestMerge(t *testing.T) {
	base := Context{Vibe: "food", Budget: "cheap"}
	add := Context{Vibe: "outdoor", Timing: "tonight", WantsSwim: true}

	got := Merge(base, add)
	if got.Vibe != "food" {
		t.Errorf("base Vibe must win, got %q", got.Vibe)
	}
	if got.Budget != "cheap" {
		t.Errorf("Budget = %q, want cheap", got.Budget)
	}
	if got.Timing != "tonight" {
		t.Errorf("empty base field must take the added value, got %q", got.Timing)
	}
	if !got.WantsSwim {
		t.Error("boolean flags must OR together")
	}
}
