package reserve

import (
	"strings"
	"testing"

	"townmate-be/pkg/store"
)

func TestClassifyReply(t *testing.T) {
	tests := []struct {
		utterance string
		want      ReplyKind
	}{
		{"yes", ReplyAffirm},
		{"yep please", ReplyAffirm},
		{"sounds good", ReplyAffirm},
		{"ok book it", ReplyAffirm},
		{"no", ReplyDecline},
		{"no thanks", ReplyDecline},
		{"cancel that", ReplyDecline},
		{"never mind", ReplyDecline},
		// A decline opener wins even when affirm phrasing follows.
		{"no, don't book it", ReplyDecline},
		{"make it 8pm instead", ReplyEdit},
		{"party of 6", ReplyEdit},
		{"what about a window seat", ReplyEdit},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			if got := ClassifyReply(tt.utterance); got != tt.want {
				t.Errorf("ClassifyReply(%q) = %d, want %d", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	full := &store.ReservationDraft{
		RestaurantName:  "Luna Rossa",
		ReservationTime: "7:00 pm",
		PartySize:       4,
		SpecialRequest:  "window seat",
	}
	s := Summary(full)
	for _, want := range []string{"Luna Rossa", "for 4", "7:00 pm", "window seat", "Shall I call them?"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary %q missing %q", s, want)
		}
	}

	partial := &store.ReservationDraft{RestaurantName: "Luna Rossa"}
	s = Summary(partial)
	if !strings.Contains(s, "a time") || !strings.Contains(s, "the party size") {
		t.Errorf("partial summary %q does not name the missing fields", s)
	}
	if strings.Contains(s, "Shall I call them?") {
		t.Error("incomplete draft must not offer to call yet")
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name  string
		draft store.ReservationDraft
		want  bool
	}{
		{"all fields", store.ReservationDraft{RestaurantName: "X", ReservationTime: "7:00 pm", PartySize: 2}, true},
		{"no time", store.ReservationDraft{RestaurantName: "X", PartySize: 2}, false},
		{"no size", store.ReservationDraft{RestaurantName: "X", ReservationTime: "7:00 pm"}, false},
		{"no name", store.ReservationDraft{ReservationTime: "7:00 pm", PartySize: 2}, false},
		{"note is optional", store.ReservationDraft{RestaurantName: "X", ReservationTime: "7:00 pm", PartySize: 2, SpecialRequest: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Complete(&tt.draft); got != tt.want {
				t.Errorf("Complete = %v, want %v", got, tt.want)
			}
		})
	}
}
