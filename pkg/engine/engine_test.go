package engine

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"townmate-be/pkg/store"
)

var turnClock = time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return New(log.New(io.Discard, "", 0))
}

func turn(utterance string, catalog []store.Place) TurnInput {
	return TurnInput{Utterance: utterance, Catalog: catalog, Now: turnClock}
}

func engineCatalog() []store.Place {
	return []store.Place{
		{ID: "anchor-coffee", Name: "Anchor Coffee", Category: store.CategoryCafes, Price: store.PriceCheap, Rating: 4.4, Tags: []string{"coffee"}},
		{ID: "taqueria", Name: "Taqueria del Sol", Category: store.CategoryRestaurants, Price: store.PriceCheap, Rating: 4.5, Tags: []string{"taco", "street food"}},
		{ID: "luna-rossa", Name: "Luna Rossa", Category: store.CategoryRestaurants, Price: store.PriceSplurge, Rating: 4.8},
		{ID: "sands-beach", Name: "Sands Beach", Category: store.CategoryBeaches, Price: store.PriceFree, Rating: 4.6, Tags: []string{"swim", "sand"}},
		{ID: "harbor-museum", Name: "Harbor Museum", Category: store.CategoryMuseums, Price: store.PriceCheap, Rating: 4.0},
	}
}

func TestHandleTurnRuleReply(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	resp := e.HandleTurn(s, turn("hello", nil))
	if resp.Text == "" {
		t.Fatal("greeting produced no text")
	}
	if resp.Directive != DirectiveNone {
		t.Error("smalltalk must not carry a directive")
	}
}

func TestHandleTurnRuleNavigation(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	resp := e.HandleTurn(s, turn("explore", nil))
	if resp.Nav == nil || resp.Nav.TargetView != "explore" {
		t.Errorf("Nav = %+v, want the explore view", resp.Nav)
	}
}

func TestHandleTurnRecommendationRemembers(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	resp := e.HandleTurn(s, turn("find me cheap tacos", engineCatalog()))
	if !strings.Contains(resp.Text, "Taqueria del Sol") {
		t.Errorf("shortlist missing the taqueria: %q", resp.Text)
	}
	if s.Memory == nil || len(s.Memory.Picks) == 0 {
		t.Fatal("shortlist not remembered")
	}
	if s.Memory.Kind != store.RecKindFood {
		t.Errorf("memory kind = %q, want food", s.Memory.Kind)
	}
	if len(resp.Actions) == 0 {
		t.Error("shortlist carries no follow-up actions")
	}
	if resp.Actions[len(resp.Actions)-1].Kind != "plan" {
		t.Error("last action should offer turning the shortlist into a plan")
	}
}

func TestHandleTurnNoMatchNamesDimension(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}
	onlyMuseum := []store.Place{
		{ID: "m", Name: "Harbor Museum", Category: store.CategoryMuseums, Price: store.PriceCheap, Rating: 4.0},
	}

	resp := e.HandleTurn(s, turn("find me somewhere outdoor", onlyMuseum))
	if !strings.Contains(resp.Text, "vibe") {
		t.Errorf("no-match reply should name the dimension to loosen: %q", resp.Text)
	}
	if s.Memory != nil {
		t.Error("a failed ranking must not overwrite memory")
	}
}

func TestHandleTurnClarificationDialog(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}
	catalog := engineCatalog()

	resp := e.HandleTurn(s, turn("recommend something", catalog))
	if s.Clarify == nil {
		t.Fatal("under-specified request did not open a dialog")
	}
	if resp.Text == "" {
		t.Fatal("no question asked")
	}

	// Answer all four dimensions; the last answer must produce picks.
	for _, answer := range []string{"food", "cheap", "tonight"} {
		resp = e.HandleTurn(s, turn(answer, catalog))
		if s.Clarify == nil {
			t.Fatalf("dialog ended early after %q", answer)
		}
	}
	resp = e.HandleTurn(s, turn("solo", catalog))
	if s.Clarify != nil {
		t.Error("dialog still open after all four answers")
	}
	if s.Memory == nil {
		t.Error("completed dialog did not produce a remembered shortlist")
	}
	if !strings.Contains(resp.Text, "Anchor Coffee") {
		t.Errorf("cheap solo food should surface the cafe, got %q", resp.Text)
	}
}

func TestHandleTurnClarifyRetry(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	e.HandleTurn(s, turn("recommend something", engineCatalog()))
	resp := e.HandleTurn(s, turn("qwxz", engineCatalog()))
	if !strings.Contains(resp.Text, "Didn't catch that one.") {
		t.Errorf("unparseable answer should re-ask, got %q", resp.Text)
	}
	if s.Clarify == nil {
		t.Error("dialog must survive an unparseable answer")
	}
}

func TestHandleTurnFollowUpDetail(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}
	catalog := engineCatalog()

	s.Memory = &store.Recommendation{
		Kind:       store.RecKindFind,
		SeedPrompt: "cheap eats",
		Picks:      []store.Place{catalog[0], catalog[1], catalog[3]},
		UpdatedAt:  turnClock,
	}

	resp := e.HandleTurn(s, turn("the second one", catalog))
	if !strings.Contains(resp.Text, "Taqueria del Sol") {
		t.Errorf("detail reply = %q, want the second pick", resp.Text)
	}
	hasJam := false
	for _, a := range resp.Actions {
		if a.Kind == "jam" {
			hasJam = true
		}
	}
	if !hasJam {
		t.Error("pick detail should offer a jam action")
	}
}

func TestHandleTurnFollowUpOutOfRange(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}
	catalog := engineCatalog()

	s.Memory = &store.Recommendation{
		Kind:       store.RecKindFood,
		SeedPrompt: "cheap tacos",
		Picks:      []store.Place{catalog[1]},
		UpdatedAt:  turnClock,
	}

	resp := e.HandleTurn(s, turn("the third one", catalog))
	// Out of range falls back to re-ranking the remembered request.
	if resp.Text == "" {
		t.Fatal("no reply for an out-of-range ordinal")
	}
	if strings.Contains(resp.Text, "couldn't find") {
		t.Errorf("out-of-range reference must not error: %q", resp.Text)
	}
}

func TestHandleTurnReservationFlow(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	resp := e.HandleTurn(s, turn("book a table at Luna Rossa for 4 at 7pm", nil))
	if s.Draft == nil {
		t.Fatal("reservation intent did not open a draft")
	}
	if !strings.Contains(resp.Text, "Luna Rossa") {
		t.Errorf("summary missing the venue: %q", resp.Text)
	}
	if resp.Directive != DirectiveNone {
		t.Error("drafting must not submit")
	}

	resp = e.HandleTurn(s, turn("yes", nil))
	if resp.Directive != DirectiveSubmitReservation {
		t.Errorf("Directive = %d, want submit", resp.Directive)
	}
	if resp.Draft == nil || resp.Draft.PartySize != 4 {
		t.Errorf("response draft = %+v, want the confirmed reservation", resp.Draft)
	}
	if s.Draft != nil {
		t.Error("affirmation must consume the session draft")
	}
}

func TestHandleTurnSubmittedDraftFreesSession(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}
	catalog := engineCatalog()

	e.HandleTurn(s, turn("book a table at Luna Rossa for 4 at 7pm", nil))
	e.HandleTurn(s, turn("yes", nil))

	// A second affirmative must not submit a duplicate call job.
	resp := e.HandleTurn(s, turn("yes", nil))
	if resp.Directive == DirectiveSubmitReservation {
		t.Error("repeated affirmation re-submitted the reservation")
	}

	// The session takes normal turns while the call runs.
	resp = e.HandleTurn(s, turn("find me cheap tacos", catalog))
	if !strings.Contains(resp.Text, "Taqueria del Sol") {
		t.Errorf("recommendation blocked behind a submitted draft: %q", resp.Text)
	}
	if s.Memory == nil {
		t.Error("shortlist not remembered after a submitted reservation")
	}
}

func TestHandleTurnReservationDecline(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	e.HandleTurn(s, turn("book a table at Luna Rossa for 4 at 7pm", nil))
	resp := e.HandleTurn(s, turn("no", nil))
	if s.Draft != nil {
		t.Error("decline must clear the draft")
	}
	if resp.Directive != DirectiveNone {
		t.Error("decline must not submit")
	}
}

func TestHandleTurnReservationIncompleteAffirm(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	e.HandleTurn(s, turn("book a table at Luna Rossa", nil))
	resp := e.HandleTurn(s, turn("yes", nil))
	if resp.Directive != DirectiveNone {
		t.Error("an incomplete draft must never submit")
	}
	if !strings.Contains(resp.Text, "I still need") {
		t.Errorf("reply should restate the missing fields: %q", resp.Text)
	}
}

func TestHandleTurnReservationEdit(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	e.HandleTurn(s, turn("book a table at Luna Rossa for 4 at 7pm", nil))
	resp := e.HandleTurn(s, turn("make it 8pm", nil))
	if s.Draft.ReservationTime != "8:00 pm" {
		t.Errorf("draft time = %q, want 8:00 pm", s.Draft.ReservationTime)
	}
	if !strings.Contains(resp.Text, "Updated.") {
		t.Errorf("edit reply = %q", resp.Text)
	}
}

func TestHandleTurnReservationWithoutVenueAsks(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	resp := e.HandleTurn(s, turn("make a reservation for 2", nil))
	if s.Draft != nil {
		t.Error("no venue named, no draft may open")
	}
	if resp.Text == "" {
		t.Fatal("engine must ask for the venue")
	}
}

func TestHandleTurnReservationCancelsClarify(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	e.HandleTurn(s, turn("recommend something", engineCatalog()))
	if s.Clarify == nil {
		t.Fatal("dialog not open")
	}

	e.HandleTurn(s, turn("book a table at Luna Rossa for 2 at 8pm", nil))
	if s.Clarify != nil {
		t.Error("reservation must win over a dangling clarification dialog")
	}
	if s.Draft == nil {
		t.Error("draft not opened")
	}
}

func TestHandleTurnFallbackNeverEmpty(t *testing.T) {
	e := newTestEngine()
	s := &store.Session{ID: "s1"}

	resp := e.HandleTurn(s, turn("zzz asdf", nil))
	if resp.Text == "" {
		t.Error("fallback reply must not be empty")
	}
}

func TestHandleTurnDeterministicPhrasing(t *testing.T) {
	e := newTestEngine()

	a := e.HandleTurn(&store.Session{ID: "a"}, turn("hello", nil))
	b := e.HandleTurn(&store.Session{ID: "b"}, turn("hello", nil))
	if a.Text != b.Text {
		t.Errorf("identical utterances phrased differently: %q vs %q", a.Text, b.Text)
	}
}
