package clarify

import (
	"strings"
	"testing"

	"townmate-be/pkg/store"
)

func TestBeginPrefillsFromSeed(t *testing.T) {
	c := Begin("something cheap tonight")
	if c.Budget != "cheap" {
		t.Errorf("Budget = %q, want cheap", c.Budget)
	}
	if c.Timing != "tonight" {
		t.Errorf("Timing = %q, want tonight", c.Timing)
	}
	if c.Vibe != "" || c.Social != "" {
		t.Errorf("unmentioned dimensions must stay empty, got vibe=%q social=%q", c.Vibe, c.Social)
	}
}

func TestNextFollowsFixedOrder(t *testing.T) {
	c := &store.Clarification{Seed: "i'm bored"}

	q, ok := Next(c)
	if !ok {
		t.Fatal("fresh dialog has no question")
	}
	if !strings.Contains(strings.ToLower(q), "outdoor") {
		t.Errorf("first question should ask about the vibe, got %q", q)
	}

	c.Vibe = "food"
	q, _ = Next(c)
	if !strings.Contains(strings.ToLower(q), "free") {
		t.Errorf("second question should ask about the budget, got %q", q)
	}

	c.Budget = "cheap"
	q, _ = Next(c)
	if !strings.Contains(strings.ToLower(q), "now") {
		t.Errorf("third question should ask about timing, got %q", q)
	}

	c.Timing = "tonight"
	q, _ = Next(c)
	if !strings.Contains(strings.ToLower(q), "solo") && !strings.Contains(strings.ToLower(q), "just you") {
		t.Errorf("fourth question should ask about company, got %q", q)
	}

	c.Social = "solo"
	if _, ok := Next(c); ok {
		t.Error("all four dimensions filled, dialog must end")
	}
}

func TestNextDeterministicPerSeed(t *testing.T) {
	a := &store.Clarification{Seed: "i'm bored"}
	b := &store.Clarification{Seed: "i'm bored"}
	qa, _ := Next(a)
	qb, _ := Next(b)
	if qa != qb {
		t.Errorf("same seed gave different phrasing: %q vs %q", qa, qb)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		check func(t *testing.T, c *store.Clarification, applied bool)
	}{
		{
			name:  "dialog-only vocabulary",
			reply: "outdoors",
			check: func(t *testing.T, c *store.Clarification, applied bool) {
				if !applied || c.Vibe != "outdoor" {
					t.Errorf("applied=%v vibe=%q, want outdoor", applied, c.Vibe)
				}
			},
		},
		{
			name:  "typo tolerated",
			reply: "outdors",
			check: func(t *testing.T, c *store.Clarification, applied bool) {
				if !applied || c.Vibe != "outdoor" {
					t.Errorf("applied=%v vibe=%q, want outdoor", applied, c.Vibe)
				}
			},
		},
		{
			name:  "answer fills the field it parses as",
			reply: "tonight",
			check: func(t *testing.T, c *store.Clarification, applied bool) {
				if !applied || c.Timing != "tonight" {
					t.Errorf("applied=%v timing=%q, want tonight", applied, c.Timing)
				}
				if c.Vibe != "" {
					t.Errorf("vibe must stay empty, got %q", c.Vibe)
				}
			},
		},
		{
			name:  "multi-field answer",
			reply: "cheap food with friends",
			check: func(t *testing.T, c *store.Clarification, applied bool) {
				if !applied {
					t.Fatal("nothing applied")
				}
				if c.Vibe != "food" || c.Budget != "cheap" || c.Social != "group" {
					t.Errorf("got vibe=%q budget=%q social=%q", c.Vibe, c.Budget, c.Social)
				}
			},
		},
		{
			name:  "unparseable reply",
			reply: "qwxz",
			check: func(t *testing.T, c *store.Clarification, applied bool) {
				if applied {
					t.Error("gibberish must not fill any field")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &store.Clarification{Seed: "seed"}
			applied := Apply(c, tt.reply)
			tt.check(t, c, applied)
		})
	}
}

func TestApplyAmbiguousReplyIsDeterministic(t *testing.T) {
	// "nothing, whatever" matches both free and flexible in the dialog
	// vocabulary; declaration order must settle it the same way every run.
	for i := 0; i < 50; i++ {
		c := &store.Clarification{Seed: "seed", Vibe: "mix", Timing: "tonight", Social: "solo"}
		if !Apply(c, "nothing, whatever") {
			t.Fatal("reply did not apply")
		}
		if c.Budget != "free" {
			t.Fatalf("iteration %d: Budget = %q, want free on every run", i, c.Budget)
		}
	}
}

func TestApplySkipsFilledFields(t *testing.T) {
	c := &store.Clarification{Seed: "seed", Budget: "free"}
	if Apply(c, "cheap") {
		t.Error("a budget-only answer must not apply when budget is already set")
	}
	if c.Budget != "free" {
		t.Errorf("Budget overwritten to %q", c.Budget)
	}
}

func TestBuildContextKeepsSeedDetail(t *testing.T) {
	c := Begin("late night food somewhere")
	c.Vibe = "food"
	c.Budget = "cheap"
	c.Timing = "tonight"
	c.Social = "group"

	ctx := BuildContext(c)
	if ctx.Meal != "late-night" {
		t.Errorf("seed-level meal detail lost, got %q", ctx.Meal)
	}
	if ctx.Budget != "cheap" {
		t.Errorf("answered budget lost, got %q", ctx.Budget)
	}
	if ctx.Social != "group" {
		t.Errorf("answered social lost, got %q", ctx.Social)
	}
}
