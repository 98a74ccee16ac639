// Package engine is the conversational core: it routes each utterance to
// the right behavior, threads the session state through the turn, and
// renders replies. All session mutation happens here, one turn at a time.
package engine

import (
	"fmt"
	"hash/fnv"
	"log"
	"strings"
	"time"

	"townmate-be/pkg/engine/clarify"
	"townmate-be/pkg/engine/findctx"
	"townmate-be/pkg/engine/intent"
	"townmate-be/pkg/engine/prefs"
	"townmate-be/pkg/engine/rank"
	"townmate-be/pkg/engine/recmem"
	"townmate-be/pkg/engine/reserve"
	"townmate-be/pkg/geo"
	"townmate-be/pkg/store"
)

// Directive tells the caller which side effect this turn requires. The
// engine itself never talks to external services.
type Directive int

const (
	DirectiveNone Directive = iota
	// DirectiveSubmitReservation: the session's draft is complete and
	// confirmed; the caller must submit it to the calling service.
	DirectiveSubmitReservation
)

// Response is the tagged per-turn result: display text, an optional
// navigation suggestion, follow-up affordances, and a side-effect
// directive. No sentinel strings; routing is explicit.
type Response struct {
	Text      string
	Nav       *store.Navigation
	Actions   []store.Action
	Directive Directive
	// Draft carries the confirmed reservation alongside
	// DirectiveSubmitReservation; nil otherwise.
	Draft *store.ReservationDraft
}

// TurnInput is everything one turn needs besides the session itself.
type TurnInput struct {
	Utterance string
	Catalog   []store.Place
	Live      *geo.Point // live geolocation reading, if any
	Saved     *geo.Point // saved home location, if any
	Now       time.Time
}

// Engine processes turns. It is stateless; all dialog state lives in the
// session value passed to HandleTurn.
type Engine struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Engine {
	return &Engine{logger: logger}
}

// HandleTurn processes one utterance against the session and returns the
// reply. The session is mutated in place; it is single-writer by contract.
func (e *Engine) HandleTurn(s *store.Session, in TurnInput) Response {
	st := intent.State{
		DraftPending:  s.Draft != nil,
		ClarifyActive: s.Clarify != nil,
		HasMemory:     s.Memory != nil,
	}
	cls := intent.Classify(in.Utterance, st)
	e.logger.Printf("[ENGINE] kind=%d utterance=%q", cls.Kind, truncate(in.Utterance, 60))

	s.LastQuery = in.Utterance

	switch cls.Kind {
	case intent.KindReservationReply:
		return e.handleReservationReply(s, in)
	case intent.KindClarifyReply:
		return e.handleClarifyReply(s, in)
	case intent.KindFollowUp:
		return e.handleFollowUp(s, in, cls.FollowUp)
	case intent.KindReservation:
		return e.handleReservationIntent(s, in)
	case intent.KindRecommendation:
		return e.handleRecommendation(s, in, cls.NeedsClarify)
	case intent.KindNearMe:
		return e.handleNearMe(s, in)
	case intent.KindIndecision:
		return e.handleIndecision(s, in)
	case intent.KindRule:
		return ruleResponse(cls.Rule, in.Utterance)
	default:
		return fallbackResponse(in.Utterance)
	}
}

// --- recommendation paths ---

func (e *Engine) handleRecommendation(s *store.Session, in TurnInput, needsClarify bool) Response {
	if needsClarify {
		s.Clarify = clarify.Begin(in.Utterance)
		if q, ok := clarify.Next(s.Clarify); ok {
			return Response{Text: q}
		}
		// The seed somehow answered everything; fall through to ranking.
	}
	ctx := findctx.Extract(in.Utterance)
	if s.Clarify != nil {
		ctx = clarify.BuildContext(s.Clarify)
		s.Clarify = nil
	}
	return e.rankAndRemember(s, in, ctx, in.Utterance)
}

func (e *Engine) handleNearMe(s *store.Session, in TurnInput) Response {
	ctx := findctx.Extract(in.Utterance)
	ctx.NearOnly = true
	return e.rankAndRemember(s, in, ctx, in.Utterance)
}

func (e *Engine) handleIndecision(s *store.Session, in TurnInput) Response {
	s.Clarify = clarify.Begin(in.Utterance)
	if q, ok := clarify.Next(s.Clarify); ok {
		lead := variant(in.Utterance,
			"No problem, let's narrow it down. ",
			"I've got you — quick questions first. ")
		return Response{Text: lead + q}
	}
	ctx := clarify.BuildContext(s.Clarify)
	s.Clarify = nil
	return e.rankAndRemember(s, in, ctx, in.Utterance)
}

func (e *Engine) handleClarifyReply(s *store.Session, in TurnInput) Response {
	c := s.Clarify
	applied := clarify.Apply(c, in.Utterance)
	if !applied {
		if q, ok := clarify.Next(c); ok {
			return Response{Text: "Didn't catch that one. " + q}
		}
	}
	if q, ok := clarify.Next(c); ok {
		return Response{Text: q}
	}
	// All four dimensions answered: run the ranker and end the dialog.
	ctx := clarify.BuildContext(c)
	seed := c.Seed
	s.Clarify = nil
	return e.rankAndRemember(s, in, ctx, seed)
}

func (e *Engine) handleFollowUp(s *store.Session, in TurnInput, f *recmem.FollowUp) Response {
	mem := s.Memory
	if f.Ordinal > 0 || f.Best {
		if pick, ok := recmem.Select(mem, f); ok {
			return pickDetailResponse(pick, in.Utterance)
		}
		// Out of range or empty memory: plain re-ranking, never an error.
		seed := in.Utterance
		if mem != nil {
			seed = mem.SeedPrompt
		}
		return e.rankAndRemember(s, in, findctx.Extract(seed), seed)
	}
	// Comparative / "another": same kind of request, qualified seed.
	seed := recmem.RequeryPrompt(mem, f)
	return e.rankAndRemember(s, in, findctx.Extract(seed), seed)
}

func (e *Engine) rankAndRemember(s *store.Session, in TurnInput, ctx findctx.Context, seed string) Response {
	base := resolveBase(ctx, in)
	req := rank.Request{
		Ctx:     ctx,
		Profile: prefs.NewProfile(s.LikedPrompts, s.DislikedPrompts),
		Base:    base,
		Seed:    seed,
		Now:     in.Now,
	}
	res := rank.Rank(in.Catalog, req)
	if res.NoMatch {
		return Response{Text: fmt.Sprintf(
			"I couldn't find anything once I applied your %s constraint — try loosening it and I'll have options.",
			res.Loosen)}
	}

	kind := store.RecKindFind
	if ctx.Vibe == "food" || ctx.Meal != "" {
		kind = store.RecKindFood
	}
	var memBase *store.LatLng
	if base != nil {
		memBase = &store.LatLng{Lat: base.Lat, Lng: base.Lng}
	}
	recmem.Replace(s, kind, seed, res.Picks, memBase, in.Now)

	return shortlistResponse(res.Picks, in.Utterance)
}

// resolveBase pins a base point whenever the context constrains distance,
// falling back live → saved → campus default. Location-free requests only
// get a base when one is already known, so distance stays out of scoring
// otherwise.
func resolveBase(ctx findctx.Context, in TurnInput) *geo.Point {
	if ctx.NearOnly || ctx.Transport != "" {
		p := geo.ResolveBase(in.Live, in.Saved)
		return &p
	}
	if in.Live != nil {
		return in.Live
	}
	return in.Saved
}

// --- reservation paths ---

func (e *Engine) handleReservationIntent(s *store.Session, in TurnInput) Response {
	restarted := s.Draft != nil

	draft, ok := reserve.ParseDraft(in.Utterance)
	if !ok {
		// Never guess a venue.
		return Response{Text: variant(in.Utterance,
			"Happy to call for you — which restaurant?",
			"Sure. What's the name of the place?")}
	}
	s.Draft = &draft
	s.Clarify = nil // reservation handling wins over a dangling dialog

	text := reserve.Summary(&draft)
	if restarted {
		text = "Starting over with the new request. " + text
	}
	return Response{Text: text}
}

func (e *Engine) handleReservationReply(s *store.Session, in TurnInput) Response {
	d := s.Draft
	switch reserve.ClassifyReply(in.Utterance) {
	case reserve.ReplyAffirm:
		if !reserve.Complete(d) {
			return Response{Text: reserve.Summary(d)}
		}
		// Affirmation consumes the draft. The confirmed copy travels on
		// the response for the caller to submit; the session is free for
		// normal turns while the call runs.
		s.Draft = nil
		return Response{
			Text:      fmt.Sprintf("On it — sending the request for %s now.", d.RestaurantName),
			Directive: DirectiveSubmitReservation,
			Draft:     d,
		}
	case reserve.ReplyDecline:
		s.Draft = nil
		return Response{Text: variant(in.Utterance,
			"Cancelled — no call will be made.",
			"Okay, scrapped it. Ask again any time.")}
	default:
		if reserve.ApplyEdits(d, in.Utterance) {
			return Response{Text: "Updated. " + reserve.Summary(d)}
		}
		return Response{Text: "I can change the time, party size or add a note — or say yes to send it. " + reserve.Summary(d)}
	}
}

// --- rendering ---

func shortlistResponse(picks []store.Place, utterance string) Response {
	var b strings.Builder
	b.WriteString(variant(utterance,
		"Here's what I'd go for:\n",
		"Okay, top picks:\n"))
	for i, p := range picks {
		fmt.Fprintf(&b, "%d. %s — %s, %s, %.1f★", i+1, p.Name, p.Category, store.PriceLabel(p.Price), p.Rating)
		if p.DistanceLabel != "" {
			fmt.Fprintf(&b, ", %s", p.DistanceLabel)
		}
		b.WriteString("\n")
	}
	b.WriteString("Say a number for details, or \"cheaper\"/\"closer\" to adjust.")

	actions := make([]store.Action, 0, len(picks)+1)
	for _, p := range picks {
		actions = append(actions, store.Action{
			Kind:  "pin",
			Label: "Pin " + p.Name,
			Data:  map[string]string{"place_id": p.ID},
		})
	}
	actions = append(actions, store.Action{Kind: "plan", Label: "Turn into a plan"})

	return Response{Text: b.String(), Actions: actions}
}

func pickDetailResponse(p store.Place, utterance string) Response {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s, %s, rated %.1f.", p.Name, p.Category, store.PriceLabel(p.Price), p.Rating)
	if p.DurationLabel != "" {
		fmt.Fprintf(&b, " Plan for %s.", p.DurationLabel)
	}
	if p.Description != "" {
		b.WriteString(" " + p.Description)
	}
	actions := []store.Action{
		{Kind: "pin", Label: "Pin " + p.Name, Data: map[string]string{"place_id": p.ID}},
		{Kind: "plan", Label: "Add to a plan", Data: map[string]string{"place_id": p.ID}},
		{Kind: "jam", Label: "Jam it with friends", Data: map[string]string{"place_id": p.ID}},
	}
	return Response{Text: b.String(), Actions: actions}
}

func ruleResponse(r *intent.Rule, utterance string) Response {
	return Response{
		Text: variant(utterance, r.Replies...),
		Nav:  r.Nav,
	}
}

func fallbackResponse(utterance string) Response {
	// The loop never produces zero output for a turn.
	return Response{Text: variant(utterance,
		"I'm best at places and plans — try \"find me dinner\" or \"book a table at...\".",
		"Not sure I follow, but I can recommend spots, plan outings, or call a restaurant for you.")}
}

// variant deterministically picks one phrasing based on the utterance hash,
// so identical inputs produce identical outputs in tests.
func variant(utterance string, options ...string) string {
	h := fnv.New32a()
	h.Write([]byte(utterance))
	return options[int(h.Sum32())%len(options)]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
