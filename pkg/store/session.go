package store

import "time"

// Recommendation kinds held in memory.
const (
	RecKindFind = "find"
	RecKindFood = "food"
)

// Clarification accumulates answers to the four clarification dimensions.
// Fields stay empty until an answer parses; question order is fixed by the
// controller regardless of which field an answer happens to fill.
type Clarification struct {
	Seed   string `json:"seed"` // the utterance that triggered clarification
	Vibe   string `json:"vibe"`
	Budget string `json:"budget"`
	Timing string `json:"timing"`
	Social string `json:"social"`
}

// Complete reports whether all four dimensions are filled.
func (c *Clarification) Complete() bool {
	return c.Vibe != "" && c.Budget != "" && c.Timing != "" && c.Social != ""
}

// LatLng is a bare coordinate pair carried in session state.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Recommendation is the single-slot memory of the last surfaced shortlist.
// A new recommendation request replaces it entirely; it is never appended to.
type Recommendation struct {
	Kind       string    `json:"kind"` // RecKindFind | RecKindFood
	SeedPrompt string    `json:"seed_prompt"`
	Picks      []Place   `json:"picks"`
	Base       *LatLng   `json:"base,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReservationDraft is an unsubmitted, user-editable reservation request.
// At most one pending instance per session.
type ReservationDraft struct {
	RestaurantName  string `json:"restaurant_name"`
	ReservationTime string `json:"reservation_time"`
	PartySize       int    `json:"party_size"`
	SpecialRequest  string `json:"special_request,omitempty"`
}

// Session is the engine's per-user dialog state. It is single-writer,
// single-reader: only the assistant service mutates it, one turn at a time.
// At most one of Clarify/Draft is active; reservation handling wins when an
// utterance would start both.
type Session struct {
	ID     string `json:"id"` // chat session id
	UserID string `json:"user_id"`

	// Training signals, loaded from persisted state when the session starts.
	LikedPrompts    []string `json:"liked_prompts"`
	DislikedPrompts []string `json:"disliked_prompts"`

	Clarify *Clarification    `json:"clarify,omitempty"`
	Memory  *Recommendation   `json:"memory,omitempty"`
	Draft   *ReservationDraft `json:"draft,omitempty"`

	LastQuery string `json:"last_query"`
}

// Navigation is a single screen suggestion attached to a reply.
type Navigation struct {
	TargetView string `json:"target_view"`
	Label      string `json:"label"`
}

// Action is a follow-up affordance the client can render under a reply.
type Action struct {
	Kind  string            `json:"kind"` // "plan" | "jam" | "pin"
	Label string            `json:"label"`
	Data  map[string]string `json:"data,omitempty"`
}
