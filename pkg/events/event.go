package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RESERVATION_CONFIRMED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used when reconstructing events
// off the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// ReservationOutcomeEvent is emitted once per call job when the calling
// service reports a terminal decision.
type ReservationOutcomeEvent struct {
	JobID          string
	UserID         string
	RestaurantName string
	Decision       string
	OccurredAt     time.Time
}

func (e ReservationOutcomeEvent) EventType() string {
	return "RESERVATION_OUTCOME"
}

func (e ReservationOutcomeEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"job_id":          e.JobID,
		"user_id":         e.UserID,
		"restaurant_name": e.RestaurantName,
		"decision":        e.Decision,
	}
}

func (e ReservationOutcomeEvent) Timestamp() time.Time {
	return e.OccurredAt
}
