package calling

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// OutcomeTopic is the in-process topic terminal decisions are published on.
const OutcomeTopic = "RESERVATION_OUTCOME"

// StatusRecord is one observation of a job, written on every poll.
type StatusRecord struct {
	JobID           string    `json:"job_id"`
	UserID          string    `json:"user_id"`
	SessionID       string    `json:"session_id"`
	RestaurantName  string    `json:"restaurant_name"`
	ReservationTime string    `json:"reservation_time"`
	PartySize       int       `json:"party_size"`
	Status          string    `json:"status"`
	Decision        string    `json:"decision"`
	LastError       string    `json:"last_error,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RecordSink persists status observations, keyed by job id
// (append/overwrite only).
type RecordSink interface {
	UpsertStatus(ctx context.Context, rec StatusRecord) error
}

// Poller watches submitted call jobs. One goroutine per job; each stops on
// the first terminal decision, on context cancellation (session teardown)
// or after the attempt cap.
type Poller struct {
	caller    Caller
	sink      RecordSink
	publisher message.Publisher
	interval  time.Duration
	maxPolls  int
	logger    *log.Logger
}

func NewPoller(caller Caller, sink RecordSink, publisher message.Publisher, interval time.Duration, logger *log.Logger) *Poller {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Poller{
		caller:    caller,
		sink:      sink,
		publisher: publisher,
		interval:  interval,
		maxPolls:  80, // ~20 minutes at the default interval
		logger:    logger,
	}
}

// Watch polls a job until it terminates. It blocks; callers run it in a
// goroutine. Exactly one outcome event is published per job.
func (p *Poller) Watch(ctx context.Context, rec StatusRecord) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for polls := 0; polls < p.maxPolls; polls++ {
		select {
		case <-ctx.Done():
			p.logger.Printf("[POLLER] job %s: stopped (%v)", rec.JobID, ctx.Err())
			return
		case <-ticker.C:
		}

		res, err := p.caller.Poll(ctx, rec.JobID)
		if err != nil {
			p.logger.Printf("[POLLER] job %s: poll failed: %v", rec.JobID, err)
			continue
		}

		rec.Status = res.Status
		rec.Decision = res.ReservationDecision
		rec.LastError = res.LastError
		rec.UpdatedAt = time.Now()
		if err := p.sink.UpsertStatus(ctx, rec); err != nil {
			p.logger.Printf("[POLLER] job %s: record update failed: %v", rec.JobID, err)
		}

		if res.Terminal() {
			p.publishOutcome(rec)
			return
		}
	}

	// Attempt cap reached without a decision: surface it as a timeout so
	// the user is not left waiting forever.
	rec.Decision = DecisionDeclinedTimeout
	rec.UpdatedAt = time.Now()
	_ = p.sink.UpsertStatus(ctx, rec)
	p.publishOutcome(rec)
}

func (p *Poller) publishOutcome(rec StatusRecord) {
	payload, err := json.Marshal(rec)
	if err != nil {
		p.logger.Printf("[POLLER] job %s: marshal outcome failed: %v", rec.JobID, err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.publisher.Publish(OutcomeTopic, msg); err != nil {
		p.logger.Printf("[POLLER] job %s: publish outcome failed: %v", rec.JobID, err)
		return
	}
	p.logger.Printf("[POLLER] job %s: terminal decision %q published", rec.JobID, rec.Decision)
}
