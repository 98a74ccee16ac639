package calling

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
)

type fakeCaller struct {
	mu        sync.Mutex
	responses []*PollResponse
	errs      []error
	calls     int
}

func (f *fakeCaller) Poll(ctx context.Context, jobID string) (*PollResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	// Keep reporting the last known state once the script runs out.
	if len(f.responses) > 0 {
		return f.responses[len(f.responses)-1], nil
	}
	return &PollResponse{Status: "in-progress"}, nil
}

type fakeSink struct {
	mu      sync.Mutex
	records []StatusRecord
}

func (f *fakeSink) UpsertStatus(ctx context.Context, rec StatusRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeSink) last() (StatusRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.records) == 0 {
		return StatusRecord{}, false
	}
	return f.records[len(f.records)-1], true
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []*message.Message
}

func (f *fakePublisher) Publish(topic string, msgs ...*message.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakePublisher) decode(t *testing.T, i int) StatusRecord {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	var rec StatusRecord
	if err := json.Unmarshal(f.messages[i].Payload, &rec); err != nil {
		t.Fatalf("outcome payload not a status record: %v", err)
	}
	return rec
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testRecord() StatusRecord {
	return StatusRecord{
		JobID:          "job-1",
		UserID:         "user-1",
		SessionID:      "sess-1",
		RestaurantName: "Luna Rossa",
		PartySize:      4,
	}
}

func TestWatchPublishesOneOutcome(t *testing.T) {
	caller := &fakeCaller{responses: []*PollResponse{
		{Status: "in-progress"},
		{Status: "completed", ReservationDecision: DecisionConfirmed},
	}}
	sink := &fakeSink{}
	pub := &fakePublisher{}

	p := NewPoller(caller, sink, pub, time.Millisecond, quietLogger())
	p.Watch(context.Background(), testRecord())

	if got := pub.count(); got != 1 {
		t.Fatalf("published %d outcomes, want exactly 1", got)
	}
	out := pub.decode(t, 0)
	if out.Decision != DecisionConfirmed {
		t.Errorf("outcome decision = %q, want confirmed", out.Decision)
	}
	if out.JobID != "job-1" || out.RestaurantName != "Luna Rossa" {
		t.Errorf("outcome lost job context: %+v", out)
	}

	last, ok := sink.last()
	if !ok {
		t.Fatal("no status records written")
	}
	if last.Decision != DecisionConfirmed {
		t.Errorf("last persisted decision = %q, want confirmed", last.Decision)
	}
	if len(sink.records) != 2 {
		t.Errorf("persisted %d observations, want one per poll (2)", len(sink.records))
	}
}

func TestWatchStopsOnDecline(t *testing.T) {
	caller := &fakeCaller{responses: []*PollResponse{
		{Status: "completed", ReservationDecision: DecisionDeclined, LastError: "fully booked"},
	}}
	sink := &fakeSink{}
	pub := &fakePublisher{}

	p := NewPoller(caller, sink, pub, time.Millisecond, quietLogger())
	p.Watch(context.Background(), testRecord())

	if caller.calls != 1 {
		t.Errorf("polled %d times after a terminal first answer, want 1", caller.calls)
	}
	out := pub.decode(t, 0)
	if out.Decision != DecisionDeclined || out.LastError != "fully booked" {
		t.Errorf("outcome = %+v", out)
	}
}

func TestWatchFailedStatusIsTerminal(t *testing.T) {
	caller := &fakeCaller{responses: []*PollResponse{
		{Status: StatusFailed, LastError: "line busy"},
	}}
	sink := &fakeSink{}
	pub := &fakePublisher{}

	p := NewPoller(caller, sink, pub, time.Millisecond, quietLogger())
	p.Watch(context.Background(), testRecord())

	if got := pub.count(); got != 1 {
		t.Fatalf("published %d outcomes, want 1", got)
	}
	if out := pub.decode(t, 0); out.Status != StatusFailed {
		t.Errorf("outcome status = %q, want failed", out.Status)
	}
}

func TestWatchSurvivesPollErrors(t *testing.T) {
	caller := &fakeCaller{
		errs: []error{errors.New("timeout"), nil},
		responses: []*PollResponse{
			nil,
			{Status: "completed", ReservationDecision: DecisionConfirmed},
		},
	}
	sink := &fakeSink{}
	pub := &fakePublisher{}

	p := NewPoller(caller, sink, pub, time.Millisecond, quietLogger())
	p.Watch(context.Background(), testRecord())

	if got := pub.count(); got != 1 {
		t.Fatalf("published %d outcomes, want 1", got)
	}
	// The failed poll must not write an observation.
	if len(sink.records) != 1 {
		t.Errorf("persisted %d observations, want 1", len(sink.records))
	}
}

func TestWatchTimesOutAsDeclined(t *testing.T) {
	caller := &fakeCaller{responses: []*PollResponse{{Status: "in-progress"}}}
	sink := &fakeSink{}
	pub := &fakePublisher{}

	p := NewPoller(caller, sink, pub, time.Millisecond, quietLogger())
	p.Watch(context.Background(), testRecord())

	if got := pub.count(); got != 1 {
		t.Fatalf("published %d outcomes, want 1", got)
	}
	out := pub.decode(t, 0)
	if out.Decision != DecisionDeclinedTimeout {
		t.Errorf("capped job decision = %q, want %q", out.Decision, DecisionDeclinedTimeout)
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	caller := &fakeCaller{}
	sink := &fakeSink{}
	pub := &fakePublisher{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPoller(caller, sink, pub, time.Millisecond, quietLogger())
	done := make(chan struct{})
	go func() {
		p.Watch(ctx, testRecord())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not stop on context cancellation")
	}
	if got := pub.count(); got != 0 {
		t.Errorf("published %d outcomes after cancellation, want 0", got)
	}
}

func TestPollResponseTerminal(t *testing.T) {
	tests := []struct {
		name string
		res  PollResponse
		want bool
	}{
		{"confirmed", PollResponse{ReservationDecision: DecisionConfirmed}, true},
		{"declined", PollResponse{ReservationDecision: DecisionDeclined}, true},
		{"timeout", PollResponse{ReservationDecision: DecisionDeclinedTimeout}, true},
		{"failed status", PollResponse{Status: StatusFailed}, true},
		{"in progress", PollResponse{Status: "in-progress"}, false},
		{"queued", PollResponse{Status: "queued"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}
