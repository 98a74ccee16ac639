// Package calling talks to the external reservation-calling service: it
// places a call job for a confirmed draft and polls the job until the
// restaurant's decision is known.
package calling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"townmate-be/pkg/store"
)

// Job decision values reported by the calling service.
const (
	DecisionConfirmed       = "confirmed"
	DecisionDeclined        = "declined"
	DecisionDeclinedTimeout = "declined-timeout"
)

// StatusFailed is the terminal job status for calls that never completed.
const StatusFailed = "failed"

// StartResponse is the calling service's answer to a new call job.
type StartResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

// PollResponse is one status observation for a job.
type PollResponse struct {
	Status              string `json:"status"`
	ReservationDecision string `json:"reservationDecision"`
	RestaurantName      string `json:"restaurantName"`
	ReservationTime     string `json:"reservationTime"`
	PartySize           int    `json:"partySize"`
	LastError           string `json:"lastError,omitempty"`
}

// Terminal reports whether this observation ends polling.
func (r *PollResponse) Terminal() bool {
	switch r.ReservationDecision {
	case DecisionConfirmed, DecisionDeclined, DecisionDeclinedTimeout:
		return true
	}
	return r.Status == StatusFailed
}

// Caller is the slice of the client the poller needs; tests substitute it.
type Caller interface {
	Poll(ctx context.Context, jobID string) (*PollResponse, error)
}

// Client is the HTTP client for the calling service.
type Client struct {
	baseURL string
	hc      *http.Client
	limiter *rate.Limiter
}

// NewClient builds a client. The limiter keeps poll volume polite toward
// the shared calling service regardless of how many jobs are in flight.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Start submits a confirmed draft and returns the job handle.
func (c *Client) Start(ctx context.Context, draft store.ReservationDraft) (*StartResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	payload := map[string]interface{}{
		"restaurantName":  draft.RestaurantName,
		"reservationTime": draft.ReservationTime,
		"partySize":       draft.PartySize,
		"specialRequest":  draft.SpecialRequest,
	}
	var out StartResponse
	if err := c.post(ctx, "/v1/calls", payload, &out); err != nil {
		return nil, err
	}
	if out.JobID == "" {
		return nil, fmt.Errorf("calling service accepted the request but returned no job id")
	}
	return &out, nil
}

// Poll fetches the current status of a job.
func (c *Client) Poll(ctx context.Context, jobID string) (*PollResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	var out PollResponse
	if err := c.post(ctx, "/v1/calls/status", map[string]interface{}{"jobId": jobID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("calling service unreachable: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode >= 400 {
		var er struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &er)
		if er.Message != "" {
			return fmt.Errorf("calling service error: %s (status=%d)", er.Message, res.StatusCode)
		}
		return fmt.Errorf("calling service error (status=%d)", res.StatusCode)
	}
	return json.Unmarshal(data, out)
}
