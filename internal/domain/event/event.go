package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	// TypeFetchCompleted fires once per offer fetch, after the pipeline has
	// run. Origin tells operators whether the live upstream or the static
	// fallback served the request — the response shape is identical either
	// way, so this event (and the matching log line) is the only place the
	// distinction is visible.
	TypeFetchCompleted Type = "fetch_completed"
)

// Origin of a candidate list.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)

// Event carries per-request diagnostics, not offer data.
type Event struct {
	Type       Type          `json:"type"`
	RequestID  uuid.UUID     `json:"request_id"`
	Origin     Origin        `json:"origin,omitempty"`
	Candidates int           `json:"candidates"`
	Matched    int           `json:"matched"`
	Duration   time.Duration `json:"duration_ns"`
	Timestamp  time.Time     `json:"timestamp"`
}

func FetchCompleted(requestID uuid.UUID, origin Origin, candidates, matched int, d time.Duration) Event {
	return Event{
		Type:       TypeFetchCompleted,
		RequestID:  requestID,
		Origin:     origin,
		Candidates: candidates,
		Matched:    matched,
		Duration:   d,
		Timestamp:  time.Now().UTC(),
	}
}
