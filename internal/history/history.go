package history

import (
	"context"
	"time"
)

// EventType classifies a playback lifecycle event.
type EventType string

const (
	EventStart EventType = "start"
	EventStop  EventType = "stop"
	EventExit  EventType = "exit" // the player exited on its own
)

// Event is one playback lifecycle event exported to external systems. This
// is an audit trail only; the live status record is never restored from it.
type Event struct {
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	VideoPath  string    `json:"video_path"`
	PID        int       `json:"pid"`
	ExitCode   int       `json:"exit_code"`
	Error      string    `json:"error,omitempty"`
}

// Sink is a destination for playback events. Implementations must be safe
// for concurrent use.
type Sink interface {
	Send(ctx context.Context, e Event) error
	Close() error
}
