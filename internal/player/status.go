package player

// State is the derived tri-state reported to API clients.
type State string

const (
	StatePlaying State = "playing"
	StateStopped State = "stopped"
	StateError   State = "error"
)

// Status is a point-in-time snapshot of the managed player.
// Uptime is in seconds and nil when no start time is recorded.
type Status struct {
	State     State    `json:"status"`
	VideoPath string   `json:"video_path,omitempty"`
	PID       int      `json:"pid,omitempty"`
	Uptime    *float64 `json:"uptime"`
	Error     string   `json:"error,omitempty"`
}
