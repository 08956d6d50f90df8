package client

// PlayRequest asks the daemon to start playback. Nil Loop/Fullscreen keep
// the server defaults (both true).
type PlayRequest struct {
	VideoPath  string `json:"video_path"`
	Loop       *bool  `json:"loop,omitempty"`
	Fullscreen *bool  `json:"fullscreen,omitempty"`
}

// PlayerStatus mirrors the daemon's status snapshot.
type PlayerStatus struct {
	Status    string   `json:"status"` // playing | stopped | error
	VideoPath string   `json:"video_path,omitempty"`
	PID       int      `json:"pid,omitempty"`
	Uptime    *float64 `json:"uptime"` // seconds
	Error     string   `json:"error,omitempty"`
}

// Health is the GET /health response.
type Health struct {
	Status     string `json:"status"`
	APIVersion string `json:"api_version"`
}

// ErrorResponse is the daemon's error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
