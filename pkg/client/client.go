// Package client provides an HTTP client for the vlcd daemon API, used by
// the CLI and by programs embedding remote control.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a running vlcd daemon.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// Config holds client configuration.
type Config struct {
	BaseURL string        // e.g. http://localhost:8000
	APIKey  string        // optional X-API-Key value
	Timeout time.Duration // request timeout (default 10s)
	Logger  *slog.Logger
}

// DefaultConfig returns the local-daemon default.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000",
		Timeout: 10 * time.Second,
	}
}

// New creates a daemon API client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  cfg.Logger,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// IsReachable checks whether the daemon answers its health endpoint.
func (c *Client) IsReachable(ctx context.Context) bool {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		c.logger.Debug("daemon unreachable", "error", err)
		return false
	}
	return true
}

// Healthz returns the daemon health report.
func (c *Client) Healthz(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	return h, err
}

// Status returns the player status snapshot.
func (c *Client) Status(ctx context.Context) (PlayerStatus, error) {
	var st PlayerStatus
	err := c.do(ctx, http.MethodGet, "/player/status", nil, &st)
	return st, err
}

// Play starts playback of the given video.
func (c *Client) Play(ctx context.Context, req PlayRequest) (PlayerStatus, error) {
	var st PlayerStatus
	err := c.do(ctx, http.MethodPost, "/player/play", req, &st)
	return st, err
}

// Stop stops playback.
func (c *Client) Stop(ctx context.Context) (PlayerStatus, error) {
	var st PlayerStatus
	err := c.do(ctx, http.MethodPost, "/player/stop", nil, &st)
	return st, err
}

// Restart restarts the current video with default options.
func (c *Client) Restart(ctx context.Context) (PlayerStatus, error) {
	var st PlayerStatus
	err := c.do(ctx, http.MethodPost, "/player/restart", nil, &st)
	return st, err
}

// Videos lists playable files in a directory on the daemon host.
func (c *Client) Videos(ctx context.Context, directory string) ([]string, error) {
	var paths []string
	err := c.do(ctx, http.MethodGet, "/videos?directory="+url.QueryEscape(directory), nil, &paths)
	return paths, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var er ErrorResponse
		if json.Unmarshal(data, &er) == nil && er.Error != "" {
			return fmt.Errorf("daemon returned %d: %s", resp.StatusCode, er.Error)
		}
		return fmt.Errorf("daemon returned %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
