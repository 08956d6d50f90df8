// Package vlcd exposes the player lifecycle manager and HTTP surface for
// embedding in other programs.
package vlcd

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	cfg "github.com/mediakiosk/vlcd/internal/config"
	"github.com/mediakiosk/vlcd/internal/history"
	"github.com/mediakiosk/vlcd/internal/history/factory"
	"github.com/mediakiosk/vlcd/internal/metrics"
	"github.com/mediakiosk/vlcd/internal/player"
	iapi "github.com/mediakiosk/vlcd/internal/server"
)

// Re-export core types for external consumers. These are aliases, so
// conversions are zero-cost.

type Manager = player.Manager

type ManagerConfig = player.Config

type Spec = player.Spec

type Status = player.Status

type Config = cfg.Config

type HistorySink = history.Sink

type ServerOptions = iapi.Options

var (
	ErrVideoNotFound    = player.ErrVideoNotFound
	ErrNothingToRestart = player.ErrNothingToRestart
)

// New creates a player manager.
func New(c ManagerConfig) *Manager { return player.New(c) }

// LoadConfig reads the daemon's TOML configuration.
func LoadConfig(path string) (*Config, error) { return cfg.Load(path) }

// NewHistorySink creates a playback-history sink from a DSN
// (sqlite:// or postgres://).
func NewHistorySink(dsn string) (HistorySink, error) { return factory.NewSinkFromDSN(dsn) }

// NewHTTPServer starts an HTTP server exposing the control API for m.
func NewHTTPServer(addr, basePath string, m *Manager, opts ServerOptions) (*http.Server, error) {
	return iapi.NewServer(addr, basePath, m, opts)
}

// NewRouter returns the gin-backed handler for mounting into an existing
// server or mux.
func NewRouter(m *Manager, basePath string, opts ServerOptions) http.Handler {
	return iapi.NewRouter(m, basePath, opts).Handler()
}

// Metrics helpers (public facade).

func RegisterMetrics(r prometheus.Registerer) error { return metrics.Register(r) }
func RegisterMetricsDefault() error                 { return metrics.Register(prometheus.DefaultRegisterer) }

// ServeMetrics serves /metrics on addr using the default registry. It blocks
// in the caller's goroutine.
func ServeMetrics(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	return srv.ListenAndServe()
}
