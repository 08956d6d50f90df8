package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package-level Prometheus collectors, registered via Register. Counters are
// unlabeled: there is exactly one managed player per daemon.
var (
	regOK atomic.Bool

	playbackStarts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vlcd",
		Subsystem: "player",
		Name:      "starts_total",
		Help:      "Number of successful playback starts.",
	})
	playbackStops = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vlcd",
		Subsystem: "player",
		Name:      "stops_total",
		Help:      "Number of explicit stops.",
	})
	playbackRestarts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vlcd",
		Subsystem: "player",
		Name:      "restarts_total",
		Help:      "Number of successful restarts.",
	})
	playbackFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vlcd",
		Subsystem: "player",
		Name:      "start_failures_total",
		Help:      "Number of playback starts that failed to spawn.",
	})
	unexpectedExits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vlcd",
		Subsystem: "player",
		Name:      "unexpected_exits_total",
		Help:      "Number of times the player exited on its own with a non-zero code.",
	})
	playing = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vlcd",
		Subsystem: "player",
		Name:      "playing",
		Help:      "Whether a player process is currently believed to be active.",
	})
)

// Register registers all collectors with r. Safe to call multiple times;
// calls after the first success are no-ops.
func Register(r prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}
	cs := []prometheus.Collector{
		playbackStarts, playbackStops, playbackRestarts,
		playbackFailures, unexpectedExits, playing,
	}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	regOK.Store(true)
	return nil
}

func IncStart()          { playbackStarts.Inc() }
func IncStop()           { playbackStops.Inc() }
func IncRestart()        { playbackRestarts.Inc() }
func IncFailure()        { playbackFailures.Inc() }
func IncUnexpectedExit() { unexpectedExits.Inc() }

func SetPlaying(v bool) {
	if v {
		playing.Set(1)
	} else {
		playing.Set(0)
	}
}

// Handler returns the promhttp handler for the default registry.
func Handler() http.Handler { return promhttp.Handler() }
