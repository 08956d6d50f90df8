package player

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/mediakiosk/vlcd/internal/history"
	"github.com/mediakiosk/vlcd/internal/logger"
	"github.com/mediakiosk/vlcd/internal/metrics"
)

// DefaultStopGrace is how long Stop waits after SIGTERM before escalating
// to SIGKILL.
const DefaultStopGrace = 5 * time.Second

// stderrTailBytes bounds the in-memory stderr capture used for exit
// diagnostics.
const stderrTailBytes = 8 << 10

// Config configures a Manager.
type Config struct {
	Spec       Spec
	StopGrace  time.Duration
	Logger     *slog.Logger
	Sinks      []history.Sink // optional playback-history sinks
	CaptureDir string         // optional directory for rotating player stdout/stderr files
}

// record is the internal mutable status singleton. It is only touched under
// Manager.mu.
type record struct {
	running   bool
	videoPath string
	startedAt time.Time
	pid       int
	errMsg    string // sticky until the next operation outcome
}

// Manager owns the single player-process slot and its status record.
// opMu serializes whole slot transitions (the stop-spawn-record sequence of
// Start, Stop, Restart); mu guards the record and handle fields so status
// reads never block behind the bounded grace-period wait in stop.
type Manager struct {
	spec       Spec
	grace      time.Duration
	logger     *slog.Logger
	sinks      []history.Sink
	captureDir string

	opMu sync.Mutex

	mu       sync.Mutex
	cur      *proc
	stopping bool // a stop released cur and is waiting out the grace period
	st       record
}

// New creates a Manager. The status record starts out stopped.
func New(cfg Config) *Manager {
	if cfg.StopGrace <= 0 {
		cfg.StopGrace = DefaultStopGrace
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Manager{
		spec:       cfg.Spec,
		grace:      cfg.StopGrace,
		logger:     cfg.Logger,
		sinks:      cfg.Sinks,
		captureDir: cfg.CaptureDir,
	}
}

// Start launches the player for videoPath, stopping any active process
// first. On success the returned snapshot reports playing with uptime 0.
func (m *Manager) Start(videoPath string, loop, fullscreen bool) (Status, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	return m.start(videoPath, loop, fullscreen)
}

func (m *Manager) start(videoPath string, loop, fullscreen bool) (Status, error) {
	if fi, err := os.Stat(videoPath); err != nil || fi.IsDir() {
		msg := "video file not found: " + videoPath
		m.logger.Error(msg)
		m.mu.Lock()
		m.st.errMsg = msg
		st := m.snapshotLocked(time.Now())
		m.mu.Unlock()
		return st, fmt.Errorf("%w: %s", ErrVideoNotFound, videoPath)
	}

	// At most one live handle: the previous process is terminated before a
	// replacement is recorded, all under the transition lock.
	m.stop()

	argv := m.spec.Command(videoPath, loop, fullscreen)
	m.logger.Debug("built player command", "argv", strings.Join(argv, " "))

	// #nosec G204 -- argv is the fixed template plus a path that was just stat'ed
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = sysProcAttr()

	tail := newTailBuffer(stderrTailBytes)
	outW, errW := m.captureWriters()
	if outW != nil {
		cmd.Stdout = outW
	} else {
		cmd.Stdout = io.Discard
	}
	if errW != nil {
		cmd.Stderr = io.MultiWriter(tail, errW)
	} else {
		cmd.Stderr = tail
	}

	if err := cmd.Start(); err != nil {
		closeWriters(outW, errW)
		msg := "failed to start player process: " + err.Error()
		m.logger.Error(msg)
		m.mu.Lock()
		m.st.running = false
		m.st.errMsg = msg
		st := m.snapshotLocked(time.Now())
		m.mu.Unlock()
		metrics.IncFailure()
		return st, fmt.Errorf("starting player process: %w", err)
	}

	p := newProc(cmd, tail)
	p.closers = collectClosers(outW, errW)
	now := time.Now()

	m.mu.Lock()
	m.cur = p
	m.st = record{running: true, videoPath: videoPath, startedAt: now, pid: p.pid}
	st := m.snapshotLocked(now)
	m.mu.Unlock()

	m.logger.Info("player process started", "pid", p.pid, "video", videoPath)
	metrics.IncStart()
	metrics.SetPlaying(true)
	m.emit(history.EventStart, videoPath, p.pid, 0, "")

	go m.supervise(p)
	return st, nil
}

// Stop terminates the active process and clears the status record. It
// returns false when there is nothing to stop or termination failed; the
// handle slot is released in every path.
func (m *Manager) Stop() bool {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	return m.stop()
}

func (m *Manager) stop() bool {
	m.mu.Lock()
	p := m.cur
	if p == nil {
		m.mu.Unlock()
		m.logger.Info("no player process to stop")
		return false
	}
	// Release the slot before signalling so the supervisor's exit handling
	// cannot race this stop over the same handle. stopping keeps status
	// reads on the pre-stop state while the grace wait is in flight.
	m.cur = nil
	m.stopping = true
	videoPath := m.st.videoPath
	m.mu.Unlock()

	m.logger.Info("stopping player process", "pid", p.pid)
	if err := p.terminate(m.grace); err != nil {
		m.mu.Lock()
		m.stopping = false
		m.st.errMsg = "error stopping player process: " + err.Error()
		m.mu.Unlock()
		m.logger.Error("error stopping player process", "pid", p.pid, "error", err)
		return false
	}

	m.mu.Lock()
	m.stopping = false
	m.st.running = false
	m.st.videoPath = ""
	m.st.pid = 0
	m.st.startedAt = time.Time{}
	m.mu.Unlock()

	m.logger.Info("player process stopped", "pid", p.pid)
	metrics.IncStop()
	metrics.SetPlaying(false)
	m.emit(history.EventStop, videoPath, p.pid, 0, "")
	return true
}

// Restart stops whatever is active and starts the recorded video again.
// Loop and fullscreen reset to their defaults rather than repeating the
// previous request's overrides.
func (m *Manager) Restart() (Status, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	videoPath := m.st.videoPath
	m.mu.Unlock()
	if videoPath == "" {
		return m.Snapshot(), ErrNothingToRestart
	}

	m.stop()
	st, err := m.start(videoPath, true, true)
	if err != nil {
		return st, err
	}
	metrics.IncRestart()
	return st, nil
}

// Snapshot reconciles the recorded status against the live process state and
// returns the result. Reconciliation is the only path besides Stop and the
// supervisor that may flip running to false.
func (m *Manager) Snapshot() Status {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	// An in-flight stop has already released the handle on purpose; reads
	// during its grace wait keep reporting the pre-stop state.
	if m.st.running && !m.stopping {
		if m.cur == nil {
			m.st.running = false
			m.st.startedAt = time.Time{}
			m.st.errMsg = "player process reference lost"
		} else if done, code := m.cur.exited(); done {
			m.st.running = false
			m.st.startedAt = time.Time{}
			m.st.errMsg = fmt.Sprintf("player process exited with code %d", code)
		}
	}
	return m.snapshotLocked(now)
}

// Shutdown stops any active player; meant for daemon exit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	active := m.cur != nil
	m.mu.Unlock()
	if active {
		m.logger.Info("shutting down, stopping player process")
		m.Stop()
	}
}

func (m *Manager) snapshotLocked(now time.Time) Status {
	st := Status{
		VideoPath: m.st.videoPath,
		PID:       m.st.pid,
		Error:     m.st.errMsg,
	}
	if !m.st.startedAt.IsZero() {
		uptime := now.Sub(m.st.startedAt).Seconds()
		st.Uptime = &uptime
	}
	switch {
	case m.st.running:
		st.State = StatePlaying
	case m.st.errMsg != "":
		st.State = StateError
	default:
		st.State = StateStopped
	}
	return st
}

// supervise waits for the child to exit on its own. It owns cmd.Wait for
// this proc; Stop coordinates through proc.done instead of waiting itself.
func (m *Manager) supervise(p *proc) {
	err := p.cmd.Wait()
	p.waitErr = err
	close(p.done)
	p.closeCapture()
	code := exitCode(err)

	m.mu.Lock()
	if m.cur != p {
		// A manual stop released this handle and owns the status transition.
		m.mu.Unlock()
		return
	}
	m.cur = nil
	m.st.running = false
	m.st.pid = 0
	m.st.startedAt = time.Time{}
	videoPath := m.st.videoPath
	var errMsg string
	if code != 0 {
		detail := strings.TrimSpace(p.stderr.String())
		if detail == "" {
			detail = "unknown error"
		}
		errMsg = fmt.Sprintf("player process exited with code %d: %s", code, detail)
		m.st.errMsg = errMsg
	}
	m.mu.Unlock()

	m.logger.Info("player process exited", "pid", p.pid, "code", code)
	metrics.SetPlaying(false)
	if code != 0 {
		metrics.IncUnexpectedExit()
	}
	m.emit(history.EventExit, videoPath, p.pid, code, errMsg)
}

func (m *Manager) emit(t history.EventType, videoPath string, pid, code int, errMsg string) {
	if len(m.sinks) == 0 {
		return
	}
	e := history.Event{
		Type:       t,
		OccurredAt: time.Now().UTC(),
		VideoPath:  videoPath,
		PID:        pid,
		ExitCode:   code,
		Error:      errMsg,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, s := range m.sinks {
		if err := s.Send(ctx, e); err != nil {
			m.logger.Warn("history sink send failed", "error", err)
		}
	}
}

// captureWriters returns rotating file writers for the player's own output
// when a capture directory is configured.
func (m *Manager) captureWriters() (io.WriteCloser, io.WriteCloser) {
	if m.captureDir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(m.captureDir, 0o750); err != nil {
		m.logger.Warn("cannot create capture dir, discarding player output", "dir", m.captureDir, "error", err)
		return nil, nil
	}
	outW, errW, _ := logger.Config{Dir: m.captureDir}.Writers("player")
	return outW, errW
}

func collectClosers(ws ...io.WriteCloser) []io.Closer {
	var cs []io.Closer
	for _, w := range ws {
		if w != nil {
			cs = append(cs, w)
		}
	}
	return cs
}

func closeWriters(ws ...io.WriteCloser) {
	for _, w := range ws {
		if w != nil {
			_ = w.Close()
		}
	}
}
