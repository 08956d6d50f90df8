package vlcd

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func requireUnix(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires Unix-like environment")
	}
}

func fakePlayerSpec(t *testing.T) Spec {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakeplayer")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nsleep 60\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return Spec{BinPath: path}
}

func fakeVideoPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write video: %v", err)
	}
	return path
}

func TestManagerFacadeStartStatusStop(t *testing.T) {
	requireUnix(t)
	m := New(ManagerConfig{Spec: fakePlayerSpec(t), StopGrace: time.Second})
	defer m.Shutdown()

	video := fakeVideoPath(t)
	st, err := m.Start(video, true, true)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if st.State != "playing" || st.PID <= 0 {
		t.Fatalf("unexpected status: %+v", st)
	}
	if !m.Stop() {
		t.Fatalf("stop should succeed")
	}
	if st = m.Snapshot(); st.State != "stopped" {
		t.Fatalf("unexpected status after stop: %+v", st)
	}
}

func TestFacadeErrorsExported(t *testing.T) {
	m := New(ManagerConfig{})
	if _, err := m.Start("/no/such.mp4", true, true); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("want ErrVideoNotFound, got %v", err)
	}
	if _, err := m.Restart(); !errors.Is(err, ErrNothingToRestart) {
		t.Fatalf("want ErrNothingToRestart, got %v", err)
	}
}

func TestRouterFacadeServesHealth(t *testing.T) {
	m := New(ManagerConfig{})
	h := NewRouter(m, "", ServerOptions{})

	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("code %d", resp.StatusCode)
	}
	var body struct {
		Status     string `json:"status"`
		APIVersion string `json:"api_version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "healthy" || body.APIVersion != "1.0.0" {
		t.Fatalf("unexpected health: %+v", body)
	}
}

func TestLoadConfigFacade(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Listen == "" {
		t.Fatalf("defaults not applied: %+v", cfg.Server)
	}
}

func TestNewHistorySinkFacade(t *testing.T) {
	sink, err := NewHistorySink("sqlite://:memory:")
	if err != nil {
		t.Fatalf("NewHistorySink: %v", err)
	}
	defer func() { _ = sink.Close() }()
}

func TestRegisterMetricsFacade(t *testing.T) {
	if err := RegisterMetrics(prometheus.NewRegistry()); err != nil {
		t.Fatalf("RegisterMetrics: %v", err)
	}
}
