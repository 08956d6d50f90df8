package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vlcd.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Listen != "0.0.0.0:8000" {
		t.Fatalf("listen default: %q", cfg.Server.Listen)
	}
	if cfg.Player.StopGrace != 5*time.Second {
		t.Fatalf("stop_grace default: %v", cfg.Player.StopGrace)
	}
	if cfg.History.Enabled {
		t.Fatalf("history should default off")
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Fatalf("cors default: %v", cfg.Server.CORSOrigins)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[server]
listen = "127.0.0.1:9000"
base_path = "/kiosk"
api_key = "secret"
cors_origins = ["http://console.local"]

[player]
vlc_path = "/opt/vlc/bin/vlc"
extra_args = ["--verbose", "2"]
stop_grace = "2s"

[metrics]
enabled = true
listen = ":9100"

[history]
enabled = true
dsn = "sqlite:///tmp/history.db"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Listen != "127.0.0.1:9000" || cfg.Server.BasePath != "/kiosk" || cfg.Server.APIKey != "secret" {
		t.Fatalf("server: %+v", cfg.Server)
	}
	if cfg.Player.VLCPath != "/opt/vlc/bin/vlc" || cfg.Player.StopGrace != 2*time.Second {
		t.Fatalf("player: %+v", cfg.Player)
	}
	if len(cfg.Player.ExtraArgs) != 2 || cfg.Player.ExtraArgs[0] != "--verbose" {
		t.Fatalf("extra_args: %v", cfg.Player.ExtraArgs)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Listen != ":9100" {
		t.Fatalf("metrics: %+v", cfg.Metrics)
	}
	if !cfg.History.Enabled || cfg.History.DSN != "sqlite:///tmp/history.db" {
		t.Fatalf("history: %+v", cfg.History)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VLC_PATH", "/custom/vlc")
	t.Setenv("VLCD_LISTEN", "127.0.0.1:8123")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.VLCPath != "/custom/vlc" {
		t.Fatalf("VLC_PATH override ignored: %q", cfg.Player.VLCPath)
	}
	if cfg.Server.Listen != "127.0.0.1:8123" {
		t.Fatalf("VLCD_LISTEN override ignored: %q", cfg.Server.Listen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("want error for missing config file")
	}
}

func TestLoadValidation(t *testing.T) {
	path := writeConfig(t, `
[player]
stop_grace = "-1s"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("negative stop_grace must fail")
	}

	path = writeConfig(t, `
[history]
enabled = true
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("history without dsn must fail")
	}
}
