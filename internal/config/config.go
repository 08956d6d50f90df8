package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mediakiosk/vlcd/internal/logger"
)

// APIVersion is reported by GET /health.
const APIVersion = "1.0.0"

// Config is the top-level TOML structure for the vlcd daemon.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Player  PlayerConfig  `mapstructure:"player"`
	Log     logger.Config `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	History HistoryConfig `mapstructure:"history"`
}

type ServerConfig struct {
	Listen      string   `mapstructure:"listen"`
	BasePath    string   `mapstructure:"base_path"`
	APIKey      string   `mapstructure:"api_key"` // empty disables the key check
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type PlayerConfig struct {
	VLCPath    string        `mapstructure:"vlc_path"` // empty means platform default
	ExtraArgs  []string      `mapstructure:"extra_args"`
	StopGrace  time.Duration `mapstructure:"stop_grace"`
	CaptureDir string        `mapstructure:"capture_dir"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// HistoryConfig enables the playback event log. The DSN selects the backend
// (sqlite or postgres); see internal/history/factory.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
}

// Load reads the TOML config at path. An empty path yields defaults plus
// environment overrides, so the daemon runs without any config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetDefault("server.listen", "0.0.0.0:8000")
	v.SetDefault("server.base_path", "")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("player.stop_grace", "5s")
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen", ":9090")
	v.SetDefault("history.enabled", false)

	// Environment overrides kept from the original deployment convention.
	_ = v.BindEnv("player.vlc_path", "VLC_PATH")
	_ = v.BindEnv("server.listen", "VLCD_LISTEN")
	_ = v.BindEnv("server.api_key", "VLCD_API_KEY")
	_ = v.BindEnv("log.level", "VLCD_LOG_LEVEL")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Player.StopGrace < 0 {
		return nil, fmt.Errorf("player.stop_grace must not be negative")
	}
	if cfg.History.Enabled && cfg.History.DSN == "" {
		return nil, fmt.Errorf("history.dsn required when history is enabled")
	}
	return &cfg, nil
}
