package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults, matching the API's historical 10 MB / 3 backups policy.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7
)

// Config describes application logging. When Dir is set the log also goes to
// a rotating file Dir/File (default vlcd.log) alongside the colored console
// handler.
type Config struct {
	Level      string `json:"level" mapstructure:"level"`
	Dir        string `json:"dir" mapstructure:"dir"`
	File       string `json:"file" mapstructure:"file"`
	MaxSizeMB  int    `json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `json:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `json:"compress" mapstructure:"compress"`
}

// New builds a slog.Logger from the config. A file handler failure degrades
// to console-only logging rather than failing startup.
func (c Config) New() *slog.Logger {
	level := parseLevel(c.Level)
	opts := &slog.HandlerOptions{Level: level}

	console := NewColorHandler(os.Stderr, opts)
	if c.Dir == "" {
		return slog.New(console)
	}

	if err := os.MkdirAll(c.Dir, 0o750); err != nil {
		l := slog.New(console)
		l.Warn("cannot create log dir, using console only", "dir", c.Dir, "error", err)
		return l
	}
	name := c.File
	if name == "" {
		name = "vlcd.log"
	}
	fileW := &lj.Logger{
		Filename:   filepath.Join(c.Dir, name),
		MaxSize:    valOr(c.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: valOr(c.MaxBackups, DefaultMaxBackups),
		MaxAge:     valOr(c.MaxAgeDays, DefaultMaxAgeDays),
		Compress:   c.Compress,
	}
	return slog.New(newTeeHandler(console, slog.NewTextHandler(fileW, opts)))
}

// Writers returns rotating io.WriteClosers for a child process's stdout and
// stderr under Dir, named <name>.stdout.log and <name>.stderr.log.
func (c Config) Writers(name string) (io.WriteCloser, io.WriteCloser, error) {
	if c.Dir == "" {
		return nil, nil, nil
	}
	mk := func(stream string) io.WriteCloser {
		return &lj.Logger{
			Filename:   filepath.Join(c.Dir, fmt.Sprintf("%s.%s.log", name, stream)),
			MaxSize:    valOr(c.MaxSizeMB, DefaultMaxSizeMB),
			MaxBackups: valOr(c.MaxBackups, DefaultMaxBackups),
			MaxAge:     valOr(c.MaxAgeDays, DefaultMaxAgeDays),
			Compress:   c.Compress,
		}
	}
	return mk("stdout"), mk("stderr"), nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func valOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
