package logger

import (
	"context"
	"io"
	"log/slog"
)

// ColorHandler wraps slog.TextHandler to color the level prefix on ANSI
// terminals.
type ColorHandler struct {
	*slog.TextHandler
}

func NewColorHandler(w io.Writer, opts *slog.HandlerOptions) *ColorHandler {
	return &ColorHandler{TextHandler: slog.NewTextHandler(w, opts)}
}

func (h *ColorHandler) Handle(ctx context.Context, r slog.Record) error {
	var color string
	switch r.Level {
	case slog.LevelDebug:
		color = "\033[36m" // cyan
	case slog.LevelWarn:
		color = "\033[33m" // yellow
	case slog.LevelError:
		color = "\033[31m" // red
	default:
		color = "\033[32m" // green
	}
	r.Message = color + r.Level.String() + "\033[0m  " + r.Message
	return h.TextHandler.Handle(ctx, r)
}

// teeHandler fans a record out to both the console and file handlers.
type teeHandler struct {
	handlers []slog.Handler
}

func newTeeHandler(hs ...slog.Handler) *teeHandler {
	return &teeHandler{handlers: hs}
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range t.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: hs}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: hs}
}
