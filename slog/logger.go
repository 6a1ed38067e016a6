// Package slog provides logging decorators for unveil services and the
// construction of the process logger.
package slog

import (
	"io"
	"log/slog"

	"github.com/fwojciec/unveil"
)

// NewLogger builds a logger writing to w in the configured format at the
// configured level. Unknown levels fall back to info.
func NewLogger(cfg unveil.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
