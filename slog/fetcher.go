package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/unveil"
)

var _ unveil.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every request.
type LoggingFetcher struct {
	next   unveil.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next unveil.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch", "url", url, "bytes", len(data), "duration", time.Since(begin), "err", err)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
