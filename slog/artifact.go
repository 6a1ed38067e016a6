package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/unveil"
)

var _ unveil.ArtifactStore = (*LoggingArtifactStore)(nil)

// LoggingArtifactStore wraps an ArtifactStore and logs reads and writes.
type LoggingArtifactStore struct {
	next   unveil.ArtifactStore
	logger *slog.Logger
}

// NewLoggingArtifactStore creates a new LoggingArtifactStore.
func NewLoggingArtifactStore(next unveil.ArtifactStore, logger *slog.Logger) *LoggingArtifactStore {
	return &LoggingArtifactStore{next: next, logger: logger}
}

// Put delegates to the wrapped store and logs the outcome.
func (s *LoggingArtifactStore) Put(ctx context.Context, key string, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("put artifact", "key", key, "bytes", len(data), "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Put(ctx, key, data)
}

// Get delegates to the wrapped store. Reads are logged at debug level.
func (s *LoggingArtifactStore) Get(ctx context.Context, key string) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("get artifact", "key", key, "bytes", len(data), "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Get(ctx, key)
}
