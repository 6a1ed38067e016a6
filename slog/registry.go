package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/unveil"
)

// Ensure LoggingRegistry implements unveil.ExtractorRegistry.
var _ unveil.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with logging for kind detection.
type LoggingRegistry struct {
	next   unveil.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next unveil.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(kind string) unveil.Extractor {
	return r.next.Get(kind)
}

// GetForHTML delegates to the wrapped registry and logs the detected kind.
func (r *LoggingRegistry) GetForHTML(html string) (unveil.Extractor, string) {
	begin := time.Now()
	extractor, kind := r.next.GetForHTML(html)
	name := kind
	if kind == "" {
		name = "(unknown)"
	}
	r.logger.Info("kind detection",
		"kind", name,
		"registered", extractor != nil,
		"duration", time.Since(begin),
	)
	return extractor, kind
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(kind string, extractor unveil.Extractor) {
	r.next.Register(kind, extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []string {
	return r.next.List()
}
