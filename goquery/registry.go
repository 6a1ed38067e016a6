package goquery

import (
	"sort"

	"github.com/fwojciec/unveil"
)

var _ unveil.ExtractorRegistry = (*Registry)(nil)

// Registry manages dataset extractors and auto-detects the dataset kind of
// a page from HTML content.
type Registry struct {
	detector   unveil.KindDetector
	extractors map[string]unveil.Extractor
}

// NewRegistry creates a new Registry with the given detector.
func NewRegistry(detector unveil.KindDetector) *Registry {
	return &Registry{
		detector:   detector,
		extractors: make(map[string]unveil.Extractor),
	}
}

// Get returns the extractor for a dataset kind.
// Returns nil if no extractor is registered for the kind.
func (r *Registry) Get(kind string) unveil.Extractor {
	return r.extractors[kind]
}

// GetForHTML detects the dataset kind from HTML and returns the registered
// extractor with the detected kind. Returns nil if the kind is unknown or
// has no extractor.
func (r *Registry) GetForHTML(html string) (unveil.Extractor, string) {
	kind := r.detector.Detect(html)
	extractor, ok := r.extractors[kind]
	if !ok {
		return nil, kind
	}
	return extractor, kind
}

// Register adds an extractor for a dataset kind.
// If an extractor is already registered for the kind, it is replaced.
func (r *Registry) Register(kind string, extractor unveil.Extractor) {
	r.extractors[kind] = extractor
}

// List returns all registered kinds in sorted order.
func (r *Registry) List() []string {
	kinds := make([]string, 0, len(r.extractors))
	for k := range r.extractors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
