package unveil

import (
	"io"
	"iter"
)

// Extractor turns a parsed document into a validated record stream.
//
// The selector picks the region of the document to scan; an unrecognized
// selector returns EINVALID and a missing root region returns ENOTFOUND.
// Both are returned before any record is produced. Malformed sub-regions
// never surface as errors: they are logged and skipped while the stream
// is consumed.
type Extractor interface {
	Extract(root Node, selector string) (iter.Seq[Record], error)

	// Selectors returns the selectors the extractor recognizes.
	Selectors() []string
}

// KindDetector identifies the dataset kind a document belongs to.
type KindDetector interface {
	// Detect analyzes HTML and returns the dataset kind.
	// Returns the empty string if the kind cannot be determined.
	Detect(html string) string
}

// ExtractorRegistry manages the extractors of each dataset kind.
type ExtractorRegistry interface {
	// Get returns the extractor for a dataset kind.
	// Returns nil if no extractor is registered for the kind.
	Get(kind string) Extractor

	// GetForHTML detects the dataset kind from HTML and returns its extractor
	// together with the detected kind. Returns nil if the kind is unknown.
	GetForHTML(html string) (Extractor, string)

	// Register adds an extractor for a dataset kind.
	Register(kind string, extractor Extractor)

	// List returns all registered kinds.
	List() []string
}

// DocumentParser builds a Node tree from raw markup.
type DocumentParser interface {
	Parse(r io.Reader) (Node, error)
}
