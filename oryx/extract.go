package oryx

import (
	"iter"
	"log/slog"

	"github.com/fwojciec/unveil"
)

// Ensure Extractor implements unveil.Extractor at compile time.
var _ unveil.Extractor = (*Extractor)(nil)

// Extractor runs the full Oryx pipeline: the parser chain, scope error
// logging, model corrections and validation.
type Extractor struct {
	parser *Parser
	logger *slog.Logger
}

// NewExtractor creates a new Extractor logging diagnostics to logger.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		parser: NewParser(logger),
		logger: logger,
	}
}

// Cases returns the validated cases of a belligerent.
func (e *Extractor) Cases(root unveil.Node, belligerent string) (iter.Seq[unveil.Case], error) {
	raw, err := e.parser.Cases(root, belligerent)
	if err != nil {
		return nil, err
	}
	pipeline := unveil.Chain(
		SplitAttachment(),
		AutoID(),
		unveil.Validate(NewRulebook(), e.logger.With("belligerent", belligerent)),
	)
	return pipeline(unveil.SkipErrors(raw, e.logger)), nil
}

// Extract implements unveil.Extractor. The selector names the belligerent.
func (e *Extractor) Extract(root unveil.Node, selector string) (iter.Seq[unveil.Record], error) {
	cases, err := e.Cases(root, selector)
	if err != nil {
		return nil, err
	}
	return func(yield func(unveil.Record) bool) {
		for c := range cases {
			if !yield(c) {
				return
			}
		}
	}, nil
}

// Selectors implements unveil.Extractor.
func (e *Extractor) Selectors() []string {
	return []string{Russia, Ukraine}
}
