package yale

import (
	"iter"
	"log/slog"

	"github.com/fwojciec/unveil"
)

// Ensure Extractor implements unveil.Extractor at compile time.
var _ unveil.Extractor = (*Extractor)(nil)

// Extractor runs the full Yale pipeline: the parser chain, scope error
// logging and validation.
type Extractor struct {
	parser *Parser
	logger *slog.Logger
}

// NewExtractor creates a new Extractor logging diagnostics to logger.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		parser: NewParser(),
		logger: logger,
	}
}

// Companies returns the validated companies of the selected sections.
func (e *Extractor) Companies(root unveil.Node, selector string) (iter.Seq[unveil.Company], error) {
	raw, err := e.parser.Companies(root, selector)
	if err != nil {
		return nil, err
	}
	validate := unveil.Validate(NewRulebook(), e.logger)
	return validate(unveil.SkipErrors(raw, e.logger)), nil
}

// Extract implements unveil.Extractor.
func (e *Extractor) Extract(root unveil.Node, selector string) (iter.Seq[unveil.Record], error) {
	companies, err := e.Companies(root, selector)
	if err != nil {
		return nil, err
	}
	return func(yield func(unveil.Record) bool) {
		for c := range companies {
			if !yield(c) {
				return
			}
		}
	}, nil
}

// Selectors implements unveil.Extractor.
func (e *Extractor) Selectors() []string {
	return append([]string{All}, Sections...)
}
