package mock

import (
	"io"
	"iter"

	"github.com/fwojciec/unveil"
)

var _ unveil.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of unveil.Extractor.
type Extractor struct {
	ExtractFn   func(root unveil.Node, selector string) (iter.Seq[unveil.Record], error)
	SelectorsFn func() []string
}

func (e *Extractor) Extract(root unveil.Node, selector string) (iter.Seq[unveil.Record], error) {
	return e.ExtractFn(root, selector)
}

func (e *Extractor) Selectors() []string {
	return e.SelectorsFn()
}

var _ unveil.KindDetector = (*KindDetector)(nil)

// KindDetector is a mock implementation of unveil.KindDetector.
type KindDetector struct {
	DetectFn func(html string) string
}

func (d *KindDetector) Detect(html string) string {
	return d.DetectFn(html)
}

var _ unveil.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of unveil.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn        func(kind string) unveil.Extractor
	GetForHTMLFn func(html string) (unveil.Extractor, string)
	RegisterFn   func(kind string, extractor unveil.Extractor)
	ListFn       func() []string
}

func (r *ExtractorRegistry) Get(kind string) unveil.Extractor {
	return r.GetFn(kind)
}

func (r *ExtractorRegistry) GetForHTML(html string) (unveil.Extractor, string) {
	return r.GetForHTMLFn(html)
}

func (r *ExtractorRegistry) Register(kind string, extractor unveil.Extractor) {
	r.RegisterFn(kind, extractor)
}

func (r *ExtractorRegistry) List() []string {
	return r.ListFn()
}

var _ unveil.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of unveil.DocumentParser.
type DocumentParser struct {
	ParseFn func(r io.Reader) (unveil.Node, error)
}

func (p *DocumentParser) Parse(r io.Reader) (unveil.Node, error) {
	return p.ParseFn(r)
}
