package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unveil"
)

// Ensure Detector implements unveil.KindDetector at compile time.
var _ unveil.KindDetector = (*Detector)(nil)

// Detector identifies the dataset kind of a page from HTML content.
// It checks the meta generator tag and the structural markers that the
// publishing platform of each source leaves in its pages.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the dataset kind.
// Returns the empty string if the kind cannot be determined.
func (d *Detector) Detect(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	// The article body markers are the most reliable signal, since both
	// platforms host many unrelated pages.
	if d.hasSelector(doc, ".post-body.entry-content[itemprop='articleBody']") {
		return unveil.DatasetOryx
	}
	if d.hasSelector(doc, "section#diggingin, section#buyingtime, section#scalingback, section#suspension, section#withdrawal") {
		return unveil.DatasetYale
	}

	// Fall back to the platform named by the generator tag.
	generator := ""
	doc.Find("meta[name='generator'], meta[name='Generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	switch {
	case strings.Contains(generator, "blogger"):
		return unveil.DatasetOryx
	case strings.Contains(generator, "drupal"):
		return unveil.DatasetYale
	}

	return ""
}

// hasSelector returns true if the document contains elements matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
