package oryx

import (
	"iter"
	"regexp"
	"strings"

	"github.com/fwojciec/unveil"
)

var (
	// categoryHeader matches "Tanks (1234, of which destroyed: 800, ...)".
	categoryHeader = regexp.MustCompile(`(?s)^.+\(\d+, .+\)\s*$`)
	categoryLabel  = regexp.MustCompile(`(?s)^(.+?)\s\(\d+,.*`)
)

// IsCategoryHeader reports whether a heading text introduces an asset category.
func IsCategoryHeader(text string) bool {
	return categoryHeader.MatchString(strings.TrimSpace(text))
}

// CategoryLabel returns the lowercase asset category named by a heading text.
func CategoryLabel(text string) (string, bool) {
	m := categoryLabel.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	label := lower.String(strings.TrimSpace(m[1]))
	return label, label != ""
}

// Category yields the cases of every model listed under the heading n,
// stamped with the asset category.
func (p *Parser) Category(n unveil.Node) iter.Seq2[unveil.Case, error] {
	return func(yield func(unveil.Case, error) bool) {
		label, ok := CategoryLabel(n.Text())
		if !ok {
			yield(unveil.Case{}, unveil.Mismatch(n, "asset category not found"))
			return
		}
		// The list belongs to this heading only if no other heading comes first.
		list, ok := n.NextUntil("ul", "h3")
		if !ok {
			yield(unveil.Case{}, unveil.Mismatch(n, "no model list follows asset category %q", label))
			return
		}

		for _, li := range list.Children("li") {
			for c, err := range p.Model(li) {
				if err != nil {
					if !yield(c, err) {
						return
					}
					continue
				}
				c.AssetCategory = label
				if !yield(c, nil) {
					return
				}
			}
		}
	}
}
