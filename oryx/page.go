package oryx

import (
	"iter"

	"github.com/fwojciec/unveil"
)

// Cases locates the losses of a belligerent in the article under root and
// returns the lazy case stream of its category headings, each case stamped
// with the belligerent as country of loss.
//
// Returns EINVALID for an unknown belligerent and ENOTFOUND when the
// article or its part for the belligerent is missing.
func (p *Parser) Cases(root unveil.Node, belligerent string) (iter.Seq2[unveil.Case, error], error) {
	index, ok := sectionIndex[belligerent]
	if !ok {
		return nil, unveil.Errorf(unveil.EINVALID, "not a valid belligerent: %q", belligerent)
	}

	article, ok := findArticle(root)
	if !ok {
		return nil, unveil.Errorf(unveil.ENOTFOUND, "article body not found")
	}
	sections := article.Children("div")
	if index >= len(sections) {
		return nil, unveil.Errorf(unveil.ENOTFOUND, "article part %d for %s not found: article has %d parts", index, belligerent, len(sections))
	}

	var headings []unveil.Node
	for _, h := range sections[index].Descendants("h3") {
		if IsCategoryHeader(h.Text()) {
			headings = append(headings, h)
		}
	}

	return func(yield func(unveil.Case, error) bool) {
		for _, h := range headings {
			for c, err := range p.Category(h) {
				if err != nil {
					if !yield(c, err) {
						return
					}
					continue
				}
				c.CountryOfLoss = belligerent
				if !yield(c, nil) {
					return
				}
			}
		}
	}, nil
}

func findArticle(root unveil.Node) (unveil.Node, bool) {
	for _, n := range root.Descendants("") {
		if prop, _ := n.Attr("itemprop"); prop != "articleBody" {
			continue
		}
		if unveil.HasClass(n, "post-body entry-content") {
			return n, true
		}
	}
	return nil, false
}
