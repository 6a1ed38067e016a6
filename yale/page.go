package yale

import (
	"iter"
	"slices"

	"github.com/fwojciec/unveil"
)

const regionClasses = "layout__region layout__region--one"

// Companies returns the lazy company stream of the selected sections.
// The selector is All or a single section identifier.
//
// Returns EINVALID for an unknown selector and ENOTFOUND when none of the
// selected sections is on the page. When scanning all sections, each one
// missing yields a single EMISMATCH error.
func (p *Parser) Companies(root unveil.Node, selector string) (iter.Seq2[unveil.Company, error], error) {
	ids := []string{selector}
	switch {
	case selector == All:
		ids = Sections
	case !slices.Contains(Sections, selector):
		return nil, unveil.Errorf(unveil.EINVALID, "not a valid section: %q", selector)
	}

	regions := make([]unveil.Node, len(ids))
	found := 0
	for i, id := range ids {
		if region, ok := findRegion(root, id); ok {
			regions[i] = region
			found++
		}
	}
	if found == 0 {
		return nil, unveil.Errorf(unveil.ENOTFOUND, "no status section found for %q", selector)
	}

	return func(yield func(unveil.Company, error) bool) {
		for i, region := range regions {
			if region == nil {
				if !yield(unveil.Company{}, unveil.Errorf(unveil.EMISMATCH, "status section %q not found", ids[i])) {
					return
				}
				continue
			}
			for c, err := range p.Section(region) {
				if !yield(c, err) {
					return
				}
			}
		}
	}, nil
}

func findRegion(root unveil.Node, id string) (unveil.Node, bool) {
	for _, section := range root.Descendants("section") {
		if v, _ := section.Attr("id"); v != id {
			continue
		}
		return unveil.FindByClass(section, "", regionClasses)
	}
	return nil, false
}
