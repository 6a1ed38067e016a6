package oryx

import (
	"iter"
	"regexp"
	"strings"

	"github.com/fwojciec/unveil"
	"golang.org/x/text/unicode/norm"
)

// modelPattern matches "12 BRM-1K reconnaissance vehicle", where the leading
// number counts the entries listed for the model and may be missing.
var modelPattern = regexp.MustCompile(`(?s)^\s*(\d*)\s+(.+)$`)

// flagPattern matches Wikimedia national flag URLs such as
//
//	https://upload.wikimedia.org/wikipedia/commons/thumb/a/a9/Flag_of_the_Soviet_Union.svg/23px-Flag_of_the_Soviet_Union.svg.png
var flagPattern = regexp.MustCompile(`^.+/Flag_of_(the_)?(?P<country>[\p{L}\p{N}_]+)(_.+?)?\.svg/.+$`)

// CountryFromFlagURL returns the lowercase country named by a national flag URL.
func CountryFromFlagURL(url string) (string, bool) {
	m := flagPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	country := m[flagPattern.SubexpIndex("country")]
	return lower.String(strings.ReplaceAll(country, "_", " ")), true
}

// ModelName returns the model named by a list item text, or false if the
// text does not start with an optional count followed by whitespace.
func ModelName(text string) (string, bool) {
	// NFKC folds no-break spaces into plain spaces.
	head, _, _ := strings.Cut(norm.NFKC.String(text), ":")
	m := modelPattern.FindStringSubmatch(head)
	if m == nil {
		return "", false
	}
	model := strings.TrimSpace(m[2])
	return model, model != ""
}

// Model yields the cases of every entry anchor in the list item n, stamped
// with the model and its country of production.
func (p *Parser) Model(n unveil.Node) iter.Seq2[unveil.Case, error] {
	return func(yield func(unveil.Case, error) bool) {
		model, ok := ModelName(n.Text())
		if !ok {
			yield(unveil.Case{}, unveil.Mismatch(n, "equipment model not found"))
			return
		}

		country := p.countryOfProduction(n)
		for _, a := range n.Descendants("a") {
			for c, err := range p.Entry(a) {
				if err != nil {
					if !yield(c, err) {
						return
					}
					continue
				}
				c.Model = model
				c.CountryOfProduction = country
				if !yield(c, nil) {
					return
				}
			}
		}
	}
}

// countryOfProduction infers the country from the item's flag image. An
// unrecognized flag leaves the country empty for the rulebook to reject.
func (p *Parser) countryOfProduction(n unveil.Node) string {
	img, ok := unveil.First(n, "img")
	if !ok {
		p.logger.Error("could not find national flag", "node", unveil.Preview(n))
		return ""
	}
	src, _ := img.Attr("src")
	country, ok := CountryFromFlagURL(src)
	if !ok {
		p.logger.Error("could not extract country of production", "url", src)
		return ""
	}
	return country
}
