package yale

import (
	"iter"
	"regexp"
	"strings"

	"github.com/fwojciec/unveil"
)

// definitionPattern matches the section description paragraph.
var definitionPattern = regexp.MustCompile(`(?s)^(?P<definition>.+) \(\d+ Companies\) \(Grade: (?P<grade>\w)\)$`)

// Column labels of the company table.
const (
	ColumnName     = "Name"
	ColumnAction   = "Action"
	ColumnIndustry = "Industry"
	ColumnCountry  = "Country"
)

// Definition returns the description and grade stated by a section
// description paragraph.
func Definition(text string) (description, grade string, ok bool) {
	m := definitionPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", "", false
	}
	return m[definitionPattern.SubexpIndex("definition")], m[definitionPattern.SubexpIndex("grade")], true
}

// Section yields one company per table row of the status section n, each
// stamped with the section's status, description and grade.
func (p *Parser) Section(n unveil.Node) iter.Seq2[unveil.Company, error] {
	return func(yield func(unveil.Company, error) bool) {
		heading, ok := unveil.First(n, "h3")
		if !ok {
			yield(unveil.Company{}, unveil.Mismatch(n, "status heading not found"))
			return
		}
		status := strings.TrimSpace(heading.Text())

		body, ok := unveil.FindByClass(n, "div", "text-long")
		if !ok {
			yield(unveil.Company{}, unveil.Mismatch(n, "description of status %q not found", status))
			return
		}
		para, ok := unveil.First(body, "p")
		if !ok {
			yield(unveil.Company{}, unveil.Mismatch(body, "description of status %q not found", status))
			return
		}
		description, grade, ok := Definition(para.Text())
		if !ok {
			yield(unveil.Company{}, unveil.Mismatch(para, "description of status %q not recognized", status))
			return
		}

		table, ok := unveil.FindByClass(n, "table", "responsive-enabled")
		if !ok {
			yield(unveil.Company{}, unveil.Mismatch(n, "company table of status %q not found", status))
			return
		}
		thead, ok := unveil.First(table, "thead")
		if !ok {
			yield(unveil.Company{}, unveil.Mismatch(table, "company table of status %q has no header", status))
			return
		}
		var columns []string
		for _, th := range thead.Descendants("th") {
			columns = append(columns, strings.TrimSpace(th.Text()))
		}
		tbody, ok := unveil.First(table, "tbody")
		if !ok {
			yield(unveil.Company{}, unveil.Mismatch(table, "company table of status %q has no body", status))
			return
		}

		for _, tr := range tbody.Descendants("tr") {
			cells := tr.Descendants("td")
			if len(cells) > len(columns) {
				if !yield(unveil.Company{}, unveil.Mismatch(tr, "row has %d cells for %d columns", len(cells), len(columns))) {
					return
				}
				continue
			}
			row := make(map[string]string, len(cells))
			for i, td := range cells {
				row[columns[i]] = strings.TrimSpace(td.Text())
			}
			c := unveil.Company{
				Name:        row[ColumnName],
				Action:      row[ColumnAction],
				Industry:    row[ColumnIndustry],
				Country:     row[ColumnCountry],
				Grade:       grade,
				Status:      status,
				Description: description,
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}
