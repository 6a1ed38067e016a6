// Package oryx extracts visually confirmed equipment losses from the Oryx
// loss-tracking articles.
//
// An article is laid out as
//
//	article body
//	  div (one per article part; the losses live in one of them)
//	    h3  "Tanks (1234, of which destroyed: ...)"
//	    ul
//	      li  flag img, "12 T-72B3:" then one anchor per confirmation
//	        a  "(1, destroyed)"
//	        a  "(2 and 3, captured)"
//
// and the parser chain mirrors it: Page scopes the article part for a
// belligerent, Category scopes one heading and its list, Model scopes one
// list item and Entry scopes one anchor. Each stage stamps its own fields
// on the cases produced below it.
package oryx

import (
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Belligerents recognized as page selectors.
const (
	Russia  = "russia"
	Ukraine = "ukraine"
)

// sectionIndex maps a belligerent to the position of the article part that
// lists its losses. The Ukrainian page is split into two parts instead of eight.
var sectionIndex = map[string]int{
	Russia:  7,
	Ukraine: 1,
}

// Statuses is the closed vocabulary of asset statuses in canonical order.
var Statuses = []string{
	"abandoned",
	"captured",
	"damaged",
	"destroyed",
	"raised",
	"scuttled",
	"stripped",
	"sunk",
	"beyond economical repair",
}

var lower = cases.Lower(language.Und)

// Parser walks an Oryx article through the page, category, model and entry stages.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new Parser logging diagnostics to logger.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}
