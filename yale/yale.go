// Package yale extracts company operating statuses from the Yale tracker of
// companies that curtailed their business in Russia.
//
// The page has one section per operating status. Each section carries a
// status heading, a description paragraph ending in the company count and
// the letter grade, and a table of companies:
//
//	section#withdrawal
//	  div.layout__region.layout__region--one
//	    h3        "Withdrawal"
//	    div.text-long
//	      p       "Companies totally halting ... (1000 Companies) (Grade: A)"
//	    table.responsive-enabled
//	      thead   Name, Action, Industry, Country
//	      tbody   one row per company
package yale

// Section identifiers in page order.
const (
	DiggingIn   = "diggingin"
	BuyingTime  = "buyingtime"
	ScalingBack = "scalingback"
	Suspension  = "suspension"
	Withdrawal  = "withdrawal"
)

// All selects every section.
const All = "all"

// Sections lists the section identifiers in page order.
var Sections = []string{DiggingIn, BuyingTime, ScalingBack, Suspension, Withdrawal}

// Grades is the letter grade scale, best first.
var Grades = []string{"A", "B", "C", "D", "F"}

// Parser walks a Yale page through the page and status section stages.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}
