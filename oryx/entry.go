package oryx

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/fwojciec/unveil"
)

// entryDelimiters split an entry into its leading identifiers and the
// trailing status clauses, outer delimiter first.
var entryDelimiters = []string{",", " and ", " or "}

var (
	withCause = regexp.MustCompile(`(?s) with (.+?),`)
	byCause   = regexp.MustCompile(`(?s)^.* by (.+)$`)
)

// Entry is the decomposition of one confirmation anchor text such as
// "1, 2 and 3, destroyed by Bayraktar TB2".
type Entry struct {
	IDs      []int
	Statuses []string

	// Cause is nil when the entry names no cause.
	Cause []string
}

// DecomposeEntry splits an entry text into identifiers, statuses and cause.
//
// Entries come in three shapes:
//
//	"{ids}, {statuses}"
//	"{ids}, with {causes}, {statuses}"
//	"{ids}, {statuses} by {causes}"
//
// Identifiers are the leading tokens made of digits only, de-duplicated in
// order of appearance. Collection stops at the first other token. Statuses
// are the vocabulary words contained in the text, in vocabulary order.
func DecomposeEntry(text string) Entry {
	text = strings.Trim(strings.TrimSpace(text), "()")

	var e Entry
	seen := make(map[int]bool)
	for _, token := range unveil.MultiSplit(text, entryDelimiters) {
		id, ok := identifier(token)
		if !ok {
			break
		}
		if !seen[id] {
			seen[id] = true
			e.IDs = append(e.IDs, id)
		}
	}

	lowered := strings.ToLower(text)
	for _, status := range Statuses {
		if strings.Contains(lowered, status) {
			e.Statuses = append(e.Statuses, status)
		}
	}

	e.Cause = cause(text)
	return e
}

func identifier(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(token)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// cause prefers the "with" marker over the "by" marker.
func cause(text string) []string {
	var m []string
	switch {
	case strings.Contains(text, " with "):
		m = withCause.FindStringSubmatch(text)
	case strings.Contains(text, " by "):
		m = byCause.FindStringSubmatch(text)
	}
	if m == nil {
		return nil
	}
	var causes []string
	for _, item := range unveil.SplitSeries(m[1], ",") {
		if item != "" {
			causes = append(causes, item)
		}
	}
	return causes
}

// Entry yields one case per identifier of the anchor n, stamped with the
// statuses, cause and the anchor's href. An anchor without identifiers
// yields one mismatch. Every case owns its status and cause slices.
func (p *Parser) Entry(n unveil.Node) iter.Seq2[unveil.Case, error] {
	return func(yield func(unveil.Case, error) bool) {
		href, _ := n.Attr("href")
		e := DecomposeEntry(n.Text())
		if len(e.IDs) == 0 {
			yield(unveil.Case{}, unveil.Mismatch(n, "no case identifier"))
			return
		}
		for _, id := range e.IDs {
			c := unveil.Case{
				ModelCaseID:     id,
				Status:          slices.Clone(e.Statuses),
				ConfirmationURL: href,
				Cause:           slices.Clone(e.Cause),
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}
