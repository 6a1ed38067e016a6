package unveil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PreviewLen bounds the node markup included in scope diagnostics.
const PreviewLen = 150

// Node is a read-only element of a parsed document tree.
// Parser chains depend only on this interface, never on a concrete tree library.
// An empty tag matches any element.
type Node interface {
	// Children returns the direct child elements with the given tag.
	Children(tag string) []Node

	// Descendants returns all descendant elements with the given tag
	// in document order.
	Descendants(tag string) []Node

	// Next returns the first element with the given tag that follows this
	// node's subtree in document order.
	Next(tag string) (Node, bool)

	// NextUntil is like Next but gives up once it reaches an element with
	// the stop tag before finding one with the given tag.
	NextUntil(tag, stop string) (Node, bool)

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Text returns the combined text content of the node and its descendants.
	Text() string

	// HTML returns the node's outer markup.
	HTML() string
}

// First returns the first descendant of n with the given tag.
func First(n Node, tag string) (Node, bool) {
	nodes := n.Descendants(tag)
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// HasClass reports whether the node's class attribute contains every
// whitespace-separated class in classes.
func HasClass(n Node, classes string) bool {
	attr, ok := n.Attr("class")
	if !ok {
		return false
	}
	have := strings.Fields(attr)
	for _, want := range strings.Fields(classes) {
		found := false
		for _, c := range have {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FindByClass returns the first descendant with the given tag carrying all
// of the given classes.
func FindByClass(n Node, tag, classes string) (Node, bool) {
	for _, d := range n.Descendants(tag) {
		if HasClass(d, classes) {
			return d, true
		}
	}
	return nil, false
}

// Preview returns the node's markup truncated to PreviewLen bytes.
func Preview(n Node) string {
	if n == nil {
		return "<nil>"
	}
	html := n.HTML()
	if len(html) <= PreviewLen {
		return html
	}
	end := PreviewLen
	for end > 0 && !utf8.RuneStart(html[end]) {
		end--
	}
	return html[:end]
}

// Mismatch returns an EMISMATCH error for a structural expectation that
// failed on n. The message carries a bounded preview of the node.
func Mismatch(n Node, format string, args ...any) *Error {
	return Errorf(EMISMATCH, "%s: %s", fmt.Sprintf(format, args...), Preview(n))
}
