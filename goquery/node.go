// Package goquery implements the unveil document tree on top of goquery.
package goquery

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unveil"
	"golang.org/x/net/html"
)

// Ensure Node implements unveil.Node at compile time.
var _ unveil.Node = (*Node)(nil)

// Ensure Parser implements unveil.DocumentParser at compile time.
var _ unveil.DocumentParser = (*Parser)(nil)

// Parser builds unveil.Node trees from HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML document and returns its root node.
func (p *Parser) Parse(r io.Reader) (unveil.Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, unveil.Errorf(unveil.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// Node wraps a single-element goquery selection.
type Node struct {
	sel *goquery.Selection
}

// NewNode wraps the first node of sel.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel.First()}
}

// Children returns the direct child elements with the given tag.
func (n *Node) Children(tag string) []unveil.Node {
	if tag == "" {
		return wrap(n.sel.Children())
	}
	return wrap(n.sel.ChildrenFiltered(tag))
}

// Descendants returns all descendant elements with the given tag in document order.
func (n *Node) Descendants(tag string) []unveil.Node {
	if tag == "" {
		tag = "*"
	}
	return wrap(n.sel.Find(tag))
}

// Next returns the first element with the given tag following this node's
// subtree in document order.
func (n *Node) Next(tag string) (unveil.Node, bool) {
	return n.NextUntil(tag, "")
}

// NextUntil returns the first element with the given tag following this
// node's subtree in document order, unless an element with the stop tag
// comes first. An empty stop tag never stops the walk.
func (n *Node) NextUntil(tag, stop string) (unveil.Node, bool) {
	if len(n.sel.Nodes) == 0 {
		return nil, false
	}
	cur := n.sel.Nodes[0]
	for {
		// Climb until there is a following sibling.
		for cur != nil && cur.NextSibling == nil {
			cur = cur.Parent
		}
		if cur == nil {
			return nil, false
		}
		cur = cur.NextSibling
		found, stopped := firstElement(cur, tag, stop)
		if stopped {
			return nil, false
		}
		if found != nil {
			return &Node{sel: goquery.NewDocumentFromNode(found).Selection}, true
		}
	}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the combined text content of the node and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// HTML returns the node's outer markup.
func (n *Node) HTML() string {
	s, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return ""
	}
	return s
}

// firstElement returns the first element in the subtree rooted at root,
// root included, whose tag matches. It reports stopped when an element
// with the stop tag is reached first.
func firstElement(root *html.Node, tag, stop string) (found *html.Node, stopped bool) {
	if root.Type == html.ElementNode {
		if tag == "" || root.Data == tag {
			return root, false
		}
		if stop != "" && root.Data == stop {
			return nil, true
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found, stopped := firstElement(c, tag, stop); found != nil || stopped {
			return found, stopped
		}
	}
	return nil, false
}

func wrap(sel *goquery.Selection) []unveil.Node {
	nodes := make([]unveil.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}
