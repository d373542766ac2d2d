// Package goquery provides a helixdoc.Node implementation backed by goquery
// and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/helixdoc"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ helixdoc.Node   = (*Node)(nil)
	_ helixdoc.Parser = (*Parser)(nil)
)

// Parser parses HTML into a goquery-backed tree.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses s and returns the document root.
func (p *Parser) Parse(s string) (helixdoc.Node, error) {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, helixdoc.Errorf(helixdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewNode(goquery.NewDocumentFromNode(root).Selection), nil
}

// Node wraps the first element of a goquery selection.
type Node struct {
	sel *goquery.Selection
}

// NewNode returns a Node for the first node in sel.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel.First()}
}

// Tag returns the element name, or "" for the document node.
func (n *Node) Tag() string {
	if n.sel.Length() == 0 {
		return ""
	}
	node := n.sel.Get(0)
	if node.Type != html.ElementNode {
		return ""
	}
	return node.Data
}

func (n *Node) Text() string {
	return n.sel.Text()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *Node) HasClass(name string) bool {
	return n.sel.HasClass(name)
}

// Parent returns the parent element. The html element has no parent.
func (n *Node) Parent() helixdoc.Node {
	p := n.sel.Parent()
	if p.Length() == 0 {
		return nil
	}
	return &Node{sel: p}
}

func (n *Node) Children() []helixdoc.Node {
	children := n.sel.Children()
	nodes := make([]helixdoc.Node, 0, children.Length())
	children.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

func (n *Node) Next() helixdoc.Node {
	s := n.sel.Next()
	if s.Length() == 0 {
		return nil
	}
	return &Node{sel: s}
}
