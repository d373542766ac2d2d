package mock

import (
	"fmt"
	"strings"

	"github.com/fwojciec/helixdoc"
)

var _ helixdoc.Node = (*Node)(nil)

// Node is an in-memory implementation of helixdoc.Node for building
// synthetic document trees in tests without an HTML parser.
//
// Build trees with El and chain WithID, WithClass and WithAttr:
//
//	mock.El("h3", "URL").WithID("url")
type Node struct {
	tag     string
	text    string
	attrs   map[string]string
	parent  *Node
	content []*Node
}

// El returns an element with the given tag. Each item is either a string,
// which becomes a text node, or a *Node, which becomes a child element.
func El(tag string, items ...any) *Node {
	n := &Node{tag: tag, attrs: make(map[string]string)}
	for _, item := range items {
		switch v := item.(type) {
		case string:
			n.content = append(n.content, &Node{text: v, parent: n})
		case *Node:
			v.parent = n
			n.content = append(n.content, v)
		default:
			panic(fmt.Sprintf("mock.El: unsupported child type %T", item))
		}
	}
	return n
}

// WithID sets the id attribute and returns n.
func (n *Node) WithID(id string) *Node {
	return n.WithAttr("id", id)
}

// WithClass sets the class attribute and returns n.
func (n *Node) WithClass(class string) *Node {
	return n.WithAttr("class", class)
}

// WithAttr sets an attribute and returns n.
func (n *Node) WithAttr(name, value string) *Node {
	n.attrs[name] = value
	return n
}

func (n *Node) Tag() string {
	return n.tag
}

func (n *Node) Text() string {
	if n.tag == "" {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.content {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) HasClass(name string) bool {
	for _, c := range strings.Fields(n.attrs["class"]) {
		if c == name {
			return true
		}
	}
	return false
}

func (n *Node) Parent() helixdoc.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Children() []helixdoc.Node {
	var children []helixdoc.Node
	for _, c := range n.content {
		if c.tag != "" {
			children = append(children, c)
		}
	}
	return children
}

func (n *Node) Next() helixdoc.Node {
	if n.parent == nil {
		return nil
	}
	seen := false
	for _, c := range n.parent.content {
		if c == n {
			seen = true
			continue
		}
		if seen && c.tag != "" {
			return c
		}
	}
	return nil
}
