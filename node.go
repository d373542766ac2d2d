package helixdoc

// Node is a read-only element in a parsed HTML document.
//
// It is the only view of the document the extraction rules need, which keeps
// them independent of any particular HTML parser. Implementations must return
// an untyped nil from Parent and Next when there is no such element.
type Node interface {
	// Tag returns the lowercase element name, or "" for non-element nodes.
	Tag() string

	// Text returns the combined text of the node and all its descendants.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// HasClass reports whether the class attribute contains name.
	HasClass(name string) bool

	// Parent returns the parent element, or nil at the top of the tree.
	Parent() Node

	// Children returns the element children in document order.
	Children() []Node

	// Next returns the next element sibling, or nil.
	Next() Node
}

// Parser turns raw HTML into a queryable tree.
type Parser interface {
	// Parse returns the document root.
	// Returns EINVALID if the HTML cannot be parsed.
	Parse(html string) (Node, error)
}
