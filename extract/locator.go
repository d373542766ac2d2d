package extract

import (
	"iter"

	"github.com/fwojciec/helixdoc"
)

// Section is one titled documentation block of the reference page.
type Section struct {
	Node     helixdoc.Node
	Title    string
	DocsLink string
}

// Sections returns a lazy sequence of the documentation sections under root,
// in document order. A section is a section.doc-content element directly
// inside body > div.main. Blocks without title text are skipped.
//
// The sequence walks the tree as it is consumed and is meant to be ranged
// over once.
func (e *Extractor) Sections(root helixdoc.Node) iter.Seq[Section] {
	return func(yield func(Section) bool) {
		walk(root, func(n helixdoc.Node) bool {
			if !isSectionBlock(n) {
				return true
			}

			heading := titleHeading(n)
			title := textOf(heading)
			if title == "" {
				e.logger().Debug("skipping untitled section")
				return true
			}

			return yield(Section{
				Node:     n,
				Title:    title,
				DocsLink: helixdoc.DocsLink(e.ReferenceURL, anchorOf(heading, title)),
			})
		})
	}
}

// isSectionBlock matches body > div.main > section.doc-content.
func isSectionBlock(n helixdoc.Node) bool {
	if n.Tag() != "section" || !n.HasClass("doc-content") {
		return false
	}
	mainDiv := n.Parent()
	if mainDiv == nil || mainDiv.Tag() != "div" || !mainDiv.HasClass("main") {
		return false
	}
	body := mainDiv.Parent()
	return body != nil && body.Tag() == "body"
}

// titleHeading returns the first h2 inside a .left-docs block of section.
func titleHeading(section helixdoc.Node) helixdoc.Node {
	for _, left := range findAll(section, hasClass("left-docs")) {
		if h := findFirst(left, isTag("h2")); h != nil {
			return h
		}
	}
	return nil
}

// anchorOf returns the heading's id, falling back to one derived from title.
func anchorOf(heading helixdoc.Node, title string) string {
	if id, ok := heading.Attr("id"); ok && id != "" {
		return id
	}
	return helixdoc.Anchor(title)
}
