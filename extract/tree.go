package extract

import (
	"slices"
	"strings"

	"github.com/fwojciec/helixdoc"
)

// match reports whether a node satisfies a structural rule.
type match func(n helixdoc.Node) bool

// walk visits the descendants of n in document order. It stops and returns
// false as soon as visit returns false.
func walk(n helixdoc.Node, visit func(helixdoc.Node) bool) bool {
	for _, c := range n.Children() {
		if !visit(c) || !walk(c, visit) {
			return false
		}
	}
	return true
}

// findFirst returns the first descendant of n matching m, or nil.
func findFirst(n helixdoc.Node, m match) helixdoc.Node {
	var found helixdoc.Node
	walk(n, func(c helixdoc.Node) bool {
		if m(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// findAll returns every descendant of n matching m, in document order.
func findAll(n helixdoc.Node, m match) []helixdoc.Node {
	var found []helixdoc.Node
	walk(n, func(c helixdoc.Node) bool {
		if m(c) {
			found = append(found, c)
		}
		return true
	})
	return found
}

func isTag(tags ...string) match {
	return func(n helixdoc.Node) bool {
		return slices.Contains(tags, n.Tag())
	}
}

func hasClass(class string) match {
	return func(n helixdoc.Node) bool {
		return n.HasClass(class)
	}
}

func isHeading(n helixdoc.Node) bool {
	switch n.Tag() {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// subHeading matches an h3 whose text contains label.
func subHeading(label string) match {
	return func(n helixdoc.Node) bool {
		return n.Tag() == "h3" && strings.Contains(n.Text(), label)
	}
}

// nextSibling returns the first following sibling of n matching m. The scan
// stops at the next heading so that a block never leaks into the
// neighbouring sub-section.
func nextSibling(n helixdoc.Node, m match) helixdoc.Node {
	for s := n.Next(); s != nil; s = s.Next() {
		if isHeading(s) {
			return nil
		}
		if m(s) {
			return s
		}
	}
	return nil
}

// followingBlock finds the first sub-heading in section containing label and
// returns the sibling block after it that matches m.
func followingBlock(section helixdoc.Node, label string, m match) helixdoc.Node {
	h := findFirst(section, subHeading(label))
	if h == nil {
		return nil
	}
	return nextSibling(h, m)
}

// textOf returns the trimmed text of n, or "" when n is nil.
func textOf(n helixdoc.Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text())
}
