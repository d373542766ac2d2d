package extract

import (
	"strings"

	"github.com/fwojciec/helixdoc"
)

// exampleState is the fold state of the example scan. current is the request
// waiting for its response, nil when none is pending.
type exampleState struct {
	current  *helixdoc.Example
	complete []helixdoc.Example
}

// step applies one child of the right-hand code column. Only h3 headings act;
// everything else is a positional anchor for the sibling lookups.
func (s exampleState) step(n helixdoc.Node) exampleState {
	if n.Tag() != "h3" {
		return s
	}
	text := n.Text()

	// A new request replaces any pending one, which is dropped unanswered.
	if strings.Contains(text, "Request") {
		s.current = &helixdoc.Example{
			Description: textOf(nextSibling(n, isTag("p"))),
			Request:     rawTextOf(nextSibling(n, isCodeBlock)),
		}
	}

	if s.current != nil && strings.Contains(text, "Response") {
		ex := *s.current
		ex.Response = rawTextOf(nextSibling(n, isCodeBlock))
		s.complete = append(s.complete, ex)
		s.current = nil
	}
	return s
}

// examples folds over the children of the section's .right-code block and
// returns the completed request/response pairs in order.
func examples(section helixdoc.Node) []helixdoc.Example {
	s := exampleState{complete: []helixdoc.Example{}}
	region := findFirst(section, hasClass("right-code"))
	if region == nil {
		return s.complete
	}
	for _, c := range region.Children() {
		s = s.step(c)
	}
	return s.complete
}

// isCodeBlock matches a snippet, bare or inside the highlighter's div wrapper.
var isCodeBlock = isTag("div", "pre", "code")

// rawTextOf returns the untrimmed text of n, or "" when n is nil. Snippets are
// kept verbatim apart from the leading and trailing newlines the markup adds.
func rawTextOf(n helixdoc.Node) string {
	if n == nil {
		return ""
	}
	return strings.Trim(n.Text(), "\n")
}
