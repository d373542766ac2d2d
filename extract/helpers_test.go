package extract_test

import (
	"github.com/fwojciec/helixdoc/mock"
)

// page wraps sections in the body > div.main layout of the reference.
func page(sections ...*mock.Node) *mock.Node {
	items := make([]any, len(sections))
	for i, s := range sections {
		items[i] = s
	}
	return mock.El("html", mock.El("body", mock.El("div", items...).WithClass("main")))
}

// section builds a section.doc-content with a left-docs and right-code column.
func section(left []any, right []any) *mock.Node {
	return mock.El("section",
		mock.El("div", left...).WithClass("left-docs"),
		mock.El("div", right...).WithClass("right-code"),
	).WithClass("doc-content")
}

// titled returns left-column content starting with an h2 title.
func titled(id, title string, rest ...any) []any {
	return append([]any{mock.El("h2", title).WithID(id)}, rest...)
}

func h3(text string) *mock.Node { return mock.El("h3", text) }

func p(items ...any) *mock.Node { return mock.El("p", items...) }

func a(text string) *mock.Node { return mock.El("a", text).WithAttr("href", "#") }

func strong(text string) *mock.Node { return mock.El("strong", text) }

func code(text string) *mock.Node { return mock.El("code", text) }

func pre(text string) *mock.Node { return mock.El("pre", code(text)) }

// table builds a table with a header row and the given body rows.
func table(header []string, rows ...[]string) *mock.Node {
	var ths []any
	for _, h := range header {
		ths = append(ths, mock.El("th", h))
	}
	var trs []any
	for _, r := range rows {
		var tds []any
		for _, c := range r {
			tds = append(tds, mock.El("td", c))
		}
		trs = append(trs, mock.El("tr", tds...))
	}
	return mock.El("table",
		mock.El("thead", mock.El("tr", ths...)),
		mock.El("tbody", trs...),
	)
}

func mockB(text string) *mock.Node { return mock.El("b", text) }
