// Package extract turns the Helix API reference page into endpoint records.
//
// The rules work on any helixdoc.Node tree. They never fail: missing
// sub-headings, tables or examples produce empty values, and sections without
// a title are left out.
package extract

import (
	"log/slog"

	"github.com/fwojciec/helixdoc"
)

// Extractor assembles one helixdoc.Endpoint per documentation section.
type Extractor struct {
	// ReferenceURL is prefixed to section anchors to build docs links.
	ReferenceURL string

	// BaseURL is stripped from endpoint paths and used to build full paths.
	BaseURL string

	// Logger receives debug output about skipped sections. Optional.
	Logger *slog.Logger
}

// NewExtractor returns an Extractor for the public Helix reference.
func NewExtractor() *Extractor {
	return &Extractor{
		ReferenceURL: helixdoc.DefaultReferenceURL,
		BaseURL:      helixdoc.DefaultBaseURL,
	}
}

// Extract returns the endpoints documented under root in section order.
func (e *Extractor) Extract(root helixdoc.Node) []*helixdoc.Endpoint {
	endpoints := []*helixdoc.Endpoint{}
	for section := range e.Sections(root) {
		endpoints = append(endpoints, e.endpoint(section))
	}
	return endpoints
}

// endpoint runs every field rule against one section.
func (e *Extractor) endpoint(s Section) *helixdoc.Endpoint {
	return &helixdoc.Endpoint{
		DocsLink:       s.DocsLink,
		Title:          s.Title,
		Description:    textOf(findFirst(s.Node, isTag("p"))),
		TokenTypes:     tokenTypes(s.Node),
		Spec:           e.endpointSpec(s.Node),
		RequestParams:  params(s.Node, "Request Query Parameters", queryColumns),
		BodyParams:     params(s.Node, "Request Body", bodyColumns),
		ResponseParams: params(s.Node, "Response Body", bodyColumns),
		Examples:       examples(s.Node),
	}
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
