// Package etree writes endpoint collections as an XML document using
// github.com/beevik/etree.
package etree

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/helixdoc"
)

// Ensure Writer implements helixdoc.EndpointWriter at compile time.
var _ helixdoc.EndpointWriter = (*Writer)(nil)

// Writer writes an <endpoints> document with one <endpoint> per record.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteEndpoints(ctx context.Context, endpoints []*helixdoc.Endpoint) error {
	for _, e := range endpoints {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	doc := NewDocument(endpoints)
	doc.Indent(2)
	if _, err := doc.WriteTo(w.w); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}

// NewDocument builds the XML document for endpoints.
func NewDocument(endpoints []*helixdoc.Endpoint) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("endpoints")
	root.CreateAttr("count", strconv.Itoa(len(endpoints)))
	for _, e := range endpoints {
		endpointElement(root, e)
	}
	return doc
}

func endpointElement(parent *etree.Element, e *helixdoc.Endpoint) {
	el := parent.CreateElement("endpoint")
	el.CreateAttr("docsLink", e.DocsLink)
	el.CreateElement("title").SetText(e.Title)
	el.CreateElement("description").SetText(e.Description)

	tokens := el.CreateElement("tokenTypes")
	kinds := make([]helixdoc.TokenKind, 0, len(e.TokenTypes))
	for kind := range e.TokenTypes {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	for _, kind := range kinds {
		token := tokens.CreateElement("token")
		token.CreateAttr("kind", string(kind))
		for _, scope := range e.TokenTypes[kind].Scopes {
			token.CreateElement("scope").SetText(scope)
		}
	}

	spec := el.CreateElement("spec")
	spec.CreateAttr("method", e.Spec.HTTPMethod)
	spec.CreateAttr("path", e.Spec.Path)
	spec.CreateAttr("fullPath", e.Spec.FullPath)

	paramsElement(el, "requestParams", e.RequestParams, true)
	paramsElement(el, "bodyParams", e.BodyParams, false)
	paramsElement(el, "responseParams", e.ResponseParams, false)

	examples := el.CreateElement("examples")
	for _, ex := range e.Examples {
		x := examples.CreateElement("example")
		x.CreateElement("description").SetText(ex.Description)
		x.CreateElement("request").SetText(ex.Request)
		x.CreateElement("response").SetText(ex.Response)
	}
}

func paramsElement(parent *etree.Element, name string, rows []helixdoc.ParamRow, withRequired bool) {
	el := parent.CreateElement(name)
	for _, row := range rows {
		p := el.CreateElement("param")
		p.CreateAttr("name", row.Name)
		p.CreateAttr("type", row.Type)
		if withRequired {
			p.CreateAttr("required", strconv.FormatBool(row.Required))
		}
		p.SetText(row.Description)
	}
}
