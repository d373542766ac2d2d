// Package csv writes endpoint collections as a CSV table.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/helixdoc"
)

// Header lists the table columns in order. Nested values are JSON-encoded
// inside their cell.
var Header = []string{
	"docsLink",
	"title",
	"description",
	"tokenTypes",
	"httpMethod",
	"path",
	"fullPath",
	"requestParams",
	"bodyParams",
	"responseParams",
	"examples",
}

// Ensure Writer implements helixdoc.EndpointWriter at compile time.
var _ helixdoc.EndpointWriter = (*Writer)(nil)

// Writer writes one header row and one row per endpoint.
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

	cw := csv.NewWriter(w.w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range endpoints {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := Record(e)
		if err != nil {
			return err
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %q: %w", e.Title, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Record returns the CSV cells for e in Header order.
func Record(e *helixdoc.Endpoint) ([]string, error) {
	nested := []any{e.TokenTypes, e.RequestParams, e.BodyParams, e.ResponseParams, e.Examples}
	cells := make([]string, len(nested))
	for i, v := range nested {
		cell, err := encode(v)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", e.Title, err)
		}
		cells[i] = cell
	}

	return []string{
		e.DocsLink,
		e.Title,
		e.Description,
		cells[0],
		e.Spec.HTTPMethod,
		e.Spec.Path,
		e.Spec.FullPath,
		cells[1],
		cells[2],
		cells[3],
		cells[4],
	}, nil
}

// encode marshals v as compact JSON without escaping HTML characters, so
// snippets keep their literal & < > characters.
func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
