// Package json writes endpoint collections as a JSON array.
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/helixdoc"
)

// Ensure Writer implements helixdoc.EndpointWriter at compile time.
var _ helixdoc.EndpointWriter = (*Writer)(nil)

// Writer encodes endpoints as an indented JSON array in collection order.
type Writer struct {
	w      io.Writer
	indent string
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndent sets the indentation string. An empty string writes compact JSON.
func WithIndent(indent string) Option {
	return func(w *Writer) {
		w.indent = indent
	}
}

// NewWriter creates a Writer that writes to w, indenting with two spaces.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	jw := &Writer{w: w, indent: "  "}
	for _, opt := range opts {
		opt(jw)
	}
	return jw
}

func (w *Writer) WriteEndpoints(ctx context.Context, endpoints []*helixdoc.Endpoint) error {
	for _, e := range endpoints {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	if endpoints == nil {
		endpoints = []*helixdoc.Endpoint{}
	}

	enc := json.NewEncoder(w.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", w.indent)
	if err := enc.Encode(endpoints); err != nil {
		return fmt.Errorf("encode endpoints: %w", err)
	}
	return nil
}
