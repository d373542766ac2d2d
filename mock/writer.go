package mock

import (
	"context"

	"github.com/fwojciec/helixdoc"
)

var _ helixdoc.EndpointWriter = (*EndpointWriter)(nil)

// EndpointWriter is a mock implementation of helixdoc.EndpointWriter.
type EndpointWriter struct {
	WriteEndpointsFn func(ctx context.Context, endpoints []*helixdoc.Endpoint) error
}

func (w *EndpointWriter) WriteEndpoints(ctx context.Context, endpoints []*helixdoc.Endpoint) error {
	return w.WriteEndpointsFn(ctx, endpoints)
}
