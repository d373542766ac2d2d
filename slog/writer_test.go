package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/helixdoc"
	"github.com/fwojciec/helixdoc/mock"
	helixslog "github.com/fwojciec/helixdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingEndpointWriter_WriteEndpoints(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var written []*helixdoc.Endpoint
	inner := &mock.EndpointWriter{
		WriteEndpointsFn: func(ctx context.Context, endpoints []*helixdoc.Endpoint) error {
			written = endpoints
			return nil
		},
	}
	endpoints := []*helixdoc.Endpoint{{Title: "Get Users"}, {Title: "Get Streams"}}

	err := helixslog.NewLoggingEndpointWriter(inner, "endpoints.csv", logger).WriteEndpoints(context.Background(), endpoints)

	require.NoError(t, err)
	assert.Equal(t, endpoints, written)
	output := buf.String()
	assert.Contains(t, output, "write endpoints")
	assert.Contains(t, output, "dest=endpoints.csv")
	assert.Contains(t, output, "count=2")
}
