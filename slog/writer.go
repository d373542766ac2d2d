package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helixdoc"
)

// Ensure LoggingEndpointWriter implements helixdoc.EndpointWriter.
var _ helixdoc.EndpointWriter = (*LoggingEndpointWriter)(nil)

// LoggingEndpointWriter wraps an EndpointWriter with logging. Name labels
// the destination in log lines.
type LoggingEndpointWriter struct {
	next   helixdoc.EndpointWriter
	name   string
	logger *slog.Logger
}

// NewLoggingEndpointWriter creates a new LoggingEndpointWriter.
func NewLoggingEndpointWriter(next helixdoc.EndpointWriter, name string, logger *slog.Logger) *LoggingEndpointWriter {
	return &LoggingEndpointWriter{next: next, name: name, logger: logger}
}

func (w *LoggingEndpointWriter) WriteEndpoints(ctx context.Context, endpoints []*helixdoc.Endpoint) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write endpoints",
			"dest", w.name,
			"count", len(endpoints),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteEndpoints(ctx, endpoints)
}
