package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helixdoc"
)

// Ensure LoggingLoader implements helixdoc.DocumentLoader.
var _ helixdoc.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with logging.
type LoggingLoader struct {
	next   helixdoc.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next helixdoc.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

func (l *LoggingLoader) Load(ctx context.Context, url string) (doc *helixdoc.Document, err error) {
	defer func(begin time.Time) {
		var fromCache bool
		if doc != nil {
			fromCache = doc.FromCache
		}
		l.logger.Info("load",
			"url", url,
			"fromCache", fromCache,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}
