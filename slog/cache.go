package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helixdoc"
)

// Ensure LoggingCache implements helixdoc.DocumentCache.
var _ helixdoc.DocumentCache = (*LoggingCache)(nil)

// LoggingCache wraps a DocumentCache with logging. Misses are logged as
// hit=false rather than as errors.
type LoggingCache struct {
	next   helixdoc.DocumentCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next helixdoc.DocumentCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

func (c *LoggingCache) Get(ctx context.Context, url string) (doc *helixdoc.CachedDocument, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"hit", err == nil,
			"duration", time.Since(begin),
		}
		if doc != nil {
			attrs = append(attrs, "bytes", len(doc.HTML), "savedAt", doc.SavedAt)
		}
		if err != nil && helixdoc.ErrorCode(err) != helixdoc.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		c.logger.Info("cache get", attrs...)
	}(time.Now())
	return c.next.Get(ctx, url)
}

func (c *LoggingCache) Put(ctx context.Context, doc *helixdoc.CachedDocument) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache put",
			"url", doc.URL,
			"bytes", len(doc.HTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Put(ctx, doc)
}
