// Package load provides cache-first loading of the reference page.
package load

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/helixdoc"
)

var _ helixdoc.DocumentLoader = (*Loader)(nil)

// Loader reads the page from Cache when a usable copy exists and otherwise
// fetches it, stores it in Cache and parses it.
type Loader struct {
	Fetcher helixdoc.Fetcher
	Cache   helixdoc.DocumentCache
	Parser  helixdoc.Parser

	// MaxAge is how long a cached copy stays usable. Zero never expires.
	MaxAge time.Duration

	// Refresh skips the cache read. The fetched page is still stored.
	Refresh bool

	// RetryDelays are the waits between fetch attempts. Nil fetches once.
	RetryDelays []time.Duration

	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (l *Loader) Load(ctx context.Context, url string) (*helixdoc.Document, error) {
	if url == "" {
		return nil, helixdoc.Errorf(helixdoc.EINVALID, "reference URL required")
	}

	if cached := l.cached(ctx, url); cached != nil {
		return l.parse(cached.URL, cached.HTML, true, cached.SavedAt)
	}

	html, err := FetchWithRetry(ctx, url, l.Fetcher.Fetch, l.Logger, l.RetryDelays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	fetchedAt := l.now()
	if l.Cache != nil {
		err := l.Cache.Put(ctx, &helixdoc.CachedDocument{URL: url, HTML: html, SavedAt: fetchedAt})
		if err != nil {
			return nil, fmt.Errorf("cache %s: %w", url, err)
		}
	}

	return l.parse(url, html, false, fetchedAt)
}

// cached returns a usable cache entry or nil. Cache read failures other than
// a miss are logged and treated as a miss.
func (l *Loader) cached(ctx context.Context, url string) *helixdoc.CachedDocument {
	if l.Cache == nil || l.Refresh {
		return nil
	}

	doc, err := l.Cache.Get(ctx, url)
	if err != nil {
		if helixdoc.ErrorCode(err) != helixdoc.ENOTFOUND && l.Logger != nil {
			l.Logger.Warn("cache read failed", "url", url, "err", err)
		}
		return nil
	}

	if l.MaxAge > 0 && l.now().Sub(doc.SavedAt) > l.MaxAge {
		if l.Logger != nil {
			l.Logger.Debug("cache entry expired", "url", url, "savedAt", doc.SavedAt)
		}
		return nil
	}
	return doc
}

func (l *Loader) parse(url, html string, fromCache bool, fetchedAt time.Time) (*helixdoc.Document, error) {
	root, err := l.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return &helixdoc.Document{
		URL:       url,
		HTML:      html,
		Root:      root,
		FromCache: fromCache,
		FetchedAt: fetchedAt,
	}, nil
}

func (l *Loader) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}
