package helixdoc

import (
	"context"
	"time"
)

// Document represents a loaded reference page.
type Document struct {
	URL       string
	HTML      string
	Root      Node
	FromCache bool
	FetchedAt time.Time
}

// DocumentLoader yields a parsed reference page, from a local cache when
// possible and from the network otherwise.
type DocumentLoader interface {
	Load(ctx context.Context, url string) (*Document, error)
}

// CachedDocument is a raw page body held by a DocumentCache.
type CachedDocument struct {
	URL     string    `json:"url"`
	HTML    string    `json:"html"`
	SavedAt time.Time `json:"savedAt"`
}

// Validate returns an error if the cached document contains invalid fields.
func (d *CachedDocument) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "cached document URL required")
	}
	return nil
}

// DocumentCache stores fetched page bodies locally.
type DocumentCache interface {
	// Get returns the cached body for url.
	// Returns ENOTFOUND if nothing is cached for url.
	Get(ctx context.Context, url string) (*CachedDocument, error)

	// Put stores doc, replacing any previous entry for the same URL.
	Put(ctx context.Context, doc *CachedDocument) error
}
