package mock

import (
	"context"

	"github.com/fwojciec/helixdoc"
)

// Compile-time interface verification.
var (
	_ helixdoc.DocumentLoader = (*DocumentLoader)(nil)
	_ helixdoc.DocumentCache  = (*DocumentCache)(nil)
	_ helixdoc.Parser         = (*Parser)(nil)
)

// DocumentLoader is a mock implementation of helixdoc.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, url string) (*helixdoc.Document, error)
}

func (l *DocumentLoader) Load(ctx context.Context, url string) (*helixdoc.Document, error) {
	return l.LoadFn(ctx, url)
}

// DocumentCache is a mock implementation of helixdoc.DocumentCache.
type DocumentCache struct {
	GetFn func(ctx context.Context, url string) (*helixdoc.CachedDocument, error)
	PutFn func(ctx context.Context, doc *helixdoc.CachedDocument) error
}

func (c *DocumentCache) Get(ctx context.Context, url string) (*helixdoc.CachedDocument, error) {
	return c.GetFn(ctx, url)
}

func (c *DocumentCache) Put(ctx context.Context, doc *helixdoc.CachedDocument) error {
	return c.PutFn(ctx, doc)
}

// Parser is a mock implementation of helixdoc.Parser.
type Parser struct {
	ParseFn func(html string) (helixdoc.Node, error)
}

func (p *Parser) Parse(html string) (helixdoc.Node, error) {
	return p.ParseFn(html)
}
