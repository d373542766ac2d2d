// Package fs provides a file-based cache for fetched reference pages.
package fs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/helixdoc"
)

// Ensure Cache implements helixdoc.DocumentCache at compile time.
var _ helixdoc.DocumentCache = (*Cache)(nil)

// Cache stores page bodies as HTML files under a base directory, one file per
// URL. A file's modification time records when the page was saved.
type Cache struct {
	baseDir string
}

// NewCache creates a Cache rooted at baseDir.
func NewCache(baseDir string) *Cache {
	return &Cache{baseDir: baseDir}
}

// CachePath converts a page URL to a relative file path.
// Example: https://dev.twitch.tv/docs/api/reference → dev.twitch.tv/docs/api/reference.html
func CachePath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", helixdoc.Errorf(helixdoc.EINVALID, "invalid cache URL %q", rawURL)
	}
	if u.Host == "" {
		return "", helixdoc.Errorf(helixdoc.EINVALID, "cache URL %q has no host", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	// Root or trailing slash → index.html
	if path == "" || strings.HasSuffix(path, "/") {
		path += "index"
	}

	p := filepath.Join(u.Host, filepath.FromSlash(path)+".html")
	if !filepath.IsLocal(p) {
		return "", helixdoc.Errorf(helixdoc.EINVALID, "cache URL %q escapes the cache directory", rawURL)
	}
	return p, nil
}

func (c *Cache) Get(ctx context.Context, rawURL string) (*helixdoc.CachedDocument, error) {
	fullPath, err := c.fullPath(rawURL)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, helixdoc.Errorf(helixdoc.ENOTFOUND, "no cached page for %s", rawURL)
	} else if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("stat cache: %w", err)
	}

	return &helixdoc.CachedDocument{
		URL:     rawURL,
		HTML:    string(data),
		SavedAt: info.ModTime(),
	}, nil
}

// Put writes doc to a temporary file and renames it into place so readers
// never observe a partial page.
func (c *Cache) Put(ctx context.Context, doc *helixdoc.CachedDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	fullPath, err := c.fullPath(doc.URL)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(doc.HTML); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if !doc.SavedAt.IsZero() {
		if err := os.Chtimes(tmp.Name(), doc.SavedAt, doc.SavedAt); err != nil {
			return fmt.Errorf("set cache time: %w", err)
		}
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return fmt.Errorf("rename cache file: %w", err)
	}
	return nil
}

func (c *Cache) fullPath(rawURL string) (string, error) {
	relPath, err := CachePath(rawURL)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.baseDir, relPath), nil
}
