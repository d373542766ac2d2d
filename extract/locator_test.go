package extract_test

import (
	"testing"

	"github.com/fwojciec/helixdoc/extract"
	"github.com/fwojciec/helixdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Sections(t *testing.T) {
	t.Parallel()

	t.Run("yields titled sections in document order", func(t *testing.T) {
		t.Parallel()

		root := page(
			section(titled("get-users", "Get Users"), nil),
			section(titled("update-user", "Update User"), nil),
		)

		var got []extract.Section
		for s := range extract.NewExtractor().Sections(root) {
			got = append(got, s)
		}

		require.Len(t, got, 2)
		assert.Equal(t, "Get Users", got[0].Title)
		assert.Equal(t, "https://dev.twitch.tv/docs/api/reference#get-users", got[0].DocsLink)
		assert.Equal(t, "Update User", got[1].Title)
		assert.Equal(t, "https://dev.twitch.tv/docs/api/reference#update-user", got[1].DocsLink)
	})

	t.Run("skips sections without title text", func(t *testing.T) {
		t.Parallel()

		root := page(
			section([]any{mock.El("h2", "   ")}, nil),
			section([]any{p("decorative")}, nil),
			section(titled("get-videos", "Get Videos"), nil),
		)

		var titles []string
		for s := range extract.NewExtractor().Sections(root) {
			titles = append(titles, s.Title)
		}

		assert.Equal(t, []string{"Get Videos"}, titles)
	})

	t.Run("derives anchor from title when heading has no id", func(t *testing.T) {
		t.Parallel()

		root := page(section([]any{mock.El("h2", "Get Stream Key")}, nil))

		var links []string
		for s := range extract.NewExtractor().Sections(root) {
			links = append(links, s.DocsLink)
		}

		assert.Equal(t, []string{"https://dev.twitch.tv/docs/api/reference#get-stream-key"}, links)
	})

	t.Run("ignores blocks outside body > div.main", func(t *testing.T) {
		t.Parallel()

		stray := section(titled("stray", "Stray"), nil)
		nested := mock.El("div", section(titled("nested", "Nested"), nil)).WithClass("main")
		root := mock.El("html", mock.El("body",
			stray,
			mock.El("div", nested).WithClass("wrapper"),
			mock.El("div", section(titled("real", "Real"), nil)).WithClass("main"),
		))

		var titles []string
		for s := range extract.NewExtractor().Sections(root) {
			titles = append(titles, s.Title)
		}

		assert.Equal(t, []string{"Real"}, titles)
	})

	t.Run("uses configured reference URL", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor()
		e.ReferenceURL = "http://localhost/reference"

		var links []string
		for s := range e.Sections(page(section(titled("get-users", "Get Users"), nil))) {
			links = append(links, s.DocsLink)
		}

		assert.Equal(t, []string{"http://localhost/reference#get-users"}, links)
	})

	t.Run("stops walking when consumer breaks", func(t *testing.T) {
		t.Parallel()

		root := page(
			section(titled("one", "One"), nil),
			section(titled("two", "Two"), nil),
			section(titled("three", "Three"), nil),
		)

		var titles []string
		for s := range extract.NewExtractor().Sections(root) {
			titles = append(titles, s.Title)
			if len(titles) == 2 {
				break
			}
		}

		assert.Equal(t, []string{"One", "Two"}, titles)
	})
}
