package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SectionSelector matches the top-level documentation blocks of the
// Helix API reference.
const SectionSelector = "body > div.main > section.doc-content"

// Detector checks whether HTML follows the Helix reference layout.
// It is used to explain an empty extraction: a page that was fetched before
// its scripts rendered, or a different page altogether, has no sections.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// CountSections returns the number of blocks matching SectionSelector that
// carry a title heading.
func (d *Detector) CountSections(html string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0
	}

	count := 0
	doc.Find(SectionSelector).Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Find(".left-docs h2").First().Text()) != "" {
			count++
		}
	})
	return count
}
