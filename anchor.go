package helixdoc

import (
	"strings"
	"unicode"
)

// Anchor creates a URL-safe fragment from a heading title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
// It is used for sections whose title heading has no id attribute.
func Anchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// DocsLink joins a reference page URL and a section anchor.
func DocsLink(referenceURL, anchor string) string {
	if anchor == "" {
		return referenceURL
	}
	return referenceURL + "#" + anchor
}
