package helixdoc

import (
	"fmt"
	"strings"
)

// FormatEndpoints formats endpoints as a one-line-per-endpoint listing.
// Each line shows the method, the path relative to the base URL and the title.
// Endpoints without a method are shown with "-".
func FormatEndpoints(endpoints []*Endpoint) string {
	if len(endpoints) == 0 {
		return ""
	}

	lines := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		method := e.Spec.HTTPMethod
		if method == "" {
			method = "-"
		}
		lines = append(lines, fmt.Sprintf("%-6s %s  %s", method, e.Spec.Path, e.Title))
	}

	return strings.Join(lines, "\n")
}
