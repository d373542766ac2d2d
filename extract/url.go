package extract

import (
	"net/http"
	"strings"

	"github.com/fwojciec/helixdoc"
)

// endpointSpec reads the method and path from the code span in the
// paragraph after the "URL" sub-heading.
func (e *Extractor) endpointSpec(section helixdoc.Node) helixdoc.EndpointSpec {
	var raw string
	if p := followingBlock(section, "URL", isTag("p")); p != nil {
		raw = textOf(findFirst(p, isTag("code")))
	}
	return ParseEndpointSpec(raw, e.BaseURL)
}

// ParseEndpointSpec splits "METHOD path" on the first space. A lone token is
// taken as the path with method GET, since some entries omit the verb. The
// base URL prefix is stripped from the path and FullPath rebuilt from it.
func ParseEndpointSpec(raw, baseURL string) helixdoc.EndpointSpec {
	if raw == "" {
		return helixdoc.EndpointSpec{FullPath: baseURL}
	}

	method, path, found := strings.Cut(raw, " ")
	if !found {
		method, path = http.MethodGet, method
	}
	path = strings.TrimPrefix(strings.TrimSpace(path), baseURL)

	return helixdoc.EndpointSpec{
		HTTPMethod: method,
		Path:       path,
		FullPath:   baseURL + path,
	}
}
