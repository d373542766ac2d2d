package extract

import (
	"strings"

	"github.com/fwojciec/helixdoc"
)

// authState is the fold state of the authorization scan. An empty kind means
// no token link has been seen yet, or the last link named an unknown kind.
type authState struct {
	kind   helixdoc.TokenKind
	tokens helixdoc.TokenTypes
}

// step applies one child of the authorization paragraph. Links select the
// current token kind and bold text following a link is a scope of that kind.
func (s authState) step(n helixdoc.Node) authState {
	if n.Tag() == "a" {
		s.kind = tokenKind(n.Text())
	}
	if s.kind == "" {
		return s
	}

	req := s.tokens[s.kind]
	if isBold(n) {
		req.Scopes = append(req.Scopes, textOf(n))
	}
	s.tokens[s.kind] = req
	return s
}

// tokenTypes folds over the paragraph after the "Authorization" sub-heading.
func tokenTypes(section helixdoc.Node) helixdoc.TokenTypes {
	s := authState{tokens: helixdoc.TokenTypes{}}
	p := followingBlock(section, "Authorization", isTag("p"))
	if p == nil {
		return s.tokens
	}
	for _, c := range p.Children() {
		s = s.step(c)
	}
	return s.tokens
}

// tokenKind maps link text such as "App Access Token" to a known kind.
func tokenKind(text string) helixdoc.TokenKind {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "app"):
		return helixdoc.AppToken
	case strings.Contains(text, "user"):
		return helixdoc.UserToken
	}
	return ""
}

func isBold(n helixdoc.Node) bool {
	return n.Tag() == "strong" || n.Tag() == "b"
}
