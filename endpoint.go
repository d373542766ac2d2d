package helixdoc

import (
	"bytes"
	"context"
	"encoding/json"
)

// TokenKind names a category of access token an endpoint accepts.
type TokenKind string

// Recognized token kinds. Any other label found in the docs is dropped.
const (
	AppToken  TokenKind = "App Token"
	UserToken TokenKind = "User Token"
)

// TokenRequirement records that a token kind is accepted and, optionally,
// which permission scopes it must carry.
//
// A requirement with nil Scopes means "this token kind, no scopes listed" and
// marshals to the JSON literal true. Once a scope has been seen it marshals
// to the ordered list of scopes.
type TokenRequirement struct {
	Scopes []string
}

// MarshalJSON encodes the requirement as true or as its scope list.
func (r TokenRequirement) MarshalJSON() ([]byte, error) {
	if r.Scopes == nil {
		return []byte("true"), nil
	}
	return json.Marshal(r.Scopes)
}

// UnmarshalJSON accepts either a boolean or a list of scopes.
func (r *TokenRequirement) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		scopes := []string{}
		if err := json.Unmarshal(data, &scopes); err != nil {
			return err
		}
		r.Scopes = scopes
		return nil
	}
	var ok bool
	if err := json.Unmarshal(data, &ok); err != nil {
		return err
	}
	r.Scopes = nil
	return nil
}

// TokenTypes maps each accepted token kind to its requirement.
type TokenTypes map[TokenKind]TokenRequirement

// EndpointSpec is the HTTP method and location of an endpoint.
type EndpointSpec struct {
	HTTPMethod string `json:"httpMethod"`
	Path       string `json:"path"`     // relative to the Helix base URL
	FullPath   string `json:"fullPath"` // base URL + Path
}

// ParamRow is one row of a parameter table.
type ParamRow struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required,omitempty"` // query parameters only
	Description string `json:"description"`
}

// Example is a matched request/response snippet pair.
type Example struct {
	Description string `json:"description"`
	Request     string `json:"request"`
	Response    string `json:"response"`
}

// Endpoint is one documented API endpoint.
type Endpoint struct {
	DocsLink       string       `json:"docsLink"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	TokenTypes     TokenTypes   `json:"tokenTypes"`
	Spec           EndpointSpec `json:"endpoint"`
	RequestParams  []ParamRow   `json:"requestParams"`
	BodyParams     []ParamRow   `json:"bodyParams"`
	ResponseParams []ParamRow   `json:"responseParams"`
	Examples       []Example    `json:"examples"`
}

// Validate returns an error if the endpoint contains invalid fields.
func (e *Endpoint) Validate() error {
	if e.Title == "" {
		return Errorf(EINVALID, "endpoint title required")
	}
	return nil
}

// EndpointWriter serializes an extracted endpoint collection.
type EndpointWriter interface {
	// WriteEndpoints writes all endpoints in the given order.
	// Returns EINVALID if any endpoint fails validation.
	WriteEndpoints(ctx context.Context, endpoints []*Endpoint) error
}
