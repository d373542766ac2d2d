package json_test

import (
	"bytes"
	"context"
	encjson "encoding/json"
	"testing"

	"github.com/fwojciec/helixdoc"
	"github.com/fwojciec/helixdoc/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ helixdoc.EndpointWriter = &json.Writer{}
}

func TestWriter_WriteEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("encodes record shape", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := json.NewWriter(&buf, json.WithIndent("")).WriteEndpoints(context.Background(), []*helixdoc.Endpoint{{
			DocsLink:   "https://dev.twitch.tv/docs/api/reference#get-users",
			Title:      "Get Users",
			TokenTypes: helixdoc.TokenTypes{helixdoc.AppToken: {}},
			Spec: helixdoc.EndpointSpec{
				HTTPMethod: "GET",
				Path:       "users",
				FullPath:   "https://api.twitch.tv/helix/users",
			},
			RequestParams:  []helixdoc.ParamRow{{Name: "id", Type: "String", Required: true, Description: "User ID."}},
			BodyParams:     []helixdoc.ParamRow{},
			ResponseParams: []helixdoc.ParamRow{},
			Examples:       []helixdoc.Example{},
		}})

		require.NoError(t, err)
		assert.JSONEq(t, `[{
			"docsLink": "https://dev.twitch.tv/docs/api/reference#get-users",
			"title": "Get Users",
			"description": "",
			"tokenTypes": {"App Token": true},
			"endpoint": {"httpMethod": "GET", "path": "users", "fullPath": "https://api.twitch.tv/helix/users"},
			"requestParams": [{"name": "id", "type": "String", "required": true, "description": "User ID."}],
			"bodyParams": [],
			"responseParams": [],
			"examples": []
		}]`, buf.String())
	})

	t.Run("writes empty array for no endpoints", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := json.NewWriter(&buf).WriteEndpoints(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("rejects endpoint without title", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := json.NewWriter(&buf).WriteEndpoints(context.Background(), []*helixdoc.Endpoint{{Description: "x"}})

		assert.Equal(t, helixdoc.EINVALID, helixdoc.ErrorCode(err))
	})

	t.Run("reads back what it wrote", func(t *testing.T) {
		t.Parallel()

		want := []*helixdoc.Endpoint{{
			Title:      "Start Commercial",
			TokenTypes: helixdoc.TokenTypes{helixdoc.UserToken: {Scopes: []string{"channel:edit:commercial"}}},
			Examples:   []helixdoc.Example{{Request: "curl -d 'a&b'", Response: "{}"}},
		}}
		var buf bytes.Buffer
		require.NoError(t, json.NewWriter(&buf).WriteEndpoints(context.Background(), want))
		assert.Contains(t, buf.String(), "a&b")

		var got []*helixdoc.Endpoint
		require.NoError(t, encjson.Unmarshal(buf.Bytes(), &got))

		assert.Equal(t, want, got)
	})
}
