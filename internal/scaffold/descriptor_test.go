package scaffold

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/starter/internal/errors"
)

func TestRewriteName(t *testing.T) {
	in := []byte(`{"name":"template-default","version":"1.0.0","scripts":{"dev":"vite"},"keywords":["a","b"]}`)

	out, err := RewriteName(in, "demo-app")
	require.NoError(t, err)

	want := `{
  "name": "demo-app",
  "version": "1.0.0",
  "scripts": {
    "dev": "vite"
  },
  "keywords": [
    "a",
    "b"
  ]
}
`
	assert.Equal(t, want, string(out))
}

func TestRewriteName_AddsMissingName(t *testing.T) {
	out, err := RewriteName([]byte(`{"private": true}`), "demo")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "demo", doc["name"])
	assert.Equal(t, true, doc["private"])
}

func TestRewriteName_SingleTrailingNewline(t *testing.T) {
	out, err := RewriteName([]byte("{\"name\":\"x\"}\n\n\n"), "y")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"y\"\n}\n", string(out))
}

func TestRewriteName_Idempotent(t *testing.T) {
	once, err := RewriteName([]byte(`{"name":"a","b":[1,2]}`), "demo")
	require.NoError(t, err)
	twice, err := RewriteName(once, "demo")
	require.NoError(t, err)
	assert.Equal(t, string(once), string(twice))
}

func TestRewriteName_Rejects(t *testing.T) {
	tests := map[string]string{
		"invalid": `{"name":`,
		"array":   `["name"]`,
		"scalar":  `"name"`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := RewriteName([]byte(in), "demo")
			assert.ErrorIs(t, err, oerrors.ErrValidation)
		})
	}
}
