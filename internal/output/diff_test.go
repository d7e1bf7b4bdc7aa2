package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffJSON_NameChange(t *testing.T) {
	before := []byte(`{"name": "template-default", "version": "0.0.0"}`)
	after := []byte(`{"name": "demo-app", "version": "0.0.0"}`)

	diff, err := DiffJSON(before, after, false)
	require.NoError(t, err)
	assert.Contains(t, diff, "name")
	assert.Contains(t, diff, "template-default")
	assert.Contains(t, diff, "demo-app")
	assert.NotContains(t, diff, "version")
}

func TestDiffJSON_NoChange(t *testing.T) {
	doc := []byte(`{"name": "demo-app"}`)

	diff, err := DiffJSON(doc, doc, false)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestDiffJSON_BothEmpty(t *testing.T) {
	diff, err := DiffJSON(nil, []byte("  "), false)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestDiffJSON_Invalid(t *testing.T) {
	_, err := DiffJSON([]byte(`{"name":`), []byte(`{}`), false)
	assert.Error(t, err)
}

func TestIndentDiff(t *testing.T) {
	assert.Equal(t, "  a\n  b\n", IndentDiff("a\n\nb", "  "))
	assert.Empty(t, IndentDiff("", "  "))
}
