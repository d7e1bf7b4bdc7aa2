package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opmodel/starter/internal/catalog"
	"github.com/opmodel/starter/internal/flow"
	"github.com/opmodel/starter/internal/scaffold"
)

func TestPackageManager(t *testing.T) {
	tests := map[string]string{
		"":                                     "npm",
		"pnpm/9.1.0 npm/? node/v20.11.0 linux": "pnpm",
		"yarn/1.22.22 npm/? node/v20.11.0":     "yarn",
		"bun/1.1.0":                            "bun",
		"npm/10.2.4 node/v20.11.0":             "npm",
		"deno/1.40":                            "npm",
	}
	for ua, want := range tests {
		assert.Equal(t, want, PackageManager(ua), ua)
	}
}

func TestNextSteps(t *testing.T) {
	withDescriptor := &scaffold.Result{Descriptor: &scaffold.DescriptorChange{}}

	assert.Nil(t, NextSteps(&scaffold.Result{}, "npm"))
	assert.Equal(t, []string{"npm install", "npm run dev"}, NextSteps(withDescriptor, "npm"))
	assert.Equal(t, []string{"yarn", "yarn dev"}, NextSteps(withDescriptor, "yarn"))
}

func TestWriteSummary(t *testing.T) {
	cfg := &flow.ResolvedConfig{
		TargetDir:   "demo",
		ProjectName: "demo",
		Template:    &catalog.Template{Name: "t1"},
	}
	res := &scaffold.Result{
		Files:    []string{"README.md", "package.json"},
		Warnings: []string{"could not remove yarn.lock: busy"},
		Descriptor: &scaffold.DescriptorChange{
			OldName: "template-default",
			NewName: "demo",
			Before:  []byte(`{"name":"template-default"}`),
			After:   []byte("{\n  \"name\": \"demo\"\n}\n"),
		},
	}

	t.Run("default", func(t *testing.T) {
		var buf bytes.Buffer
		WriteSummary(&buf, cfg, res, SummaryOpts{UserAgent: "pnpm/9.0.0"})

		out := buf.String()
		assert.Contains(t, out, "Scaffolded")
		assert.Contains(t, out, "demo")
		assert.Contains(t, out, "could not remove yarn.lock")
		assert.Contains(t, out, "cd ")
		assert.Contains(t, out, "pnpm install")
		assert.NotContains(t, out, "README.md")
	})

	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		WriteSummary(&buf, cfg, res, SummaryOpts{Verbose: true})

		out := buf.String()
		assert.Contains(t, out, "README.md")
		assert.Contains(t, out, "name rewritten")
		assert.Contains(t, out, "template-default")
	})

	t.Run("current directory has no cd hint", func(t *testing.T) {
		here := *cfg
		here.TargetDir = "."
		var buf bytes.Buffer
		WriteSummary(&buf, &here, &scaffold.Result{}, SummaryOpts{})
		assert.NotContains(t, buf.String(), "cd ")
	})
}
