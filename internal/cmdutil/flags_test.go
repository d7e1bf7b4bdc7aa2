package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/output"
)

func TestScaffoldFlags_AddTo(t *testing.T) {
	var sf ScaffoldFlags
	cmd := &cobra.Command{Use: "test"}
	sf.AddTo(cmd)

	tmplFlag := cmd.Flags().Lookup("template")
	require.NotNil(t, tmplFlag)
	assert.Equal(t, "t", tmplFlag.Shorthand)
	assert.Equal(t, "", tmplFlag.DefValue)

	require.NoError(t, cmd.Flags().Parse([]string{"-t", "react-ts"}))
	assert.Equal(t, "react-ts", sf.Template)
}

func TestOutputFlags(t *testing.T) {
	var of OutputFlags
	cmd := &cobra.Command{Use: "test"}
	of.AddTo(cmd)

	outFlag := cmd.Flags().Lookup("output")
	require.NotNil(t, outFlag)
	assert.Equal(t, "o", outFlag.Shorthand)
	assert.Equal(t, "table", outFlag.DefValue)

	of.Format = "yml"
	format, err := of.Parse()
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, format)

	of.Format = "xml"
	_, err = of.Parse()
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestResolveTargetArg(t *testing.T) {
	assert.Equal(t, "", ResolveTargetArg(nil))
	assert.Equal(t, "demo", ResolveTargetArg([]string{"demo"}))
}
