// Package cmdutil provides shared command utilities: flag groups, collaborator
// construction from configuration, and result output.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/output"
)

// ScaffoldFlags holds flags of the scaffold (root) command.
type ScaffoldFlags struct {
	Template string
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		"Template to use (skips the selection prompt when it matches a catalog entry)")
}

// OutputFlags holds the output format flag of listing commands.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTable),
		"Output format: "+strings.Join(output.ValidFormats(), ", "))
}

// Parse validates the format.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format := output.ParseOutputFormat(f.Format)
	if !format.IsValid() {
		return "", &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				fmt.Sprintf("invalid output format %q", f.Format),
				"--output",
				"valid formats: "+strings.Join(output.ValidFormats(), ", "),
			),
		}
	}
	return format, nil
}

// ResolveTargetArg returns the positional target directory, empty when omitted.
func ResolveTargetArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
