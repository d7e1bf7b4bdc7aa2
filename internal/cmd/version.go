package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/starter/internal/cmdtypes"
	"github.com/opmodel/starter/internal/cmdutil"
	"github.com/opmodel/starter/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show starter version information.

Displays:
  - starter version, commit, and build date
  - the linked go-git version
  - the git binary used by --clone-method git, if installed`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.GetInfo()
			gitInfo := version.DetectGitBinary(c.Context(), cmdutil.Runner(gc))

			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(info, gitInfo))
			return nil
		},
	}
}
