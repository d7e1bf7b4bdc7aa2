package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/starter/internal/cmdtypes"
	"github.com/opmodel/starter/internal/config"
	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the starter configuration file against the built-in schema.

The config path is resolved using precedence:
  --config flag > STARTER_CONFIG env > ~/.starter/config.yaml`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, gc)
		},
	}
}

func runVet(c *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	path, err := configPath(gc)
	if err != nil {
		return err
	}

	output.Debug("validating config", "path", path)

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewNotFoundError(
			"configuration file not found",
			path,
			"Run 'starter config init' to create default configuration",
		)
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), path, "")
	}

	if !result.Valid {
		w := c.ErrOrStderr()
		fmt.Fprintln(w, "Error: config validation failed")
		fmt.Fprintf(w, "  File: %s\n\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  %s\n", issue.String())
		}
		return &oerrors.ExitError{
			Code:    oerrors.ExitValidationError,
			Err:     fmt.Errorf("%d config issue(s)", len(result.Issues)),
			Printed: true,
		}
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", path)
	return nil
}
