package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/starter/internal/cmdtypes"
	"github.com/opmodel/starter/internal/config"
	oerrors "github.com/opmodel/starter/internal/errors"
)

const configHeader = "# starter CLI configuration\n# Validate with: starter config vet\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a starter configuration file with default values.

The file is created at ~/.starter/config.yaml unless --config or
STARTER_CONFIG names another location.

Examples:
  # Initialize configuration
  starter config init

  # Overwrite existing configuration
  starter config init --force`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(gc)
	if err != nil {
		return err
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	// 0700 keeps a stored token private.
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.NewPermissionError("could not create config directory",
			map[string]string{"Directory": filepath.Dir(path)}, "")
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.NewPermissionError("could not write config file",
			map[string]string{"File": path}, "")
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", path)
	return nil
}

// configPath returns the resolved config path, falling back to resolution
// when PersistentPreRunE did not run (sub-command tests).
func configPath(gc *cmdtypes.GlobalConfig) (string, error) {
	if gc != nil && gc.ConfigPath != "" {
		return config.ExpandTilde(gc.ConfigPath), nil
	}
	rv, err := config.ResolveConfigPath("")
	if err != nil {
		return "", oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	return config.ExpandTilde(rv.Value), nil
}
