// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/starter/internal/cmd/config"
	"github.com/opmodel/starter/internal/cmdtypes"
	"github.com/opmodel/starter/internal/cmdutil"
	iconfig "github.com/opmodel/starter/internal/config"
	"github.com/opmodel/starter/internal/output"
	"github.com/opmodel/starter/internal/version"
)

// Option customizes the root command.
type Option func(*cmdtypes.GlobalConfig)

// WithDeps injects collaborators, replacing the ones built from configuration.
func WithDeps(deps cmdtypes.Deps) Option {
	return func(gc *cmdtypes.GlobalConfig) {
		gc.Deps = deps
	}
}

// globalFlags holds the persistent flag values.
type globalFlags struct {
	config      string
	verbose     bool
	timestamps  bool
	owner       string
	cloneMethod string
	catalogFile string
}

// NewRootCmd creates the root command for the starter CLI.
func NewRootCmd(opts ...Option) *cobra.Command {
	gc := &cmdtypes.GlobalConfig{}
	for _, opt := range opts {
		opt(gc)
	}

	var (
		flags globalFlags
		sf    cmdutil.ScaffoldFlags
	)

	rootCmd := &cobra.Command{
		Use:   "starter [target-dir]",
		Short: "Scaffold a new project from a template repository",
		Long: `starter creates a new project directory from a template repository.

It asks for a project name, confirms before clearing a non-empty directory,
derives a valid package name, and lets you pick a template from the catalog.
The template is cloned, its package.json name is rewritten, and repository
metadata and lockfiles are removed.

Examples:
  # Fully interactive
  starter

  # Scaffold into ./demo from the t1 template without prompts
  starter demo --template t1

  # Scaffold into the current directory
  starter .`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, gc, &flags)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runScaffold(c, args, gc, &sf)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "Path to config file (env: STARTER_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.StringVar(&flags.owner, "owner", "", "Account whose template repositories form the catalog (env: STARTER_OWNER)")
	pf.StringVar(&flags.cloneMethod, "clone-method", "", "Clone implementation: go-git or git (env: STARTER_CLONE_METHOD)")
	pf.StringVar(&flags.catalogFile, "catalog-file", "", "Read the catalog from a local YAML or JSON file")

	sf.AddTo(rootCmd)

	rootCmd.AddCommand(NewTemplatesCmd(gc))
	rootCmd.AddCommand(config.NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals loads configuration, resolves flag-overridable values,
// and sets up logging.
func initializeGlobals(c *cobra.Command, gc *cmdtypes.GlobalConfig, flags *globalFlags) error {
	pathValue, err := iconfig.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	// A broken config file must not block commands like `config init`.
	loaded, loadErr := iconfig.NewLoader().Load(pathValue.Value)

	gc.ConfigPath = pathValue.Value
	gc.Config = loaded.WithDefaults()
	gc.CatalogFile = flags.catalogFile
	gc.Verbose = flags.verbose
	gc.Resolved = iconfig.ResolveAll(iconfig.ResolveOptions{
		OwnerFlag:       flags.owner,
		CloneMethodFlag: flags.cloneMethod,
		Config:          loaded,
	})

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded != nil && loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", pathValue.Value, "error", loadErr)
	}

	output.Debug("starter started", "version", version.Version, "config", pathValue.Value, "config_source", pathValue.Source)
	if flags.verbose {
		iconfig.LogResolvedValues(gc.Resolved.Values())
	}

	return nil
}
