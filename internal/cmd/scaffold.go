package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/starter/internal/cmdtypes"
	"github.com/opmodel/starter/internal/cmdutil"
	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/flow"
	"github.com/opmodel/starter/internal/output"
	"github.com/opmodel/starter/internal/scaffold"
)

// userAgentEnv is set by package managers when they run us (npm create, pnpm create).
const userAgentEnv = "npm_config_user_agent"

func runScaffold(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, sf *cmdutil.ScaffoldFlags) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cat, err := cmdutil.Catalog(gc)
	if err != nil {
		return err
	}

	templates, err := cmdutil.FetchTemplates(ctx, cat)
	if err != nil {
		return handleCancel(c, err)
	}

	cwd, err := cmdutil.Getwd(gc)
	if err != nil {
		return err
	}

	f := &flow.Flow{
		Prompter:  cmdutil.Prompter(gc),
		Cwd:       cwd,
		Templates: templates,
	}
	cfg, err := f.Run(ctx, flow.Input{
		ArgDir:       cmdutil.ResolveTargetArg(args),
		TemplateFlag: sf.Template,
	})
	if err != nil {
		return handleCancel(c, err)
	}

	if cfg.Template == nil {
		return scaffold.ErrTemplateUnavailable
	}

	cloner, err := cmdutil.Cloner(gc)
	if err != nil {
		return err
	}

	projLog := output.ProjectLogger(cfg.ProjectName)
	projLog.Info("scaffolding project", "dir", cfg.Dir(), "template", cfg.Template.Name)

	exe := &scaffold.Executor{
		Cloner:    cloner,
		Lockfiles: gc.Config.WithDefaults().Cleanup.Lockfiles,
		Logger:    projLog,
	}
	res, err := exe.Execute(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return handleCancel(c, oerrors.Cancelled(flow.CancelMessage))
		}
		cmdutil.PrintError("scaffold failed", err)
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	cmdutil.WriteSummary(c.OutOrStdout(), cfg, res, cmdutil.SummaryOpts{
		Verbose:   gc.Verbose,
		UserAgent: os.Getenv(userAgentEnv),
	})
	return nil
}

// handleCancel prints the cancellation message once and maps it to its exit code.
// Other errors pass through unchanged.
func handleCancel(c *cobra.Command, err error) error {
	if !errors.Is(err, oerrors.ErrCancelled) {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), output.FormatCross("Operation cancelled"))
	return &oerrors.ExitError{Code: oerrors.ExitCancelled, Err: err, Printed: true}
}
