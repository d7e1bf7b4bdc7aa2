package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/opmodel/starter/internal/catalog"
	"github.com/opmodel/starter/internal/cmdtypes"
	"github.com/opmodel/starter/internal/config"
	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/exec"
	"github.com/opmodel/starter/internal/flow"
	"github.com/opmodel/starter/internal/output"
	"github.com/opmodel/starter/internal/scaffold"
)

// Catalog returns the injected catalog, or builds one from --catalog-file
// or the resolved GitHub settings.
func Catalog(gc *cmdtypes.GlobalConfig) (catalog.Catalog, error) {
	if gc.Deps.Catalog != nil {
		return gc.Deps.Catalog, nil
	}

	if gc.CatalogFile != "" {
		output.Debug("using catalog file", "path", gc.CatalogFile)
		return catalog.File{Path: config.ExpandTilde(gc.CatalogFile)}, nil
	}

	cfg := gc.Config.WithDefaults()
	owner, apiURL := cfg.Catalog.Owner, cfg.Catalog.APIURL
	if gc.Resolved != nil {
		owner = gc.Resolved.Owner.Value
		apiURL = gc.Resolved.APIURL.Value
	}

	opts := []catalog.GitHubOption{
		catalog.WithPerPage(cfg.Catalog.PerPage),
		catalog.WithBaseURL(apiURL),
	}
	if cfg.Catalog.Token != "" {
		opts = append(opts, catalog.WithToken(cfg.Catalog.Token))
	}
	return catalog.NewGitHub(owner, opts...)
}

// Runner returns the injected command runner or a real one.
func Runner(gc *cmdtypes.GlobalConfig) exec.CommandRunner {
	if gc.Deps.Runner != nil {
		return gc.Deps.Runner
	}
	return exec.NewRealRunner()
}

// Cloner returns the injected cloner or the one selected by clone.method.
func Cloner(gc *cmdtypes.GlobalConfig) (scaffold.Cloner, error) {
	if gc.Deps.Cloner != nil {
		return gc.Deps.Cloner, nil
	}

	cfg := gc.Config.WithDefaults()
	method := cfg.Clone.Method
	if gc.Resolved != nil {
		method = gc.Resolved.CloneMethod.Value
	}
	return scaffold.NewCloner(method, cfg.Clone.Depth, Runner(gc))
}

// Prompter returns the injected prompter or an interactive huh prompter.
func Prompter(gc *cmdtypes.GlobalConfig) flow.Prompter {
	if gc.Deps.Prompter != nil {
		return gc.Deps.Prompter
	}
	return flow.NewHuhPrompter()
}

// Getwd returns the working directory.
func Getwd(gc *cmdtypes.GlobalConfig) (string, error) {
	getwd := gc.Deps.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// FetchTemplates lists the catalog behind a spinner. Failures are printed
// and returned as an *ExitError with Printed set.
func FetchTemplates(ctx context.Context, cat catalog.Catalog) ([]catalog.Template, error) {
	var templates []catalog.Template
	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var err error
		templates, err = cat.List(ctx)
		return err
	}, output.WithTitle("Fetching templates..."))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, oerrors.Cancelled(flow.CancelMessage)
		}
		PrintError("could not fetch templates", err)
		return nil, &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	output.Debug("fetched templates", "count", len(templates))
	return templates, nil
}
