package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/flow"
	"github.com/opmodel/starter/internal/output"
	"github.com/opmodel/starter/internal/scaffold"
)

// PrintError reports err on the logger. Structured errors keep their
// multi-line layout.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(msg)
		fmt.Fprint(os.Stderr, detail.Error())
		return
	}
	output.Error(msg, "error", err)
}

// PackageManager names the package manager that invoked us, from the
// npm_config_user_agent convention ("pnpm/9.1.0 npm/? node/v20.11.0 ...").
// It returns "npm" when the agent is unknown.
func PackageManager(userAgent string) string {
	if userAgent == "" {
		return "npm"
	}
	first, _, _ := strings.Cut(userAgent, " ")
	name, _, _ := strings.Cut(first, "/")
	switch name {
	case "pnpm", "yarn", "bun", "npm":
		return name
	default:
		return "npm"
	}
}

// NextSteps returns the commands suggested after scaffolding. Projects
// without a package descriptor get none.
func NextSteps(res *scaffold.Result, pm string) []string {
	if res == nil || res.Descriptor == nil {
		return nil
	}
	if pm == "yarn" {
		return []string{"yarn", "yarn dev"}
	}
	return []string{pm + " install", pm + " run dev"}
}

// SummaryOpts controls WriteSummary.
type SummaryOpts struct {
	Verbose bool
	// UserAgent is the npm_config_user_agent value.
	UserAgent string
}

// WriteSummary prints the completion line, warnings, the descriptor diff and
// file list when verbose, and next-step hints.
func WriteSummary(w io.Writer, cfg *flow.ResolvedConfig, res *scaffold.Result, opts SummaryOpts) {
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Scaffolded %s from %s",
		output.StyleNoun.Render(cfg.ProjectName),
		output.StyleNoun.Render(cfg.Template.Name))))

	for _, warning := range res.Warnings {
		fmt.Fprintln(w, output.StyleWarning.Render("  ! "+warning))
	}

	if opts.Verbose {
		if res.Descriptor != nil {
			WriteDescriptorDiff(w, res.Descriptor, output.IsTTY())
		}
		if len(res.Files) > 0 {
			entries := make([]output.FileEntry, len(res.Files))
			for i, f := range res.Files {
				entries[i] = output.FileEntry{Path: "  " + f}
				if f == scaffold.DescriptorFile && res.Descriptor != nil {
					entries[i].Description = "name rewritten"
				}
			}
			fmt.Fprintln(w)
			fmt.Fprint(w, output.RenderFileTree(entries, 32))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, output.FormatNextSteps(cfg.TargetDir, NextSteps(res, PackageManager(opts.UserAgent))...))
}

// WriteDescriptorDiff prints a dyff of the descriptor rewrite. Diff failures
// are logged and otherwise ignored.
func WriteDescriptorDiff(w io.Writer, change *scaffold.DescriptorChange, useColor bool) {
	diff, err := output.DiffJSON(change.Before, change.After, useColor)
	if err != nil {
		output.Debug("descriptor diff unavailable", "error", err)
		return
	}
	if strings.TrimSpace(diff) == "" {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleAction.Render(scaffold.DescriptorFile))
	fmt.Fprint(w, output.IndentDiff(diff, "  "))
}
