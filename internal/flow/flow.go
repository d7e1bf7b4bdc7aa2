package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/opmodel/starter/internal/catalog"
	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/naming"
	"github.com/opmodel/starter/internal/output"
	"github.com/opmodel/starter/internal/target"
)

// CancelMessage is printed when the user aborts or declines to overwrite.
const CancelMessage = "✖ Operation cancelled"

// Prompt messages.
const (
	MsgProjectName     = "Project name:"
	MsgPackageName     = "Package name:"
	MsgSelectTemplate  = "Select a template:"
	MsgInvalidPackage  = "Invalid package.json name"
	msgOverwriteSuffix = " is not empty. Remove existing files and continue?"
)

// InputPrompt describes a free-text question.
type InputPrompt struct {
	Message string
	Default string
	// Validate rejects a submission when it returns an error. May be nil.
	Validate func(string) error
	// Describe renders a hint from the current answer and is re-run as the
	// answer changes. May be nil.
	Describe func(string) string
}

// Prompter asks the user questions. Implementations return an error wrapping
// errors.ErrCancelled when the user aborts.
type Prompter interface {
	Input(ctx context.Context, p InputPrompt) (string, error)
	Confirm(ctx context.Context, message string) (bool, error)
	Select(ctx context.Context, message string, templates []catalog.Template) (*catalog.Template, error)
}

// Input holds what was supplied on the command line.
type Input struct {
	// ArgDir is the positional target directory, empty when omitted.
	ArgDir string
	// TemplateFlag is the --template value, empty when omitted.
	TemplateFlag string
}

// ResolvedConfig is the outcome of a completed flow.
type ResolvedConfig struct {
	// TargetDir is relative to Cwd, or "." for the working directory.
	TargetDir string
	// Cwd is the working directory the flow ran in.
	Cwd         string
	ProjectName string
	// PackageName is empty when the project name was already a valid package name.
	PackageName string
	// Template is nil when nothing was selected.
	Template *catalog.Template
	// Overwrite is nil when the target was absent or empty.
	Overwrite *bool
}

// Dir returns the absolute target directory.
func (c *ResolvedConfig) Dir() string {
	return target.AbsPath(c.Cwd, c.TargetDir)
}

// Flow drives the prompts. The zero value is not usable; Prompter and Cwd are required.
type Flow struct {
	Prompter  Prompter
	Cwd       string
	Templates []catalog.Template

	// NeedsOverwrite probes the target; defaults to target.NeedsOverwrite.
	NeedsOverwrite func(dir string) (bool, error)
}

// Run walks the states until Done or Cancelled. It performs no filesystem writes.
func (f *Flow) Run(ctx context.Context, in Input) (*ResolvedConfig, error) {
	var a Answers

	if dir := naming.FormatTargetDirString(in.ArgDir); dir != "" {
		if err := f.settleTarget(&a, dir); err != nil {
			return nil, err
		}
	}

	if t := catalog.Find(f.Templates, in.TemplateFlag); t != nil {
		a.Template = t
	} else if in.TemplateFlag != "" {
		output.Debug("template flag does not match catalog", "template", in.TemplateFlag)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, oerrors.Cancelled(CancelMessage)
		}

		state := NextState(a)
		output.Debug("flow state", "state", state.String())

		switch state {
		case StateProjectName:
			answer, err := f.Prompter.Input(ctx, InputPrompt{
				Message:  MsgProjectName,
				Default:  target.DefaultTargetDir,
				Describe: f.describeTarget,
			})
			if err != nil {
				return nil, err
			}
			if err := f.settleTarget(&a, target.Resolve("", &answer)); err != nil {
				return nil, err
			}

		case StateOverwrite:
			ok, err := f.Prompter.Confirm(ctx, OverwriteMessage(a.TargetDir))
			if err != nil {
				return nil, err
			}
			a.Overwrite = &ok

		case StatePackageName:
			answer, err := f.Prompter.Input(ctx, InputPrompt{
				Message:  MsgPackageName,
				Default:  naming.ToValidPackageName(a.ProjectName),
				Validate: validatePackageName,
			})
			if err != nil {
				return nil, err
			}
			if !naming.IsValidPackageName(answer) {
				return nil, oerrors.NewValidationError(MsgInvalidPackage, answer, "package names are lowercase and URL-safe")
			}
			a.PackageName = answer
			a.PackageNameAnswered = true

		case StateTemplate:
			a.TemplateAnswered = true
			if len(f.Templates) == 0 {
				continue
			}
			t, err := f.Prompter.Select(ctx, TemplateMessage(in.TemplateFlag), f.Templates)
			if err != nil {
				return nil, err
			}
			a.Template = t

		case StateCancelled:
			return nil, oerrors.Cancelled(CancelMessage)

		case StateDone:
			return &ResolvedConfig{
				TargetDir:   a.TargetDir,
				Cwd:         f.Cwd,
				ProjectName: a.ProjectName,
				PackageName: a.PackageName,
				Template:    a.Template,
				Overwrite:   a.Overwrite,
			}, nil
		}
	}
}

// describeTarget shows where a project-name answer would be scaffolded.
func (f *Flow) describeTarget(answer string) string {
	dir := target.Resolve("", &answer)
	return "Scaffolds into " + target.AbsPath(f.Cwd, dir)
}

func (f *Flow) settleTarget(a *Answers, dir string) error {
	probe := f.NeedsOverwrite
	if probe == nil {
		probe = target.NeedsOverwrite
	}

	notEmpty, err := probe(target.AbsPath(f.Cwd, dir))
	if err != nil {
		return fmt.Errorf("inspecting target directory %q: %w", dir, err)
	}

	a.TargetDir = dir
	a.ProjectName = target.ProjectName(dir, f.Cwd)
	a.ProjectNameAnswered = true
	a.TargetNotEmpty = notEmpty
	return nil
}

// OverwriteMessage is the confirmation shown for a non-empty target.
func OverwriteMessage(targetDir string) string {
	if targetDir == target.CurrentDir {
		return "Current directory" + msgOverwriteSuffix
	}
	return `Target directory "` + targetDir + `"` + msgOverwriteSuffix
}

// TemplateMessage is the selection title, echoing an unmatched flag value.
func TemplateMessage(flag string) string {
	if flag == "" {
		return MsgSelectTemplate
	}
	return `"` + flag + `" isn't a valid template. Please choose from below:`
}

var errInvalidPackage = errors.New(MsgInvalidPackage)

func validatePackageName(name string) error {
	if naming.IsValidPackageName(name) {
		return nil
	}
	return errInvalidPackage
}
