// Package flow resolves the project directory, package name, and template
// through an ordered, conditionally skipped sequence of prompts.
package flow

import (
	"github.com/opmodel/starter/internal/catalog"
	"github.com/opmodel/starter/internal/naming"
)

// State is a step of the decision flow.
type State int

// States in the order they are visited.
const (
	StateProjectName State = iota
	StateOverwrite
	StatePackageName
	StateTemplate
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateProjectName:
		return "project-name"
	case StateOverwrite:
		return "overwrite"
	case StatePackageName:
		return "package-name"
	case StateTemplate:
		return "template"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Answers accumulates what is known so far. Filesystem facts (TargetNotEmpty)
// are filled in by the caller so that NextState stays free of I/O.
type Answers struct {
	// TargetDir is the normalized target directory.
	TargetDir string
	// ProjectName is derived from TargetDir.
	ProjectName string
	// ProjectNameAnswered is true once TargetDir is settled, by argument or prompt.
	ProjectNameAnswered bool

	// TargetNotEmpty is true when the target exists and holds more than .git.
	TargetNotEmpty bool
	// Overwrite is nil until the user is asked.
	Overwrite *bool

	// PackageName is set when the project name is not a valid package name.
	PackageName string
	// PackageNameAnswered is true once the package name prompt has been answered.
	PackageNameAnswered bool

	// Template is the selected catalog entry.
	Template *catalog.Template
	// TemplateAnswered is true once selection is settled (possibly with no result).
	TemplateAnswered bool
}

// NextState returns the next state to visit for the given answers.
func NextState(a Answers) State {
	if !a.ProjectNameAnswered {
		return StateProjectName
	}

	if a.TargetNotEmpty {
		if a.Overwrite == nil {
			return StateOverwrite
		}
		if !*a.Overwrite {
			return StateCancelled
		}
	}

	if !naming.IsValidPackageName(a.ProjectName) && !a.PackageNameAnswered {
		return StatePackageName
	}

	if a.Template == nil && !a.TemplateAnswered {
		return StateTemplate
	}

	return StateDone
}
