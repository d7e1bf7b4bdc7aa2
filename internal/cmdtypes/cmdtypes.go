// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/opmodel/starter/internal/catalog"
	"github.com/opmodel/starter/internal/config"
	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/exec"
	"github.com/opmodel/starter/internal/flow"
	"github.com/opmodel/starter/internal/scaffold"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config
	// ConfigPath is the resolved --config path.
	ConfigPath string
	// Resolved carries flag-overridable values with their sources.
	Resolved *config.Resolved
	// CatalogFile is the raw --catalog-file value.
	CatalogFile string
	Verbose     bool

	Deps Deps
}

// Deps are the collaborators commands use to reach the outside world.
// Nil fields are built from configuration on first use.
type Deps struct {
	Catalog  catalog.Catalog
	Cloner   scaffold.Cloner
	Prompter flow.Prompter
	Runner   exec.CommandRunner
	// Getwd defaults to os.Getwd.
	Getwd func() (string, error)
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess           = oerrors.ExitSuccess
	ExitGeneralError      = oerrors.ExitGeneralError
	ExitValidationError   = oerrors.ExitValidationError
	ExitConnectivityError = oerrors.ExitConnectivityError
	ExitPermissionDenied  = oerrors.ExitPermissionDenied
	ExitNotFound          = oerrors.ExitNotFound
	ExitCancelled         = oerrors.ExitCancelled
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
