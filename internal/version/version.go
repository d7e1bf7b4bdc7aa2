// Package version provides build information for the starter CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version.
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// goGitModule is the module path reported for the in-process clone library.
const goGitModule = "github.com/go-git/go-git/v5"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// GoGitVersion is the linked go-git module version, "unknown" when
	// build info is unavailable.
	GoGitVersion string `json:"goGitVersion"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:      Version,
		GitCommit:    GitCommit,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		GoGitVersion: dependencyVersion(goGitModule),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("starter:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n\nClone:\n  go-git:   %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.GoGitVersion)
}

// FullVersionString returns version information including the git binary.
func FullVersionString(info Info, gitInfo GitBinaryInfo) string {
	return info.String() + "\n" + gitInfo.String()
}

func dependencyVersion(path string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "unknown"
}
