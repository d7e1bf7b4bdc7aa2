package version

import (
	"context"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/opmodel/starter/internal/exec"
)

// gitVersionRegex matches output like "git version 2.43.0" or "git version 2.39.3 (Apple Git-146)".
var gitVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// MinGitVersion is the constraint the git clone method requires.
const MinGitVersion = ">= 2.0.0"

var minGit = mustConstraint(MinGitVersion)

func mustConstraint(c string) *semver.Constraints {
	cs, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return cs
}

// GitBinaryInfo describes the git binary found on PATH.
type GitBinaryInfo struct {
	// Version is the git version without prefix.
	Version string `json:"version"`

	// Path is the resolved binary path.
	Path string `json:"path"`

	// Found indicates if git was found on PATH.
	Found bool `json:"found"`

	// Supported indicates the version satisfies MinGitVersion.
	Supported bool `json:"supported"`

	// Message explains why the binary is unusable.
	Message string `json:"message,omitempty"`
}

// DetectGitBinary locates git and reads its version.
func DetectGitBinary(ctx context.Context, runner exec.CommandRunner) GitBinaryInfo {
	path, err := runner.LookPath("git")
	if err != nil {
		return GitBinaryInfo{Message: "git binary not found in PATH"}
	}

	res, err := runner.Run(ctx, path, []string{"--version"}, exec.Options{})
	if err != nil || !res.Success() {
		msg := "failed to get git version"
		if err != nil {
			msg += ": " + err.Error()
		}
		return GitBinaryInfo{Path: path, Found: true, Message: msg}
	}

	v, err := extractGitVersion(res.Stdout)
	if err != nil {
		return GitBinaryInfo{Path: path, Found: true, Message: err.Error()}
	}

	info := GitBinaryInfo{
		Version:   v,
		Path:      path,
		Found:     true,
		Supported: GitVersionSupported(v),
	}
	if !info.Supported {
		info.Message = "unsupported - requires git " + MinGitVersion
	}
	return info
}

// GitVersionSupported reports whether v satisfies MinGitVersion.
func GitVersionSupported(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return minGit.Check(sv)
}

func extractGitVersion(out string) (string, error) {
	// Only the first line carries the version.
	line, _, _ := strings.Cut(out, "\n")
	match := gitVersionRegex.FindString(line)
	if match == "" {
		return "", &versionParseError{output: out}
	}
	return match, nil
}

// String returns a human-readable git binary summary.
func (g GitBinaryInfo) String() string {
	if !g.Found {
		return "  git:      not found"
	}
	status := "supported"
	if !g.Supported {
		status = g.Message
	}
	return "  git:      " + g.Version + " (" + status + ")\n  Path:     " + g.Path
}

// versionParseError indicates failure to parse git version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse git version from output: " + strings.TrimSpace(e.output)
}
