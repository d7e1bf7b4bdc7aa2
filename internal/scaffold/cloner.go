package scaffold

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-git/go-billy/v5/osfs"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/opmodel/starter/internal/config"
	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/exec"
)

// Cloner fetches a template repository into a directory.
type Cloner interface {
	// Clone populates dir with the working tree of url. dir may or may not exist
	// but must be empty.
	Clone(ctx context.Context, url, dir string) error
	// Name identifies the implementation in logs.
	Name() string
}

// GoGitCloner clones in-process. Objects are kept in memory so no
// repository metadata is written to dir.
type GoGitCloner struct {
	// Depth limits fetched history. Zero fetches everything.
	Depth int
}

// Name implements Cloner.
func (c *GoGitCloner) Name() string { return config.CloneMethodGoGit }

// Clone implements Cloner.
func (c *GoGitCloner) Clone(ctx context.Context, url, dir string) error {
	_, err := git.CloneContext(ctx, memory.NewStorage(), osfs.New(dir), &git.CloneOptions{
		URL:          url,
		Depth:        c.Depth,
		SingleBranch: true,
		Tags:         git.NoTags,
	})
	if err != nil {
		return fmt.Errorf("cloning %s: %w", url, err)
	}
	return nil
}

// GitCLICloner shells out to the git binary.
type GitCLICloner struct {
	Runner exec.CommandRunner
	// Depth limits fetched history. Zero fetches everything.
	Depth int
}

// Name implements Cloner.
func (c *GitCLICloner) Name() string { return config.CloneMethodGit }

// Clone implements Cloner.
func (c *GitCLICloner) Clone(ctx context.Context, url, dir string) error {
	args := []string{"clone", "--quiet"}
	if c.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(c.Depth))
	}
	args = append(args, url, dir)

	res, err := c.Runner.Run(ctx, "git", args, exec.Options{
		Env: map[string]string{"GIT_TERMINAL_PROMPT": "0"},
	})
	if err != nil {
		return fmt.Errorf("running git clone: %w", err)
	}
	if !res.Success() {
		return fmt.Errorf("git clone exited with code %d: %s", res.ExitCode, res.Output())
	}
	return nil
}

// NewCloner returns the Cloner for a configured method. An empty method
// selects go-git. A negative depth fetches the full history.
func NewCloner(method string, depth int, runner exec.CommandRunner) (Cloner, error) {
	if depth < 0 {
		depth = 0
	}
	switch method {
	case "", config.CloneMethodGoGit:
		return &GoGitCloner{Depth: depth}, nil
	case config.CloneMethodGit:
		if runner == nil {
			runner = exec.NewRealRunner()
		}
		return &GitCLICloner{Runner: runner, Depth: depth}, nil
	default:
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unknown clone method %q", method),
			"clone.method",
			fmt.Sprintf("use %q or %q", config.CloneMethodGoGit, config.CloneMethodGit),
		)
	}
}
