// Package exec runs external commands behind an interface tests can stub.
package exec

import (
	"bytes"
	"context"
	"errors"
	osexec "os/exec"
	"strings"
)

// Result is the captured outcome of a command that ran to completion.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Output returns stderr when present, otherwise stdout, trimmed.
func (r Result) Output() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Options tune a single invocation.
type Options struct {
	// Dir is the working directory. Empty means the current one.
	Dir string
	// Env overlays the inherited environment.
	Env map[string]string
}

// CommandRunner runs external commands.
type CommandRunner interface {
	// Run returns a Result with ExitCode set whenever the process started,
	// even if it exited non-zero. The error is reserved for failures to run
	// at all: missing binary, cancelled context, I/O.
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)

	// LookPath resolves a binary name on PATH.
	LookPath(name string) (string, error)
}

// RealRunner runs commands with os/exec.
type RealRunner struct{}

// NewRealRunner returns a RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes name with args and captures both output streams.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := osexec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = opts.Dir

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// LookPath wraps os/exec.LookPath.
func (r *RealRunner) LookPath(name string) (string, error) {
	return osexec.LookPath(name)
}
