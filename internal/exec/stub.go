package exec

import (
	"context"
	"strings"
	"sync"
)

// Call records one invocation seen by a StubRunner.
type Call struct {
	Name string
	Args []string
	Opts Options
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// StubRunner is a CommandRunner for tests. Responses are keyed by the
// command line as rendered by Call.String; unknown commands succeed with
// empty output.
type StubRunner struct {
	mu sync.Mutex

	Responses map[string]StubResponse
	// Paths maps binary names to LookPath results; missing names are not found.
	Paths map[string]string
	// OnRun, when set, runs before the response is returned.
	OnRun func(Call)

	calls []Call
}

// StubResponse is the canned outcome for a command line.
type StubResponse struct {
	Result Result
	Err    error
}

// NewStubRunner returns an empty StubRunner.
func NewStubRunner() *StubRunner {
	return &StubRunner{
		Responses: map[string]StubResponse{},
		Paths:     map[string]string{},
	}
}

// Run records the call and returns the canned response.
func (s *StubRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	call := Call{Name: name, Args: append([]string(nil), args...), Opts: opts}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	resp, ok := s.Responses[call.String()]
	onRun := s.OnRun
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if onRun != nil {
		onRun(call)
	}
	if !ok {
		return Result{}, nil
	}
	return resp.Result, resp.Err
}

// LookPath returns the configured path or ErrNotFound.
func (s *StubRunner) LookPath(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.Paths[name]; ok {
		return p, nil
	}
	return "", &notFoundError{name: name}
}

// Calls returns the recorded invocations in order.
func (s *StubRunner) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

type notFoundError struct {
	name string
}

func (e *notFoundError) Error() string {
	return `exec: "` + e.name + `": executable file not found in $PATH`
}
