// Package shelltest provides a scripted shell.Runner for tests.
package shelltest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/byterings/atm/internal/shell"
)

// Response is the scripted outcome of one command line.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner records every command and answers from a script keyed by
// "name arg1 arg2". Unscripted commands succeed with empty output.
type Runner struct {
	mu        sync.Mutex
	responses map[string]Response
	Calls     []shell.Command
}

// NewRunner returns an empty scripted runner.
func NewRunner() *Runner {
	return &Runner{responses: map[string]Response{}}
}

// On scripts the response for a command line.
func (r *Runner) On(line string, resp Response) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[line] = resp
	return r
}

// Run implements shell.Runner.
func (r *Runner) Run(_ context.Context, cmd shell.Command) (shell.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls = append(r.Calls, cmd)

	line := Line(cmd)
	resp := r.responses[line]
	res := shell.Result{Stdout: resp.Stdout, Stderr: resp.Stderr, ExitCode: resp.ExitCode}
	if resp.ExitCode != 0 {
		return res, &shell.ExitError{Command: line, Result: res, Err: errors.New("exit status")}
	}
	return res, nil
}

// Lines returns the recorded command lines in order.
func (r *Runner) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = Line(c)
	}
	return lines
}

// Line joins a command with single spaces, without quoting.
func Line(cmd shell.Command) string {
	return strings.TrimSpace(cmd.Name + " " + strings.Join(cmd.Args, " "))
}
