// Package shell runs external commands in an explicit working directory and
// reports their output as typed results.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Command describes a single subprocess invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir  string
	Name string
	Args []string
	// Stream copies output to the terminal while it is captured.
	Stream bool
}

// String renders the command line quoted for the current platform.
func (c Command) String() string {
	return Quote(StyleFor(runtime.GOOS), append([]string{c.Name}, c.Args...))
}

// Result is what a finished command produced.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Succeeded reports whether the command exited with status zero.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Diagnostic returns the command's stderr and stdout, trimmed. Tools like git
// print some failures ("nothing to commit") on stdout, so both are kept.
func (r Result) Diagnostic() string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(r.Stderr); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(r.Stdout); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}

// ExitError is returned when a command could not start or exited non-zero.
type ExitError struct {
	Command string
	Result  Result
	Err     error
	// Streamed is set when the output already reached the terminal, so
	// Error leaves it out.
	Streamed bool
}

func (e *ExitError) Error() string {
	if e.Streamed {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	if diag := e.Result.Diagnostic(); diag != "" {
		return fmt.Sprintf("%s: %v\n%s", e.Command, e.Err, diag)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// DiagnosticOf extracts the diagnostic text carried by err, if any.
func DiagnosticOf(err error) (string, bool) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return "", false
	}
	diag := exitErr.Result.Diagnostic()
	return diag, diag != ""
}

// Runner executes commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive streamed output. Nil means os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a runner that streams to the process's stdio.
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes cmd and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	line := cmd.String()
	slog.Debug("executing", "cmd", line, "dir", cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	if cmd.Stream {
		c.Stdin = os.Stdin
		c.Stdout = io.MultiWriter(&stdout, r.stdout())
		c.Stderr = io.MultiWriter(&stderr, r.stderr())
	} else {
		c.Stdout = &stdout
		c.Stderr = &stderr
	}

	err := c.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: c.ProcessState.ExitCode(),
	}
	slog.Debug("output", "cmd", line, "exit", res.ExitCode, "stdout", res.Stdout, "stderr", res.Stderr)

	if err != nil {
		if res.ExitCode == 0 {
			res.ExitCode = -1
		}
		return res, &ExitError{Command: line, Result: res, Err: err, Streamed: cmd.Stream}
	}
	return res, nil
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
