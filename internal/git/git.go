// Package git runs the git client for atm's working trees.
package git

import (
	"context"
	"strings"

	"github.com/byterings/atm/internal/platform"
	"github.com/byterings/atm/internal/shell"
)

// Client runs git subcommands. Every method takes the working tree directory.
type Client struct {
	runner     shell.Runner
	hasCommand func(string) bool
}

// NewClient returns a git client backed by runner
func NewClient(runner shell.Runner) *Client {
	return &Client{runner: runner, hasCommand: platform.HasCommand}
}

// IsInstalled checks if git is installed
func (c *Client) IsInstalled(ctx context.Context) bool {
	if !c.hasCommand("git") {
		return false
	}
	_, err := c.run(ctx, "", false, "--version")
	return err == nil
}

// Add stages every change in dir
func (c *Client) Add(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, false, "add", ".")
	return err
}

// Commit records staged changes with message
func (c *Client) Commit(ctx context.Context, dir, message string) error {
	_, err := c.run(ctx, dir, false, "commit", "-m", message)
	return err
}

// Push pushes the current branch to its upstream
func (c *Client) Push(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, true, "push")
	return err
}

// Init creates a new repository in dir on the given branch
func (c *Client) Init(ctx context.Context, dir, branch string) error {
	_, err := c.run(ctx, dir, false, "init", "--initial-branch="+branch)
	return err
}

// AddRemote registers url as origin
func (c *Client) AddRemote(ctx context.Context, dir, url string) error {
	_, err := c.run(ctx, dir, false, "remote", "add", "origin", url)
	return err
}

// SetUpstreamAndPush pushes branch to origin and tracks it
func (c *Client) SetUpstreamAndPush(ctx context.Context, dir, branch string) error {
	_, err := c.run(ctx, dir, true, "push", "-u", "origin", branch)
	return err
}

// IsWorkingTree checks if dir is inside a git working tree
func (c *Client) IsWorkingTree(ctx context.Context, dir string) bool {
	out, err := c.run(ctx, dir, false, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// RemoteURL gets the URL of origin, reporting false when none is configured
func (c *Client) RemoteURL(ctx context.Context, dir string) (string, bool) {
	out, err := c.run(ctx, dir, false, "remote", "get-url", "origin")
	if err != nil || out == "" {
		return "", false
	}
	return out, true
}

// run executes git and returns trimmed stdout
func (c *Client) run(ctx context.Context, dir string, stream bool, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, shell.Command{
		Dir:    dir,
		Name:   "git",
		Args:   args,
		Stream: stream,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}
