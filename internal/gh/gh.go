// Package gh runs the GitHub CLI.
package gh

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/byterings/atm/internal/platform"
	"github.com/byterings/atm/internal/shell"
)

// Visibility of a hosted repository
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// Client implements the hosting gateway by shelling out to the gh CLI.
type Client struct {
	runner     shell.Runner
	hasCommand func(string) bool
}

func NewClient(runner shell.Runner) *Client {
	return &Client{runner: runner, hasCommand: platform.HasCommand}
}

// IsInstalled checks if gh is on PATH and runs
func (c *Client) IsInstalled(ctx context.Context) bool {
	if !c.hasCommand("gh") {
		return false
	}
	_, err := c.gh(ctx, false, "--version")
	return err == nil
}

// IsAuthenticated checks if gh has a logged in account
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	_, err := c.gh(ctx, false, "auth", "status")
	return err == nil
}

// CurrentUsername returns the login of the authenticated account
func (c *Client) CurrentUsername(ctx context.Context) (string, bool) {
	out, err := c.gh(ctx, false, "api", "user", "-q", ".login")
	if err != nil || out == "" {
		return "", false
	}
	return out, true
}

// CreatePrivateRepo creates owner/name as a private repository
func (c *Client) CreatePrivateRepo(ctx context.Context, owner, name string) error {
	_, err := c.gh(ctx, true, "repo", "create", owner+"/"+name, "--private")
	return err
}

type repoView struct {
	IsPrivate *bool `json:"isPrivate"`
}

// Visibility reports whether owner/name is private or public
func (c *Client) Visibility(ctx context.Context, owner, name string) (Visibility, bool) {
	out, err := c.gh(ctx, false, "repo", "view", owner+"/"+name, "--json", "isPrivate")
	if err != nil {
		return "", false
	}

	var view repoView
	if err := json.Unmarshal([]byte(out), &view); err != nil || view.IsPrivate == nil {
		return "", false
	}
	if *view.IsPrivate {
		return VisibilityPrivate, true
	}
	return VisibilityPublic, true
}

// CloneURL returns the HTTPS remote URL for owner/name
func (c *Client) CloneURL(owner, name string) string {
	return fmt.Sprintf("https://github.com/%s/%s.git", owner, name)
}

func (c *Client) gh(ctx context.Context, stream bool, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, shell.Command{
		Name:   "gh",
		Args:   args,
		Stream: stream,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}
