// Package flow implements atm's init and save workflows on top of narrow
// gateways to git, the GitHub CLI and the terminal.
package flow

import (
	"context"

	"github.com/byterings/atm/internal/gh"
)

// VCS is the version control client. Every call names its working directory.
type VCS interface {
	IsInstalled(ctx context.Context) bool
	Add(ctx context.Context, dir string) error
	Commit(ctx context.Context, dir, message string) error
	Push(ctx context.Context, dir string) error
	Init(ctx context.Context, dir, branch string) error
	AddRemote(ctx context.Context, dir, url string) error
	SetUpstreamAndPush(ctx context.Context, dir, branch string) error
	IsWorkingTree(ctx context.Context, dir string) bool
	RemoteURL(ctx context.Context, dir string) (string, bool)
}

// Host is the hosting provider CLI.
type Host interface {
	IsInstalled(ctx context.Context) bool
	IsAuthenticated(ctx context.Context) bool
	CurrentUsername(ctx context.Context) (string, bool)
	CreatePrivateRepo(ctx context.Context, owner, name string) error
	Visibility(ctx context.Context, owner, name string) (gh.Visibility, bool)
	CloneURL(owner, name string) string
}

// Prompter asks the user for missing facts.
type Prompter interface {
	Ask(question, def string) (string, error)
	Confirm(question string) (bool, error)
}
