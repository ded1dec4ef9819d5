package cmd

import (
	"os"

	"github.com/byterings/atm/internal/config"
	"github.com/byterings/atm/internal/gh"
	"github.com/byterings/atm/internal/git"
	"github.com/byterings/atm/internal/shell"
	"github.com/byterings/atm/internal/ui"
)

// Replaced in tests
var (
	newRunner   = func() shell.Runner { return shell.NewRunner() }
	newPrompter = ui.NewPrompter
	getwd       = os.Getwd
	settingsFn  = config.LoadSettings
)

// loadSettings reads ~/.atm/settings.toml, falling back to defaults
func loadSettings() (*config.Settings, error) {
	return settingsFn()
}

// gateways builds the git and gh clients sharing one runner
func gateways() (*git.Client, *gh.Client) {
	runner := newRunner()
	return git.NewClient(runner), gh.NewClient(runner)
}
