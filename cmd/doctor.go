package cmd

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/byterings/atm/internal/config"
	"github.com/byterings/atm/internal/flow"
	"github.com/byterings/atm/internal/platform"
	"github.com/byterings/atm/internal/remote"
	"github.com/byterings/atm/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose setup issues",
	Long: `Check that atm can work in the current directory.

Runs checks on:
- git and gh installation
- gh authentication
- User settings in ~/.atm/settings.toml
- atm.json and the origin remote of the current directory

Examples:
  atm doctor`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type checkResult struct {
	passed  bool
	message string
	fix     string // Suggested fix command
}

// section is a titled group of checks
type section struct {
	title   string
	results []checkResult
}

func runDoctor(cmd *cobra.Command, args []string) error {
	dir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	gitClient, ghClient := gateways()
	ctx := cmd.Context()

	sections := []section{
		{title: "Tools", results: checkTools(ctx, gitClient, ghClient)},
		{title: "Settings", results: checkSettings()},
		{title: "Project", results: checkProject(ctx, gitClient, dir)},
	}

	ui.Println()
	ui.Println("Checking atm setup...")

	errors, warnings := 0, 0
	for _, s := range sections {
		ui.Println()
		ui.Println(s.title)
		ui.Println(underline(s.title))

		for _, r := range s.results {
			printCheckResult(r)
			if !r.passed && r.fix == "" {
				errors++
			} else if !r.passed {
				warnings++
			}
		}
	}

	ui.Println()
	ui.Println("─────────")
	if errors == 0 && warnings == 0 {
		ui.Success("All checks passed!")
	} else if errors == 0 {
		ui.Warning(fmt.Sprintf("%d warning(s)", warnings))
	} else {
		ui.Error(fmt.Sprintf("%d error(s), %d warning(s)", errors, warnings))
	}

	return nil
}

func underline(title string) string {
	return strings.Repeat("─", utf8.RuneCountInString(title))
}

func printCheckResult(r checkResult) {
	if r.passed {
		ui.Printf("  ✓ %s\n", r.message)
	} else if r.fix != "" {
		ui.Printf("  ⚠ %s\n", r.message)
		ui.Printf("    → %s\n", r.fix)
	} else {
		ui.Printf("  ✗ %s\n", r.message)
	}
}

func checkTools(ctx context.Context, vcs flow.VCS, host flow.Host) []checkResult {
	results := []checkResult{{passed: true, message: "Platform: " + platform.GetPlatformName()}}

	if vcs.IsInstalled(ctx) {
		results = append(results, checkResult{passed: true, message: "git installed"})
	} else {
		results = append(results, checkResult{
			passed:  false,
			message: "git not installed",
			fix:     "Install it from: https://git-scm.com/downloads",
		})
	}

	if !host.IsInstalled(ctx) {
		results = append(results, checkResult{
			passed:  false,
			message: "gh CLI not installed",
			fix:     "Install it from: " + platform.GetGhInstallHint(),
		})
		return results
	}
	results = append(results, checkResult{passed: true, message: "gh CLI installed"})

	if !host.IsAuthenticated(ctx) {
		results = append(results, checkResult{
			passed:  false,
			message: "gh CLI not authenticated",
			fix:     "Run: gh auth login",
		})
		return results
	}

	if username, ok := host.CurrentUsername(ctx); ok {
		results = append(results, checkResult{passed: true, message: fmt.Sprintf("gh authenticated as %s", username)})
	} else {
		results = append(results, checkResult{passed: true, message: "gh authenticated"})
	}

	return results
}

func checkSettings() []checkResult {
	settings, err := loadSettings()
	if err != nil {
		return []checkResult{{
			passed:  false,
			message: fmt.Sprintf("Settings invalid: %v", err),
		}}
	}

	return []checkResult{
		{passed: true, message: "Settings valid"},
		{passed: true, message: fmt.Sprintf("Unknown commands: %s", settings.UnknownCommand)},
		{passed: true, message: fmt.Sprintf("Initial branch: %s", settings.Branch)},
	}
}

func checkProject(ctx context.Context, vcs flow.VCS, dir string) []checkResult {
	var results []checkResult

	exists, err := config.ProjectExists(dir)
	switch {
	case err != nil:
		return append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Error checking atm.json: %v", err),
		})
	case !exists:
		results = append(results, checkResult{
			passed:  false,
			message: "atm.json not found",
			fix:     "Run: atm init",
		})
	default:
		if project, err := config.LoadProject(dir); err != nil {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("atm.json invalid: %v", err),
			})
		} else {
			results = append(results, checkResult{
				passed:  true,
				message: fmt.Sprintf("atm.json found (default message: %q)", project.DefaultCommitMessage),
			})
		}
	}

	if !vcs.IsWorkingTree(ctx, dir) {
		return append(results, checkResult{
			passed:  false,
			message: "Not a git repository",
			fix:     "Run: atm init",
		})
	}
	results = append(results, checkResult{passed: true, message: "Git repository"})

	url, ok := vcs.RemoteURL(ctx, dir)
	if !ok {
		return append(results, checkResult{
			passed:  false,
			message: "No origin remote configured",
			fix:     "Run: git remote add origin <url>",
		})
	}

	desc, ok := remote.Parse(url)
	switch {
	case !ok:
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Origin remote not recognized: %s", url),
		})
	case desc.HostType != remote.HostGitHub:
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Origin is on %s, atm only works with GitHub", desc.HostType),
		})
	default:
		results = append(results, checkResult{
			passed:  true,
			message: fmt.Sprintf("Origin: %s", desc.Slug()),
		})
	}

	return results
}
