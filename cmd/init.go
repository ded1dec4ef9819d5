package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/atm/internal/flow"
	"github.com/byterings/atm/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new private GitHub repo",
	Long: `Initialize atm in a directory.

Inside an existing git repository only atm.json is created, after
confirmation. Anywhere else a private GitHub repository is created with gh,
then initialized, committed and pushed.

Examples:
  atm init              Set up the current directory or a new one
  atm init notes        Create and set up ./notes
  atm init ~/code/blog  Paths starting with ~ are expanded`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	workDir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	opts := flow.InitOptions{WorkDir: workDir}
	if len(args) == 1 {
		opts.Target = args[0]
	}

	gitClient, ghClient := gateways()
	initializer := &flow.Initializer{
		VCS:            gitClient,
		Host:           ghClient,
		Prompt:         newPrompter(),
		DefaultMessage: settings.DefaultCommitMessage,
		Branch:         settings.Branch,
	}

	result, err := initializer.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	switch {
	case result.State == flow.InitAborted:
		ui.Println("\nAborted. No changes made.")
	case result.Adopted:
		ui.Success("atm.json created successfully.")
		ui.Println("You can now use 'atm s' to save and push changes.")
	default:
		ui.Success(fmt.Sprintf("Done! Repository %s created at %s", result.Slug, result.Dir))
		ui.Printf("\nNext steps:\n  1. Go to %s\n  2. Make changes\n  3. Run 'atm s' to push the changes to GitHub\n", result.Dir)
	}

	return nil
}
