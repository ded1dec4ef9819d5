package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byterings/atm/internal/flow"
	"github.com/byterings/atm/internal/git"
	"github.com/byterings/atm/internal/ui"
)

var saveCmd = &cobra.Command{
	Use:   "s [message...]",
	Short: "Commit everything and push",
	Long: `Stage all changes, commit and push to the tracked remote.

Without a message the defaultCommitMessage from atm.json is used. Every word
after "s" is part of the message, dashes included.

Examples:
  atm s                 Quick save (commit + push)
  atm s fix bug         Commit with message "fix bug" + push
  atm s --amend notes   Commit with message "--amend notes"`,
	DisableFlagParsing: true,
	RunE:               runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		return cmd.Help()
	}
	return save(cmd.Context(), args)
}

// save commits the working directory with the words in args
func save(ctx context.Context, args []string) error {
	message, err := flow.MessageFromArgs(args)
	if err != nil {
		return err
	}

	dir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	saver := &flow.Saver{VCS: git.NewClient(newRunner())}
	outcome, err := saver.Run(ctx, dir, message)
	if err != nil {
		return err
	}

	if outcome == flow.SaveNothingToCommit {
		ui.Info("Nothing to commit.")
		return nil
	}

	ui.Success("Changes pushed")
	return nil
}
