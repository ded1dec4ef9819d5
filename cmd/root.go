// Package cmd wires atm's workflows to the command line.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/byterings/atm/internal/config"
	"github.com/byterings/atm/internal/ui"
)

var verbose bool

// rawArgs is the command line before cobra parses flags out of it
var rawArgs []string

var rootCmd = &cobra.Command{
	Use:   "atm",
	Short: "Set up private GitHub repos and push commits quickly",
	Long: `atm - Set up private GitHub repos and push commits quickly.

Examples:
  atm init              Create a new private GitHub repo
  atm init notes        Create it in ./notes
  atm s                 Quick save (commit + push)
  atm s fix bug         Commit with message "fix bug" + push`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// set here rather than in the literal to avoid an initialization cycle
	rootCmd.RunE = runRoot
	cobra.OnInitialize(setupLogging)

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("atm {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log every git and gh command")
	rootCmd.SetFlagErrorFunc(flagError)
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := execute(context.Background(), os.Args[1:]); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func execute(ctx context.Context, args []string) error {
	rawArgs = args
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// UnknownCommandError is returned for bare words when the unknown_command
// setting is "reject".
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s\n\nTo save with a custom commit message, use: atm s %s\n\nRun 'atm --help' for usage.", e.Command, e.Command)
}

// runRoot handles everything that is not a registered subcommand
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return dispatchUnknown(cmd.Context(), args)
}

// flagError turns a flag the root command does not know into an unknown
// command, so "atm fix -x" is handled like "atm fix x". Subcommands keep
// cobra's error.
func flagError(cmd *cobra.Command, err error) error {
	if cmd != rootCmd || len(rawArgs) == 0 {
		return err
	}
	slog.Debug("root flag error", "err", err)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return dispatchUnknown(ctx, withoutVerbose(rawArgs))
}

// withoutVerbose drops the --verbose flag from words meant for a message
func withoutVerbose(args []string) []string {
	words := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "--verbose" {
			words = append(words, arg)
		}
	}
	return words
}

// dispatchUnknown applies the unknown_command setting to args
func dispatchUnknown(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return rootCmd.Help()
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if settings.UnknownCommand == config.PolicySave {
		slog.Debug("treating unknown command as commit message", "args", args)
		return save(ctx, args)
	}

	return &UnknownCommandError{Command: args[0]}
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose || os.Getenv("ATM_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
