package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/byterings/atm/internal/config"
	"github.com/byterings/atm/internal/shell"
)

// SaveOutcome is how a successful save ended.
type SaveOutcome string

const (
	SaveCommitted       SaveOutcome = "committed"
	SaveNothingToCommit SaveOutcome = "nothing to commit"
)

// Saver stages, commits and pushes a working tree.
type Saver struct {
	VCS VCS
}

// Run commits everything in dir with message, or the project's default
// message when message is empty, and pushes. A commit that fails because
// nothing changed ends the save without pushing.
func (s *Saver) Run(ctx context.Context, dir, message string) (SaveOutcome, error) {
	exists, err := config.ProjectExists(dir)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrNotInitialized
	}

	project, err := config.LoadProject(dir)
	if err != nil {
		return "", err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		message = strings.TrimSpace(project.DefaultCommitMessage)
	}
	if message == "" {
		return "", ErrNoMessage
	}

	if err := s.VCS.Add(ctx, dir); err != nil {
		return "", &StageError{Stage: StageAdd, Err: err}
	}

	if err := s.VCS.Commit(ctx, dir, message); err != nil {
		if isNothingToCommit(err) {
			return SaveNothingToCommit, nil
		}
		return "", &StageError{Stage: StageCommit, Err: err}
	}

	if err := s.VCS.Push(ctx, dir); err != nil {
		return "", &StageError{Stage: StagePush, Err: err}
	}

	return SaveCommitted, nil
}

// isNothingToCommit reports whether a commit failed only because the tree
// was clean. git prints this on stdout, so the full diagnostic is checked.
func isNothingToCommit(err error) bool {
	diag, ok := shell.DiagnosticOf(err)
	return ok && strings.Contains(diag, "nothing to commit")
}

// MessageFromArgs joins command line words into a commit message. Words that
// are all blank are an ErrNoMessage; no words at all mean "use the default".
func MessageFromArgs(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return "", fmt.Errorf("%w: commit message cannot be empty", ErrNoMessage)
	}
	return message, nil
}
