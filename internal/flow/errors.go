package flow

import (
	"errors"
	"fmt"
)

// Terminal failures of the init and save workflows.
var (
	// ErrAlreadyInitialized indicates atm.json already exists in the target directory.
	ErrAlreadyInitialized = errors.New("atm.json already exists, already initialized")

	// ErrUnsupportedHost indicates an existing remote is not hosted on GitHub.
	ErrUnsupportedHost = errors.New("atm only works with GitHub repositories")

	// ErrToolMissing indicates git or gh is not installed.
	ErrToolMissing = errors.New("required tool is not installed")

	// ErrNotAuthenticated indicates gh has no logged in account.
	ErrNotAuthenticated = errors.New("gh CLI is not authenticated")

	// ErrMissingInput indicates a required prompt was left blank.
	ErrMissingInput = errors.New("required input missing")

	// ErrNotInitialized indicates atm.json does not exist.
	ErrNotInitialized = errors.New(`atm.json not found, run "atm init" first`)

	// ErrNoMessage indicates neither a message nor a default is available.
	ErrNoMessage = errors.New("no commit message specified")
)

// Stage names a step of a workflow that can fail.
type Stage string

const (
	StageCreateRepo Stage = "create remote repository"
	StageDirectory  Stage = "create directory"
	StageInit       Stage = "initialize repository"
	StageReadme     Stage = "write README.md"
	StageConfig     Stage = "write atm.json"
	StageAdd        Stage = "stage changes"
	StageCommit     Stage = "commit"
	StageAddRemote  Stage = "add remote"
	StagePush       Stage = "push"
)

// StageError is a failed workflow step. Steps that already completed are
// not rolled back.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage returns the stage err failed at, if it is a StageError.
func FailedStage(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}
	return "", false
}
