package flow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/byterings/atm/internal/config"
	"github.com/byterings/atm/internal/platform"
	"github.com/byterings/atm/internal/remote"
	"github.com/byterings/atm/internal/ui"
)

// InitState is how a successful init ended.
type InitState string

const (
	InitDone    InitState = "done"
	InitAborted InitState = "aborted"
)

// InitOptions are the inputs of one init invocation.
type InitOptions struct {
	// WorkDir is the directory atm was started in.
	WorkDir string
	// Target is the optional path argument. It is created if missing.
	Target string
}

// InitResult describes a finished init.
type InitResult struct {
	State InitState
	// Dir is the repository's absolute path.
	Dir string
	// Adopted is true when an existing working tree was adopted.
	Adopted bool
	// Slug is owner/name of the created repository, empty when adopting.
	Slug string
}

// Initializer sets a directory up for atm, either by adopting an existing
// working tree or by creating a new private GitHub repository for it.
type Initializer struct {
	VCS    VCS
	Host   Host
	Prompt Prompter

	// DefaultMessage goes into the new atm.json. Empty means "save".
	DefaultMessage string
	// Branch is pushed with upstream tracking. Empty means "main".
	Branch string
}

// Run executes the init workflow. Nothing is executed when the target
// directory already has an atm.json.
func (in *Initializer) Run(ctx context.Context, opts InitOptions) (*InitResult, error) {
	dir, defaultName, err := resolveTarget(opts)
	if err != nil {
		return nil, err
	}

	exists, err := config.ProjectExists(dir)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInitialized
	}

	if in.VCS.IsWorkingTree(ctx, dir) {
		return in.adopt(ctx, dir)
	}

	return in.create(ctx, opts, dir, defaultName)
}

// resolveTarget returns the directory to work in and the default repository
// name. A target argument is expanded, made absolute and created.
func resolveTarget(opts InitOptions) (dir, defaultName string, err error) {
	if opts.Target == "" {
		return opts.WorkDir, "", nil
	}

	dir, err = platform.ResolvePath(opts.WorkDir, opts.Target)
	if err != nil {
		return "", "", err
	}
	if err := platform.EnsureDir(dir); err != nil {
		return "", "", err
	}
	return dir, filepath.Base(dir), nil
}

// adopt writes atm.json into an existing working tree after confirmation.
func (in *Initializer) adopt(ctx context.Context, dir string) (*InitResult, error) {
	ui.Printf("\nGit repository detected in: %s\n\n", dir)

	rows := []ui.Row{{Label: "Directory", Value: dir}}

	url, ok := in.VCS.RemoteURL(ctx, dir)
	if !ok {
		rows = append(rows, ui.Row{Label: "Remote", Value: "(none configured)"})
	} else {
		rows = append(rows, ui.Row{Label: "Remote", Value: url})

		if desc, ok := remote.Parse(url); ok {
			if desc.HostType != remote.HostGitHub {
				return nil, fmt.Errorf("%w (detected host: %s)", ErrUnsupportedHost, desc.HostType)
			}
			rows = append(rows, ui.Row{Label: "Host", Value: string(desc.HostType)})

			if in.Host.IsInstalled(ctx) && in.Host.IsAuthenticated(ctx) {
				if visibility, ok := in.Host.Visibility(ctx, desc.Owner, desc.Repo); ok {
					rows = append(rows, ui.Row{Label: "Visibility", Value: string(visibility)})
				}
			}
		}
	}

	ui.PrintSummary(rows)
	ui.Println("\nThis will only create an atm.json file. No new repository will be created.")

	confirmed, err := in.Prompt.Confirm("Create atm.json in this directory?")
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return &InitResult{State: InitAborted, Dir: dir, Adopted: true}, nil
	}

	if err := config.SaveProject(dir, config.NewProject(in.DefaultMessage)); err != nil {
		return nil, &StageError{Stage: StageConfig, Err: err}
	}

	return &InitResult{State: InitDone, Dir: dir, Adopted: true}, nil
}

// create makes a private repository on GitHub and a local working tree
// pushing to it. Each step's failure stops the workflow.
func (in *Initializer) create(ctx context.Context, opts InitOptions, dir, defaultName string) (*InitResult, error) {
	if !in.Host.IsInstalled(ctx) {
		return nil, fmt.Errorf("%w: gh CLI\nInstall it from: %s", ErrToolMissing, platform.GetGhInstallHint())
	}
	if !in.Host.IsAuthenticated(ctx) {
		return nil, fmt.Errorf("%w\nRun: gh auth login", ErrNotAuthenticated)
	}
	if !in.VCS.IsInstalled(ctx) {
		return nil, fmt.Errorf("%w: git\nInstall it from: https://git-scm.com/downloads", ErrToolMissing)
	}

	detected, _ := in.Host.CurrentUsername(ctx)
	username, err := in.ask("GitHub username", detected)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrMissingInput)
	}

	name, err := in.ask("Repository name", defaultName)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: repository name is required", ErrMissingInput)
	}

	// Without a target argument the destination is asked for last
	if opts.Target == "" {
		answer, err := in.ask("Directory", "./"+name)
		if err != nil {
			return nil, err
		}
		dir, err = platform.ResolvePath(opts.WorkDir, answer)
		if err != nil {
			return nil, err
		}
	}

	branch := in.Branch
	if branch == "" {
		branch = config.DefaultBranch
	}

	ui.Printf("\nCreating private repo %s/%s...\n", username, name)
	if err := in.Host.CreatePrivateRepo(ctx, username, name); err != nil {
		return nil, &StageError{Stage: StageCreateRepo, Err: err}
	}

	if err := platform.EnsureDir(dir); err != nil {
		return nil, &StageError{Stage: StageDirectory, Err: err}
	}

	ui.Println("Initializing git...")
	if err := in.VCS.Init(ctx, dir, branch); err != nil {
		return nil, &StageError{Stage: StageInit, Err: err}
	}

	if err := writeReadme(dir, name); err != nil {
		return nil, &StageError{Stage: StageReadme, Err: err}
	}

	if err := config.SaveProject(dir, config.NewProject(in.DefaultMessage)); err != nil {
		return nil, &StageError{Stage: StageConfig, Err: err}
	}

	if err := in.VCS.Add(ctx, dir); err != nil {
		return nil, &StageError{Stage: StageAdd, Err: err}
	}
	if err := in.VCS.Commit(ctx, dir, "initial commit"); err != nil {
		return nil, &StageError{Stage: StageCommit, Err: err}
	}

	if err := in.VCS.AddRemote(ctx, dir, in.Host.CloneURL(username, name)); err != nil {
		return nil, &StageError{Stage: StageAddRemote, Err: err}
	}

	ui.Println("Pushing to GitHub...")
	if err := in.VCS.SetUpstreamAndPush(ctx, dir, branch); err != nil {
		return nil, &StageError{Stage: StagePush, Err: err}
	}

	return &InitResult{State: InitDone, Dir: dir, Slug: username + "/" + name}, nil
}

func (in *Initializer) ask(question, def string) (string, error) {
	answer, err := in.Prompt.Ask(question, def)
	if err != nil {
		return "", err
	}
	return ui.Resolve(answer, def), nil
}

// writeReadme creates a placeholder README.md unless one exists
func writeReadme(dir, name string) error {
	path := filepath.Join(dir, "README.md")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte("# "+name+"\n"), 0644)
}
