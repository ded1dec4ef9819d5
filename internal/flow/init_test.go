package flow_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byterings/atm/internal/config"
	"github.com/byterings/atm/internal/flow"
	"github.com/byterings/atm/internal/gh"
)

type initFixture struct {
	rec    *recorder
	vcs    *fakeVCS
	host   *fakeHost
	prompt *scriptedPrompter
	init   *flow.Initializer
}

// newInitFixture wires fakes that share one call log. Tools are installed
// and gh is logged in as "octo" unless a test changes them.
func newInitFixture() *initFixture {
	rec := &recorder{}
	f := &initFixture{
		rec:    rec,
		vcs:    &fakeVCS{recorder: rec, installed: true},
		host:   &fakeHost{recorder: rec, installed: true, authenticated: true, username: "octo"},
		prompt: &scriptedPrompter{recorder: rec, answers: map[string]string{}},
	}
	f.init = &flow.Initializer{VCS: f.vcs, Host: f.host, Prompt: f.prompt}
	return f
}

func TestInitializer_Run_already_initialized_runs_nothing(t *testing.T) {
	f := newInitFixture()
	dir := t.TempDir()
	require.NoError(t, config.SaveProject(dir, config.NewProject("")))

	_, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: dir})

	require.ErrorIs(t, err, flow.ErrAlreadyInitialized)
	assert.Empty(t, f.rec.calls)
}

func TestInitializer_Run_target_already_initialized(t *testing.T) {
	f := newInitFixture()
	work := t.TempDir()
	target := filepath.Join(work, "proj")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, config.SaveProject(target, config.NewProject("")))

	_, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: work, Target: "proj"})

	require.ErrorIs(t, err, flow.ErrAlreadyInitialized)
	assert.Empty(t, f.rec.calls)
}

func TestInitializer_Run_adopt_unsupported_host_before_prompt(t *testing.T) {
	f := newInitFixture()
	f.vcs.workingTree = true
	f.vcs.remoteURL = "git@gitlab.com:group/project.git"
	dir := t.TempDir()

	_, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: dir})

	require.ErrorIs(t, err, flow.ErrUnsupportedHost)
	for _, call := range f.rec.calls {
		assert.NotContains(t, call, "confirm")
	}
	assert.NoFileExists(t, config.ProjectPath(dir))
}

func TestInitializer_Run_adopt_declined(t *testing.T) {
	f := newInitFixture()
	f.vcs.workingTree = true
	f.vcs.remoteURL = "https://github.com/octo/site.git"
	f.host.visibility = gh.VisibilityPrivate
	dir := t.TempDir()

	result, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: dir})

	require.NoError(t, err)
	assert.Equal(t, flow.InitAborted, result.State)
	assert.True(t, result.Adopted)
	assert.Contains(t, f.rec.calls, "gh repo view")
	assert.NoFileExists(t, config.ProjectPath(dir))
}

func TestInitializer_Run_adopt_confirmed(t *testing.T) {
	f := newInitFixture()
	f.vcs.workingTree = true
	f.prompt.confirm = true
	f.init.DefaultMessage = "wip"
	dir := t.TempDir()

	result, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: dir})

	require.NoError(t, err)
	assert.Equal(t, flow.InitDone, result.State)
	assert.Equal(t, dir, result.Dir)

	project, err := config.LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "wip", project.DefaultCommitMessage)

	// Adoption never creates anything remotely
	for _, call := range f.rec.calls {
		assert.NotContains(t, call, "gh repo create")
		assert.NotContains(t, call, "git init")
	}
}

func TestInitializer_Run_adopt_skips_visibility_without_gh(t *testing.T) {
	f := newInitFixture()
	f.vcs.workingTree = true
	f.vcs.remoteURL = "git@github.com:octo/site.git"
	f.host.installed = false
	f.prompt.confirm = true

	_, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: t.TempDir()})

	require.NoError(t, err)
	assert.NotContains(t, f.rec.calls, "gh repo view")
}

func TestInitializer_Run_fresh_step_order(t *testing.T) {
	f := newInitFixture()
	work := t.TempDir()

	result, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: work, Target: "notes"})

	require.NoError(t, err)
	assert.Equal(t, flow.InitDone, result.State)
	assert.Equal(t, "octo/notes", result.Slug)
	assert.Equal(t, filepath.Join(work, "notes"), result.Dir)

	assert.Equal(t, []string{
		"git is-working-tree",
		"gh installed",
		"gh authenticated",
		"git installed",
		"gh username",
		"ask GitHub username",
		"ask Repository name",
		"gh repo create octo/notes",
		"git init main",
		"git add",
		"git commit initial commit",
		"git remote add https://github.com/octo/notes.git",
		"git push -u main",
	}, f.rec.calls)

	readme, err := os.ReadFile(filepath.Join(result.Dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# notes\n", string(readme))

	project, err := config.LoadProject(result.Dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultCommitMessage, project.DefaultCommitMessage)
}

func TestInitializer_Run_fresh_asks_directory_without_target(t *testing.T) {
	f := newInitFixture()
	f.prompt.answers["Repository name"] = "blog"
	f.init.Branch = "trunk"
	work := t.TempDir()

	result, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: work})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(work, "blog"), result.Dir)
	assert.Contains(t, f.rec.calls, "ask Directory")
	assert.Contains(t, f.rec.calls, "git push -u trunk")
	assert.DirExists(t, result.Dir)
}

func TestInitializer_Run_fresh_keeps_existing_readme(t *testing.T) {
	f := newInitFixture()
	work := t.TempDir()
	target := filepath.Join(work, "notes")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "README.md"), []byte("mine\n"), 0644))

	_, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: work, Target: target})

	require.NoError(t, err)
	readme, err := os.ReadFile(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "mine\n", string(readme))
}

func TestInitializer_Run_fresh_step_failure_stops(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *initFixture)
		stage    flow.Stage
		lastCall string
	}{
		{
			name:     "create repo",
			setup:    func(f *initFixture) { f.host.failCreate = true },
			stage:    flow.StageCreateRepo,
			lastCall: "gh repo create octo/notes",
		},
		{
			name:     "init",
			setup:    func(f *initFixture) { f.vcs.failOn = "git init main" },
			stage:    flow.StageInit,
			lastCall: "git init main",
		},
		{
			name:     "commit",
			setup:    func(f *initFixture) { f.vcs.failOn = "git commit initial commit" },
			stage:    flow.StageCommit,
			lastCall: "git commit initial commit",
		},
		{
			name:     "push",
			setup:    func(f *initFixture) { f.vcs.failOn = "git push -u main" },
			stage:    flow.StagePush,
			lastCall: "git push -u main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInitFixture()
			tt.setup(f)

			_, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: t.TempDir(), Target: "notes"})

			require.Error(t, err)
			stage, ok := flow.FailedStage(err)
			require.True(t, ok)
			assert.Equal(t, tt.stage, stage)
			assert.Equal(t, tt.lastCall, f.rec.calls[len(f.rec.calls)-1])
		})
	}
}

func TestInitializer_Run_fresh_preconditions(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *initFixture)
		wantErr error
	}{
		{name: "gh missing", setup: func(f *initFixture) { f.host.installed = false }, wantErr: flow.ErrToolMissing},
		{name: "gh logged out", setup: func(f *initFixture) { f.host.authenticated = false }, wantErr: flow.ErrNotAuthenticated},
		{name: "git missing", setup: func(f *initFixture) { f.vcs.installed = false }, wantErr: flow.ErrToolMissing},
		{name: "no username", setup: func(f *initFixture) { f.host.username = "" }, wantErr: flow.ErrMissingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInitFixture()
			tt.setup(f)

			_, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: t.TempDir(), Target: "notes"})

			require.ErrorIs(t, err, tt.wantErr)
			for _, call := range f.rec.calls {
				assert.NotContains(t, call, "gh repo create")
			}
		})
	}
}

func TestInitializer_Run_fresh_blank_name(t *testing.T) {
	f := newInitFixture()
	f.prompt.answers["Repository name"] = "   "

	_, err := f.init.Run(context.Background(), flow.InitOptions{WorkDir: t.TempDir()})

	require.ErrorIs(t, err, flow.ErrMissingInput)
}
