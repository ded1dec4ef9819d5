package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byterings/atm/internal/ui"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		answer, def, want string
	}{
		{"", "octo", "octo"},
		{"   ", "octo", "octo"},
		{" alice ", "octo", "alice"},
		{"", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ui.Resolve(tt.answer, tt.def))
	}
}

func TestLinePrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewLinePrompter(strings.NewReader("\nmy-repo\n"), &out)

	name, err := p.Ask("GitHub username", "octo")
	require.NoError(t, err)
	assert.Equal(t, "octo", name)

	repo, err := p.Ask("Repository name", "")
	require.NoError(t, err)
	assert.Equal(t, "my-repo", repo)

	assert.Equal(t, "GitHub username [octo]: Repository name: ", out.String())
}

func TestLinePrompter_Ask_end_of_input(t *testing.T) {
	p := ui.NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})

	answer, err := p.Ask("Repository name", "")
	require.NoError(t, err)
	assert.Empty(t, answer)

	answer, err = p.Ask("Directory", "./repo")
	require.NoError(t, err)
	assert.Equal(t, "./repo", answer)
}

func TestLinePrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := ui.NewLinePrompter(strings.NewReader(tt.input), &out)

		got, err := p.Confirm("Create atm.json in this directory?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Create atm.json in this directory? [y/N]: ", out.String())
	}
}

func TestOutput_helpers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ui.SetOutput(&stdout, &stderr)

	ui.Success("done")
	ui.Info("note")
	ui.Warning("careful")
	ui.Error("failed")

	assert.Equal(t, "✓ done\nℹ note\n⚠ careful\n", stdout.String())
	assert.Equal(t, "✗ failed\n", stderr.String())
}

func TestPrintSummary(t *testing.T) {
	var stdout bytes.Buffer
	ui.SetOutput(&stdout, &bytes.Buffer{})

	ui.PrintSummary([]ui.Row{
		{Label: "Remote", Value: "git@github.com:octo/atm.git"},
		{Label: "Host", Value: "github"},
	})

	got := stdout.String()
	assert.Contains(t, got, "Remote")
	assert.Contains(t, got, "git@github.com:octo/atm.git")
	assert.Contains(t, got, "github")
}
