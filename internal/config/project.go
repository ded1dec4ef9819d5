package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

const (
	ProjectFileName = "atm.json"
	// DefaultCommitMessage is written into new atm.json files
	DefaultCommitMessage = "save"
)

// ProjectPath returns the path of atm.json inside dir
func ProjectPath(dir string) string {
	return filepath.Join(dir, ProjectFileName)
}

// ProjectExists checks if dir has been initialized
func ProjectExists(dir string) (bool, error) {
	_, err := os.Stat(ProjectPath(dir))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", ProjectFileName, err)
}

// NewProject creates a project record with the given default message
func NewProject(defaultMessage string) *Project {
	if defaultMessage == "" {
		defaultMessage = DefaultCommitMessage
	}
	return &Project{DefaultCommitMessage: defaultMessage}
}

// LoadProject reads atm.json from dir. Unknown keys are ignored.
func LoadProject(dir string) (*Project, error) {
	data, err := os.ReadFile(ProjectPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ProjectFileName, err)
	}

	var project Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ProjectFileName, err)
	}
	return &project, nil
}

// SaveProject writes atm.json into dir with 2-space indentation
func SaveProject(dir string, project *Project) error {
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", ProjectFileName, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(ProjectPath(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ProjectFileName, err)
	}
	return nil
}
