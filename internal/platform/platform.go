package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// EnsureDir creates a directory and any missing parents
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// HasCommand checks if a command is available in PATH
func HasCommand(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ExpandTilde expands ~ to home directory in path
func ExpandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if len(path) == 1 {
		return home, nil
	}

	// Handle ~/rest/of/path
	if path[1] == os.PathSeparator || path[1] == '/' {
		return filepath.Join(home, path[2:]), nil
	}

	// ~user is left alone
	return path, nil
}

// ResolvePath expands ~ and makes path absolute relative to base
func ResolvePath(base, path string) (string, error) {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	if base == "" {
		return filepath.Abs(expanded)
	}
	return filepath.Join(base, expanded), nil
}

// GetEditorSuggestion returns the suggested text editor command for the platform
func GetEditorSuggestion() string {
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "nano"
}

// GetConfigDirName returns the user config directory name for the platform
func GetConfigDirName() string {
	// Use .atm for all platforms for simplicity
	// On Windows, this won't be hidden but it's consistent across platforms
	return ".atm"
}

// GetPlatformName returns a user-friendly name of the running OS and architecture
func GetPlatformName() string {
	return osName(runtime.GOOS) + " (" + runtime.GOARCH + ")"
}

func osName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	default:
		return goos
	}
}

// GetGhInstallHint returns where to get the GitHub CLI on this platform
func GetGhInstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "brew install gh"
	case "windows":
		return "winget install --id GitHub.cli"
	default:
		return "https://cli.github.com/"
	}
}
