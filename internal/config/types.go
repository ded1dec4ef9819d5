package config

// Project is the per-repository atm.json record
type Project struct {
	DefaultCommitMessage string `json:"defaultCommitMessage"`
}

// UnknownCommandPolicy decides what happens to arguments that are not a command
type UnknownCommandPolicy string

const (
	// PolicyReject fails and points at `atm s <text>`
	PolicyReject UnknownCommandPolicy = "reject"
	// PolicySave treats the arguments as a commit message
	PolicySave UnknownCommandPolicy = "save"
)

// Settings are user-wide preferences read from ~/.atm/settings.toml
type Settings struct {
	UnknownCommand       UnknownCommandPolicy `toml:"unknown_command"`
	DefaultCommitMessage string               `toml:"default_commit_message"`
	Branch               string               `toml:"branch"` // Upstream branch for the initial push
}
