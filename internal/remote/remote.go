// Package remote classifies git remote URLs by hosting provider.
package remote

import (
	"regexp"
	"strings"
)

// HostType identifies the hosting provider behind a remote.
type HostType string

const (
	HostGitHub    HostType = "github"
	HostGitLab    HostType = "gitlab"
	HostBitbucket HostType = "bitbucket"
	HostUnknown   HostType = "unknown"
)

// Descriptor is a parsed remote URL. Owner and Repo are never empty and
// Repo never carries a .git suffix.
type Descriptor struct {
	Host     string
	HostType HostType
	Owner    string
	Repo     string
}

// Slug returns owner/repo.
func (d Descriptor) Slug() string {
	return d.Owner + "/" + d.Repo
}

var (
	// Pattern for SSH: git@github.com:user/repo.git
	sshPattern = regexp.MustCompile(`^[^@\s/]+@([^:\s/]+):([^/\s]+)/([^/\s]+?)(?:\.git)?/?$`)

	// Pattern for URLs with a scheme: https://github.com/user/repo.git
	schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://(?:[^@/\s]+@)?([^/:\s]+)(?::\d+)?/([^/\s]+)/([^/\s]+?)(?:\.git)?/?$`)
)

// Parse extracts host, owner and repository from a remote URL. It reports
// false for empty input or anything that is neither SSH nor scheme form.
func Parse(url string) (Descriptor, bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Descriptor{}, false
	}

	for _, re := range []*regexp.Regexp{sshPattern, schemePattern} {
		matches := re.FindStringSubmatch(url)
		if matches == nil {
			continue
		}

		host := matches[1]
		owner := matches[2]
		repo := strings.TrimSuffix(matches[3], ".git")
		if owner == "" || repo == "" {
			return Descriptor{}, false
		}

		return Descriptor{
			Host:     host,
			HostType: Classify(host),
			Owner:    owner,
			Repo:     repo,
		}, true
	}

	return Descriptor{}, false
}

// Classify maps a host name to its provider by substring.
func Classify(host string) HostType {
	host = strings.ToLower(host)
	switch {
	case strings.Contains(host, "github"):
		return HostGitHub
	case strings.Contains(host, "gitlab"):
		return HostGitLab
	case strings.Contains(host, "bitbucket"):
		return HostBitbucket
	default:
		return HostUnknown
	}
}
