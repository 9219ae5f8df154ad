package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Repo locates a single repository on the hosting service.
type Repo struct {
	Owner string
	Name  string
}

// String returns the owner/name form used in log lines and report headers.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepoURL extracts the owner and repository name from a repository URL
// such as https://github.com/owner/repo. Extra path segments and a trailing
// .git suffix are tolerated.
func ParseRepoURL(raw string) (Repo, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Repo{}, fmt.Errorf("invalid repository URL %q: %w", raw, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if u.Host == "" || len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, fmt.Errorf("invalid repository URL %q: expected format https://github.com/owner/repo", raw)
	}
	return Repo{Owner: parts[0], Name: strings.TrimSuffix(parts[1], ".git")}, nil
}
