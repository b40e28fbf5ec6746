package model

import (
	"net/url"
	"regexp"
	"strings"
)

// RepositoryRef identifies a GitHub repository.
type RepositoryRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// String returns owner/name.
func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}

var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

var githubHosts = map[string]bool{
	"github.com":     true,
	"www.github.com": true,
}

// ParseRepositoryReference extracts owner and name from a GitHub URL
// (with or without scheme, trailing .git or extra path) or a bare owner/name.
func ParseRepositoryReference(ref string) (RepositoryRef, error) {
	ref = strings.TrimSpace(ref)
	lower := strings.ToLower(ref)

	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		u, err := url.Parse(ref)
		if err != nil || !githubHosts[strings.ToLower(u.Hostname())] {
			return RepositoryRef{}, ErrInvalidRepositoryReference
		}
		return fromPath(u.Path, true)
	case strings.HasPrefix(lower, "github.com/"), strings.HasPrefix(lower, "www.github.com/"):
		_, path, _ := strings.Cut(ref, "/")
		return fromPath(path, true)
	default:
		return fromPath(ref, false)
	}
}

func fromPath(path string, allowExtra bool) (RepositoryRef, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || (!allowExtra && len(parts) != 2) {
		return RepositoryRef{}, ErrInvalidRepositoryReference
	}

	owner := parts[0]
	name := strings.TrimSuffix(parts[1], ".git")
	if !segmentPattern.MatchString(owner) || !segmentPattern.MatchString(name) {
		return RepositoryRef{}, ErrInvalidRepositoryReference
	}
	return RepositoryRef{Owner: owner, Name: name}, nil
}
