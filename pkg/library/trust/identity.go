//
// Copyright (c) 2019-2025 Red Hat, Inc.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package trust decides whether a git repository belongs to the configured trusted sources. Repository URLs are
// compared by provider identity, so HTTPS and SSH forms of the same repository are considered equal.
package trust

import (
	"regexp"
	"strings"
)

// Provider is a git hosting service whose URL formats are known.
type Provider string

const (
	GitHub          Provider = "github"
	GitLab          Provider = "gitlab"
	BitbucketCloud  Provider = "bitbucket"
	BitbucketServer Provider = "bitbucket-server"
	AzureDevOps     Provider = "azure-devops"
)

// Identity is the canonical form of a repository URL.
type Identity struct {
	Provider Provider
	// Host is the server hosting the repository. Hosted services always use the same host for the HTTPS and SSH
	// forms of a URL.
	Host string
	// Repository is the owner/repo path of the repository. For Azure DevOps the owner is organization/project.
	Repository string
}

func (i Identity) String() string {
	return i.Host + "/" + i.Repository
}

type urlPattern struct {
	provider Provider
	// host overrides the host captured by the pattern
	host string
	re   *regexp.Regexp
}

// Named groups: host (optional when host is set), owner, repo.
var urlPatterns = []urlPattern{
	{
		provider: GitHub,
		host:     "github.com",
		re:       regexp.MustCompile(`^https?://(?:[^@/]+@)?github\.com/(?P<owner>[^/]+)/(?P<repo>[^/]+?)(?:\.git)?/?$`),
	},
	{
		provider: GitHub,
		host:     "github.com",
		re:       regexp.MustCompile(`^(?:ssh://)?git@github\.com[:/](?P<owner>[^/]+)/(?P<repo>[^/]+?)(?:\.git)?/?$`),
	},
	{
		provider: GitLab,
		host:     "gitlab.com",
		re:       regexp.MustCompile(`^https?://(?:[^@/]+@)?gitlab\.com/(?P<owner>[^/]+(?:/[^/]+)*)/(?P<repo>[^/]+?)(?:\.git)?/?$`),
	},
	{
		provider: GitLab,
		host:     "gitlab.com",
		re:       regexp.MustCompile(`^(?:ssh://)?git@gitlab\.com[:/](?P<owner>[^/]+(?:/[^/]+)*)/(?P<repo>[^/]+?)(?:\.git)?/?$`),
	},
	{
		provider: BitbucketCloud,
		host:     "bitbucket.org",
		re:       regexp.MustCompile(`^https?://(?:[^@/]+@)?bitbucket\.org/(?P<owner>[^/]+)/(?P<repo>[^/]+?)(?:\.git)?/?$`),
	},
	{
		provider: BitbucketCloud,
		host:     "bitbucket.org",
		re:       regexp.MustCompile(`^(?:ssh://)?git@bitbucket\.org[:/](?P<owner>[^/]+)/(?P<repo>[^/]+?)(?:\.git)?/?$`),
	},
	{
		provider: BitbucketServer,
		re:       regexp.MustCompile(`^https?://(?:[^@/]+@)?(?P<host>[^/:@]+)(?::\d+)?/scm/(?P<owner>[^/]+)/(?P<repo>[^/]+?)(?:\.git)?/?$`),
	},
	{
		provider: BitbucketServer,
		re:       regexp.MustCompile(`^ssh://git@(?P<host>[^/:@]+)(?::\d+)?/(?P<owner>[^/]+)/(?P<repo>[^/]+?)(?:\.git)?/?$`),
	},
	{
		provider: AzureDevOps,
		host:     "dev.azure.com",
		re:       regexp.MustCompile(`^https://(?:[^@/]+@)?dev\.azure\.com/(?P<owner>[^/]+/[^/]+)/_git/(?P<repo>[^/]+?)/?$`),
	},
	{
		provider: AzureDevOps,
		host:     "dev.azure.com",
		re:       regexp.MustCompile(`^(?:ssh://)?git@ssh\.dev\.azure\.com[:/]v3/(?P<owner>[^/]+/[^/]+)/(?P<repo>[^/]+?)/?$`),
	},
}

// Canonicalize returns the identity of the repository a URL points to. The second return value is false if the URL
// does not match any known provider format.
func Canonicalize(url string) (Identity, bool) {
	id, _, ok := canonicalize(url)
	return id, ok
}

// canonicalize also reports whether the matching pattern names a fixed host. Patterns that capture the host match
// self-hosted servers whose other URL forms may not match any pattern.
func canonicalize(url string) (id Identity, fixedHost bool, ok bool) {
	for _, pattern := range urlPatterns {
		match := pattern.re.FindStringSubmatch(url)
		if match == nil {
			continue
		}
		groups := map[string]string{}
		for idx, name := range pattern.re.SubexpNames() {
			if name != "" {
				groups[name] = match[idx]
			}
		}
		host := pattern.host
		if host == "" {
			host = groups["host"]
		}
		return Identity{
			Provider:   pattern.provider,
			Host:       host,
			Repository: groups["owner"] + "/" + groups["repo"],
		}, pattern.host != "", true
	}
	return Identity{}, false, false
}

// SameRepository returns true if both URLs refer to the same repository. URLs of hosted providers are compared by
// identity; other URLs are compared after generic normalization of the scheme, user, trailing slash and .git suffix.
func SameRepository(a, b string) bool {
	if a == b {
		return true
	}
	idA, fixedA, okA := canonicalize(a)
	idB, fixedB, okB := canonicalize(b)
	if okA && okB && idA == idB {
		return true
	}
	if fixedA && fixedB {
		return false
	}
	normA, okA := normalize(a)
	normB, okB := normalize(b)
	return okA && okB && normA == normB
}

// normalize reduces http(s), ssh:// and scp-like git URLs to host/path.
func normalize(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	var host, repoPath string
	if scheme, rest, found := strings.Cut(trimmed, "://"); found {
		switch scheme {
		case "http", "https", "ssh", "git":
		default:
			return "", false
		}
		host, repoPath, _ = strings.Cut(rest, "/")
	} else {
		var found bool
		host, repoPath, found = strings.Cut(trimmed, ":")
		if !found {
			return "", false
		}
	}
	if at := strings.LastIndex(host, "@"); at >= 0 {
		host = host[at+1:]
	}
	if colon := strings.Index(host, ":"); colon >= 0 {
		host = host[:colon]
	}
	repoPath = strings.TrimSuffix(strings.Trim(repoPath, "/"), ".git")
	if host == "" || repoPath == "" {
		return "", false
	}
	return host + "/" + repoPath, true
}
