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

package trust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		url      string
		expected Identity
	}{
		{"https://github.com/eclipse-che/che-dashboard", Identity{GitHub, "github.com", "eclipse-che/che-dashboard"}},
		{"https://github.com/eclipse-che/che-dashboard.git", Identity{GitHub, "github.com", "eclipse-che/che-dashboard"}},
		{"https://github.com/eclipse-che/che-dashboard/", Identity{GitHub, "github.com", "eclipse-che/che-dashboard"}},
		{"git@github.com:eclipse-che/che-dashboard.git", Identity{GitHub, "github.com", "eclipse-che/che-dashboard"}},
		{"ssh://git@github.com/eclipse-che/che-dashboard.git", Identity{GitHub, "github.com", "eclipse-che/che-dashboard"}},
		{"https://gitlab.com/group/subgroup/project", Identity{GitLab, "gitlab.com", "group/subgroup/project"}},
		{"git@gitlab.com:group/subgroup/project.git", Identity{GitLab, "gitlab.com", "group/subgroup/project"}},
		{"https://user@bitbucket.org/workspace/repo.git", Identity{BitbucketCloud, "bitbucket.org", "workspace/repo"}},
		{"git@bitbucket.org:workspace/repo.git", Identity{BitbucketCloud, "bitbucket.org", "workspace/repo"}},
		{"https://bitbucket.example.com/scm/proj/repo.git", Identity{BitbucketServer, "bitbucket.example.com", "proj/repo"}},
		{"ssh://git@bitbucket.example.com:7999/proj/repo.git", Identity{BitbucketServer, "bitbucket.example.com", "proj/repo"}},
		{"https://org@dev.azure.com/org/project/_git/repo", Identity{AzureDevOps, "dev.azure.com", "org/project/repo"}},
		{"git@ssh.dev.azure.com:v3/org/project/repo", Identity{AzureDevOps, "dev.azure.com", "org/project/repo"}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, ok := Canonicalize(tt.url)
			assert.True(t, ok, "Should recognize URL")
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestCanonicalizeUnknownURL(t *testing.T) {
	for _, url := range []string{
		"https://git.example.com/owner/repo",
		"https://GitHub.com/owner/repo",
		"github.com/owner/repo",
		"",
	} {
		_, ok := Canonicalize(url)
		assert.False(t, ok, "Should not recognize %q", url)
	}
}

func TestIsTrustedRepo(t *testing.T) {
	tests := []struct {
		name     string
		sources  Sources
		url      string
		expected bool
	}{
		{"nothing trusted by default", Sources{}, "https://github.com/a/b", false},
		{"wildcard", AllSources(), "https://anything.example.com/x", true},
		{"HTTPS entry matches SSH url", SourceList("https://github.com/a/b"), "git@github.com:a/b.git", true},
		{"different repository", SourceList("https://github.com/a/b"), "https://github.com/a/c", false},
		{"same path on another provider", SourceList("https://github.com/a/b"), "https://gitlab.com/a/b", false},
		{"Azure SSH entry matches HTTPS url", SourceList("git@ssh.dev.azure.com:v3/org/project/repo"), "https://dev.azure.com/org/project/_git/repo", true},
		{"unknown provider exact match", SourceList("https://git.example.com/a/b"), "https://git.example.com/a/b", true},
		{"unknown provider not normalized", SourceList("https://git.example.com/a/b"), "https://git.example.com/a/b.git", false},
		{"second entry matches", SourceList("https://github.com/x/y", "https://gitlab.com/g/p"), "git@gitlab.com:g/p.git", true},
		{"empty list", SourceList(), "https://github.com/a/b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTrustedRepo(tt.sources, tt.url))
		})
	}
}

func TestParseSources(t *testing.T) {
	assert.True(t, ParseSources("*").All())
	assert.True(t, ParseSources(" * ").All())

	sources := ParseSources("https://github.com/a/b, git@gitlab.com:g/p.git,,")
	assert.False(t, sources.All())
	assert.Equal(t, []string{"https://github.com/a/b", "git@gitlab.com:g/p.git"}, sources.URLs())
	assert.Equal(t, "https://github.com/a/b,git@gitlab.com:g/p.git", sources.String())

	assert.Empty(t, ParseSources("").URLs())
}

func TestEnvDecode(t *testing.T) {
	var sources Sources
	assert.NoError(t, sources.EnvDecode("*"))
	assert.True(t, sources.IsTrusted("https://github.com/a/b"))
}

func TestSameRepository(t *testing.T) {
	assert.True(t, SameRepository("https://github.com/a/b", "git@github.com:a/b.git"))
	assert.True(t, SameRepository("https://git.example.com/a/b", "https://git.example.com/a/b.git"))
	assert.True(t, SameRepository("git@git.example.com:a/b.git", "https://git.example.com/a/b"))
	assert.True(t, SameRepository("ssh://git@git.example.com:2222/g/a/b.git", "https://git.example.com/g/a/b/"))
	assert.False(t, SameRepository("https://github.com/a/b", "https://github.com/a/c"))
	assert.False(t, SameRepository("https://github.com/a/b", "https://git.example.com/a/b"))
	assert.False(t, SameRepository("not a url", "https://git.example.com/a/b"))
	assert.True(t, SameRepository("ssh://git@example.com/a/b.git", "https://example.com/a/b"))
	assert.True(t, SameRepository("https://example.com/a/b", "ssh://git@example.com:7999/a/b.git"))
	assert.True(t, SameRepository("https://bitbucket.example.com/scm/team/app.git", "ssh://git@bitbucket.example.com:7999/team/app.git"))
	assert.False(t, SameRepository("ssh://git@example.com/a/b.git", "https://example.com/a/c"))
}
