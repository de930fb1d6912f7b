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

// Package location parses git locations entered by users (SSH or HTTP(S) git URLs, optionally pointing at a
// revision) into devfile projects.
package location

import (
	"net/url"
	"path"
	"strings"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
	"github.com/che-incubator/devworkspace-factory/pkg/dwerrors"
)

// Kind classifies a location string.
type Kind string

const (
	KindSSH          Kind = "SSH"
	KindHTTPS        Kind = "HTTPS"
	KindUnrecognized Kind = "Unrecognized"
)

const (
	gitSuffix     = ".git"
	treeSeparator = "/tree/"
)

// Location is a parsed git location.
type Location struct {
	Kind Kind
	// Remote is the git remote URL of the repository
	Remote string
	// Name is the name used for the project cloned from the location
	Name string
	// Revision is the revision to check out, if the location points at one
	Revision string
}

// Classify returns the kind of a location without parsing it further.
func Classify(location string) Kind {
	if _, ok := parseSSH(location); ok {
		return KindSSH
	}
	if _, ok := parseHTTP(location); ok {
		return KindHTTPS
	}
	return KindUnrecognized
}

// Parse parses a git location. An *dwerrors.UnsupportedLocationError is returned if the location is neither an SSH
// nor an HTTP(S) location.
func Parse(location string) (*Location, error) {
	if parsed, ok := parseSSH(location); ok {
		return parsed, nil
	}
	if parsed, ok := parseHTTP(location); ok {
		return parsed, nil
	}
	return nil, &dwerrors.UnsupportedLocationError{Location: location}
}

// ParseProject builds a devfile project from a git location. The repository is registered under remoteName, or
// under "origin" if remoteName is empty.
func ParseProject(location, remoteName string) (*dw.Project, error) {
	parsed, err := Parse(location)
	if err != nil {
		return nil, err
	}
	return parsed.Project(remoteName), nil
}

// Project returns the devfile project cloning this location.
func (l *Location) Project(remoteName string) *dw.Project {
	if remoteName == "" {
		remoteName = constants.DefaultRemoteName
	}
	gitSource := &dw.GitProjectSource{}
	gitSource.Remotes = map[string]string{
		remoteName: l.Remote,
	}
	if l.Revision != "" {
		gitSource.CheckoutFrom = &dw.CheckoutFrom{
			Revision: l.Revision,
		}
	}
	return &dw.Project{
		Name: l.Name,
		ProjectSource: dw.ProjectSource{
			Git: gitSource,
		},
	}
}

// parseSSH recognizes scp-like (user@host:owner/repo.git) and ssh:// git locations. The location is kept as the
// remote as-is.
func parseSSH(location string) (*Location, bool) {
	if strings.TrimSpace(location) != location || location == "" {
		return nil, false
	}
	endpoint, err := transport.NewEndpoint(location)
	if err != nil || endpoint.Protocol != "ssh" || endpoint.Host == "" {
		return nil, false
	}
	if !strings.HasPrefix(location, "ssh://") && endpoint.User == "" {
		// scp-like syntax requires a user, otherwise any "host:path" string would qualify
		return nil, false
	}
	name := lastSegment(strings.TrimSuffix(strings.TrimSuffix(endpoint.Path, "/"), gitSuffix))
	if name == "" {
		return nil, false
	}
	return &Location{
		Kind:   KindSSH,
		Remote: location,
		Name:   name,
	}, true
}

// parseHTTP recognizes absolute http(s) URLs. Three forms are supported:
//   - https://host/owner/repo.git is used as the remote directly
//   - https://host/owner/repo/tree/<revision> checks out <revision> of https://host/owner/repo.git
//   - https://host/owner/repo is cloned from https://host/owner/repo.git
func parseHTTP(location string) (*Location, bool) {
	parsed, err := url.Parse(location)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" || parsed.Opaque != "" {
		return nil, false
	}
	origin := parsed.Scheme + "://" + parsed.Host
	pathname := parsed.EscapedPath()

	switch {
	case strings.HasSuffix(pathname, gitSuffix):
		if strings.TrimSuffix(lastSegment(pathname), gitSuffix) == "" {
			return nil, false
		}
		return &Location{
			Kind:   KindHTTPS,
			Remote: origin + pathname,
			Name:   strings.TrimSuffix(lastSegment(pathname), gitSuffix),
		}, true
	case strings.Contains(pathname, treeSeparator):
		repoPath, revision, _ := strings.Cut(pathname, treeSeparator)
		if revision == "" {
			return nil, false
		}
		// The project is named after the revision, not after the repository.
		return &Location{
			Kind:     KindHTTPS,
			Remote:   origin + strings.TrimSuffix(repoPath, "/") + gitSuffix,
			Name:     revision,
			Revision: revision,
		}, true
	default:
		repoPath := strings.TrimSuffix(pathname, "/")
		if lastSegment(repoPath) == "" {
			return nil, false
		}
		return &Location{
			Kind:   KindHTTPS,
			Remote: origin + repoPath + gitSuffix,
			Name:   lastSegment(repoPath),
		}, true
	}
}

func lastSegment(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return ""
	}
	base := path.Base(p)
	if base == "/" || base == "." {
		return ""
	}
	return base
}
