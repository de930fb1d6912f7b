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

// Package projects defines library functions for adding the project of a git location to the projects of a devfile
package projects

import (
	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"

	"github.com/che-incubator/devworkspace-factory/pkg/library/location"
	"github.com/che-incubator/devworkspace-factory/pkg/library/trust"
)

// SynthesizeProject returns the project cloning location, or nil if existing already contains a project with the
// same name or a project cloning the same repository. existing is not modified; the caller is responsible for
// appending the returned project.
func SynthesizeProject(loc string, existing []dw.Project) (*dw.Project, error) {
	parsed, err := location.Parse(loc)
	if err != nil {
		return nil, err
	}
	for _, project := range existing {
		if project.Name == parsed.Name {
			return nil, nil
		}
		if clonesRepository(project, parsed.Remote) {
			return nil, nil
		}
	}
	return parsed.Project(""), nil
}

// clonesRepository returns true if any git remote of the project refers to the same repository as remote.
func clonesRepository(project dw.Project, remote string) bool {
	if project.Git == nil {
		return false
	}
	for _, projectRemote := range project.Git.Remotes {
		if trust.SameRepository(projectRemote, remote) {
			return true
		}
	}
	return false
}

// HasRevision returns true if the project checks out a specific revision.
func HasRevision(project *dw.Project) bool {
	return project.Git != nil && project.Git.CheckoutFrom != nil && project.Git.CheckoutFrom.Revision != ""
}

// SetRevision makes a git project check out revision.
func SetRevision(project *dw.Project, revision string) {
	if project.Git == nil || revision == "" {
		return
	}
	if project.Git.CheckoutFrom == nil {
		project.Git.CheckoutFrom = &dw.CheckoutFrom{}
	}
	project.Git.CheckoutFrom.Revision = revision
}
