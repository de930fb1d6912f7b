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

// Package factory turns the response of the factory resolver endpoint into the devfile a workspace is created from.
package factory

import (
	"github.com/che-incubator/devworkspace-factory/pkg/constants"
	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
)

// FactoryResolver is the response of the factory resolver endpoint for a location.
type FactoryResolver struct {
	// Devfile is the devfile found at the location
	Devfile *devfile.Document `json:"devfile,omitempty"`
	// ScmInfo is set when the location is a git repository
	ScmInfo *ScmInfo `json:"scm_info,omitempty"`
	// Source is the name of the file the devfile was read from, e.g. devfile.yaml
	Source string `json:"source,omitempty"`
	// Links are used to fetch other files from the repository
	Links []Link `json:"links,omitempty"`
}

// ScmInfo describes the git repository a devfile was resolved from.
type ScmInfo struct {
	CloneURL    string `json:"clone_url"`
	ScmProvider string `json:"scm_provider"`
	Branch      string `json:"branch,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// FindLink returns the link serving the content of a repository file, or nil if the resolver provides none.
func FindLink(resolver *FactoryResolver, fileName string) *Link {
	if resolver == nil {
		return nil
	}
	rel := fileName + constants.LinkContentRelSuffix
	for idx := range resolver.Links {
		if resolver.Links[idx].Rel == rel {
			return &resolver.Links[idx]
		}
	}
	return nil
}
