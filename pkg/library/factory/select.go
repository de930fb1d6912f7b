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

package factory

import (
	"fmt"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
	"github.com/che-incubator/devworkspace-factory/pkg/dwerrors"
	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
	"github.com/che-incubator/devworkspace-factory/pkg/library/projects"
	"github.com/che-incubator/devworkspace-factory/pkg/metrics"
)

// SelectDevfile returns the devfile a workspace is created from for a resolved location.
//
// Legacy devfiles are returned unchanged. For 2.x devfiles, the project of the resolved repository is added unless
// the devfile already declares it, and the devfile source annotation is recorded in the devfile metadata attributes.
// The resolver is not modified.
func SelectDevfile(resolver *FactoryResolver, loc string) (*devfile.Document, error) {
	if resolver == nil || resolver.Devfile == nil || (!resolver.Devfile.IsV2() && resolver.Devfile.Legacy() == nil) {
		return nil, &dwerrors.MissingDevfileError{}
	}
	if !resolver.Devfile.IsV2() {
		metrics.FactoryResolved(metrics.SourceLegacy)
		return resolver.Devfile, nil
	}

	result := resolver.Devfile.Devfile().DeepCopy()
	var source *DevfileSource
	if resolver.ScmInfo != nil {
		project, err := projects.SynthesizeProject(resolver.ScmInfo.CloneURL, result.Projects)
		if err != nil {
			return nil, err
		}
		if project != nil {
			if !projects.HasRevision(project) {
				projects.SetRevision(project, resolver.ScmInfo.Branch)
			}
			result.Projects = append(result.Projects, *project)
		}
		source = &DevfileSource{
			Scm: &ScmSource{
				Repo:     resolver.ScmInfo.CloneURL,
				Revision: resolver.ScmInfo.Branch,
				FileName: resolver.Source,
			},
		}
	} else {
		source = &DevfileSource{
			URL: &URLSource{Location: loc},
		}
	}

	text, err := source.Dump()
	if err != nil {
		return nil, err
	}
	result.Metadata.Attributes, err = devfile.SetMetadataAnnotation(result.Metadata.Attributes, constants.DevfileSourceAnnotation, text)
	if err != nil {
		return nil, fmt.Errorf("failed to record devfile source: %w", err)
	}

	if source.Scm != nil {
		metrics.FactoryResolved(metrics.SourceScm)
	} else {
		metrics.FactoryResolved(metrics.SourceURL)
	}
	return devfile.NewDocument(result), nil
}

// GetDevfileSource returns the devfile source recorded in a devfile, or nil if none is recorded.
func GetDevfileSource(d *devfile.Devfile) (*DevfileSource, error) {
	text, found, err := devfile.GetMetadataAnnotation(d.Metadata.Attributes, constants.DevfileSourceAnnotation)
	if err != nil || !found {
		return nil, err
	}
	return ParseDevfileSource(text)
}
