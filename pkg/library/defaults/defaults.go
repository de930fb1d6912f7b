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

// Package defaults provides the components added to DevWorkspaces whose devfile declares none.
package defaults

import (
	"fmt"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
)

// Components is a list of default components. It is read from a YAML or JSON list of devfile components.
type Components []dw.Component

// EnvDecode allows Components to be read from the environment by go-envconfig.
func (c *Components) EnvDecode(value string) error {
	var components []dw.Component
	if err := yaml.Unmarshal([]byte(value), &components); err != nil {
		return fmt.Errorf("failed to parse default components: %w", err)
	}
	for _, component := range components {
		if _, err := devfile.ComponentKind(component); err != nil {
			return fmt.Errorf("invalid default component: %w", err)
		}
	}
	*c = components
	return nil
}

// NeedsDefaultComponents returns true if the template neither declares components nor inherits them from a parent.
func NeedsDefaultComponents(template *dw.DevWorkspaceTemplateSpec, defaults Components) bool {
	return len(defaults) > 0 && len(template.Components) == 0 && template.Parent == nil
}

// ApplyDefaultComponents sets the default components as the components of the template, keeping everything else
// the template defines.
func ApplyDefaultComponents(template *dw.DevWorkspaceTemplateSpec, defaults Components) {
	template.Components = make([]dw.Component, 0, len(defaults))
	for _, component := range defaults {
		template.Components = append(template.Components, *component.DeepCopy())
	}
}
