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

package flatten

import (
	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/api/v2/pkg/attributes"
)

// mergeParent merges a flattened parent into the main template content. Parent elements come first; an element of
// main replaces the parent element with the same name in place. Events of the parent precede those of main and are
// deduplicated. Variables and attributes of main override those of the parent.
func mergeParent(parent, main *dw.DevWorkspaceTemplateSpecContent) *dw.DevWorkspaceTemplateSpecContent {
	parent = parent.DeepCopy()
	main = main.DeepCopy()
	return &dw.DevWorkspaceTemplateSpecContent{
		Variables:       mergeVariables(parent.Variables, main.Variables),
		Attributes:      mergeAttributes(parent.Attributes, main.Attributes),
		Components:      mergeByKey(parent.Components, main.Components),
		Projects:        mergeByKey(parent.Projects, main.Projects),
		StarterProjects: mergeByKey(parent.StarterProjects, main.StarterProjects),
		Commands:        mergeByKey(parent.Commands, main.Commands),
		Events:          mergeEvents(parent.Events, main.Events),
	}
}

func mergeByKey[T dw.Keyed](parent, main []T) []T {
	if len(parent) == 0 {
		return main
	}
	overrides := map[string]T{}
	for _, element := range main {
		overrides[element.Key()] = element
	}
	var result []T
	for _, element := range parent {
		if override, ok := overrides[element.Key()]; ok {
			result = append(result, override)
			delete(overrides, element.Key())
			continue
		}
		result = append(result, element)
	}
	for _, element := range main {
		if _, pending := overrides[element.Key()]; pending {
			result = append(result, element)
		}
	}
	return result
}

func mergeEvents(parent, main *dw.Events) *dw.Events {
	if parent == nil {
		return main
	}
	if main == nil {
		return parent
	}
	return &dw.Events{
		DevWorkspaceEvents: dw.DevWorkspaceEvents{
			PreStart:  mergeCommandRefs(parent.PreStart, main.PreStart),
			PostStart: mergeCommandRefs(parent.PostStart, main.PostStart),
			PreStop:   mergeCommandRefs(parent.PreStop, main.PreStop),
			PostStop:  mergeCommandRefs(parent.PostStop, main.PostStop),
		},
	}
}

func mergeCommandRefs(parent, main []string) []string {
	seen := map[string]bool{}
	var result []string
	for _, ref := range append(parent, main...) {
		if !seen[ref] {
			seen[ref] = true
			result = append(result, ref)
		}
	}
	return result
}

func mergeVariables(parent, main map[string]string) map[string]string {
	if len(parent) == 0 {
		return main
	}
	result := map[string]string{}
	for k, v := range parent {
		result[k] = v
	}
	for k, v := range main {
		result[k] = v
	}
	return result
}

func mergeAttributes(parent, main attributes.Attributes) attributes.Attributes {
	if len(parent) == 0 {
		return main
	}
	result := attributes.Attributes{}
	for k, v := range parent {
		result[k] = v
	}
	for k, v := range main {
		result[k] = v
	}
	return result
}
