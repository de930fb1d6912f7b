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
	"fmt"
	"reflect"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
)

// resolutionContextTree records the chain of parents imported while flattening a devfile
type resolutionContextTree struct {
	importReference dw.ImportReference
	// baseURI is the location the devfile at this node was read from, if it was read from a URI
	baseURI    string
	parentNode *resolutionContextTree
}

func (t *resolutionContextTree) addParent(ref dw.ImportReference, baseURI string) *resolutionContextTree {
	return &resolutionContextTree{
		importReference: ref,
		baseURI:         baseURI,
		parentNode:      t,
	}
}

func (t *resolutionContextTree) hasCycle() error {
	var seenRefs []dw.ImportReference
	currNode := t
	for currNode.parentNode != nil {
		for _, seenRef := range seenRefs {
			if reflect.DeepEqual(seenRef, currNode.importReference) {
				return fmt.Errorf("devfile has a cycle in parent references: %s", formatImportCycle(t))
			}
		}
		seenRefs = append(seenRefs, currNode.importReference)
		currNode = currNode.parentNode
	}
	return nil
}

func formatImportCycle(end *resolutionContextTree) string {
	cycle := formatImportReference(end.importReference)
	for end.parentNode != nil {
		end = end.parentNode
		name := "devfile"
		if end.parentNode != nil {
			name = formatImportReference(end.importReference)
		}
		cycle = fmt.Sprintf("%s -> %s", name, cycle)
	}
	return cycle
}

func formatImportReference(ref dw.ImportReference) string {
	switch {
	case ref.Uri != "":
		return ref.Uri
	case ref.Id != "":
		if ref.RegistryUrl != "" {
			return fmt.Sprintf("%s/%s", ref.RegistryUrl, ref.Id)
		}
		return ref.Id
	case ref.Kubernetes != nil:
		return fmt.Sprintf("%s/%s", ref.Kubernetes.Namespace, ref.Kubernetes.Name)
	}
	return "<empty>"
}

// IsFlattened returns true if the template does not reference a parent.
func IsFlattened(template *dw.DevWorkspaceTemplateSpec) bool {
	return template == nil || template.Parent == nil
}
