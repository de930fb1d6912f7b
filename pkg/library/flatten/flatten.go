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
	"context"
	"fmt"
	"net/url"
	"strings"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/api/v2/pkg/utils/overriding"
	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
	"github.com/che-incubator/devworkspace-factory/pkg/library/flatten/network"
)

var log = logf.Log.WithName("flatten")

// ResolverTools provides access to the places a parent devfile can be read from. A parent can only be resolved if
// the matching tool is set: HttpClient for references by uri or id, K8sClient for kubernetes references.
type ResolverTools struct {
	Context    context.Context
	K8sClient  client.Client
	HttpClient network.HTTPGetter
	// InstanceNamespace is used for kubernetes references that do not set a namespace
	InstanceNamespace string
	// DefaultRegistryURL is used for references by id that do not set a registryUrl
	DefaultRegistryURL string
}

// ResolveDevWorkspace takes a devworkspace template and returns a "resolved" version of it -- i.e. one where its
// parent, and the parents of its parent, are merged into the template. Elements of the template override elements
// of its parent that have the same name.
func ResolveDevWorkspace(template *dw.DevWorkspaceTemplateSpec, tooling ResolverTools) (*dw.DevWorkspaceTemplateSpec, error) {
	if tooling.Context == nil {
		tooling.Context = context.Background()
	}
	return recursiveResolve(template, tooling, &resolutionContextTree{})
}

func recursiveResolve(template *dw.DevWorkspaceTemplateSpec, tooling ResolverTools, resolveCtx *resolutionContextTree) (*dw.DevWorkspaceTemplateSpec, error) {
	if IsFlattened(template) {
		return template.DeepCopy(), nil
	}
	parent := template.Parent

	newCtx := resolveCtx.addParent(parent.ImportReference, "")
	if err := newCtx.hasCycle(); err != nil {
		return nil, err
	}
	parentTemplate, parentLocation, err := resolveParentReference(parent, tooling, resolveCtx.baseURI)
	if err != nil {
		return nil, err
	}
	newCtx.baseURI = parentLocation

	flattenedParent, err := recursiveResolve(parentTemplate, tooling, newCtx)
	if err != nil {
		return nil, err
	}
	parentContent := &flattenedParent.DevWorkspaceTemplateSpecContent
	if hasOverrides(parent) {
		parentContent, err = overriding.OverrideDevWorkspaceTemplateSpec(parentContent, parent.ParentOverrides)
		if err != nil {
			return nil, fmt.Errorf("failed to apply overrides to parent %s: %w", formatImportReference(parent.ImportReference), err)
		}
	}
	log.V(1).Info("Merged parent devfile", "parent", formatImportReference(parent.ImportReference))

	return &dw.DevWorkspaceTemplateSpec{
		DevWorkspaceTemplateSpecContent: *mergeParent(parentContent, &template.DevWorkspaceTemplateSpecContent),
	}, nil
}

func hasOverrides(parent *dw.Parent) bool {
	return len(parent.Components) > 0 || len(parent.Commands) > 0 || len(parent.Projects) > 0 ||
		len(parent.StarterProjects) > 0 || len(parent.Variables) > 0 || len(parent.Attributes) > 0
}

// resolveParentReference reads the template a parent refers to. For parents read from a URI, the location of the
// parent is returned so that relative references in the parent can be resolved against it.
func resolveParentReference(parent *dw.Parent, tooling ResolverTools, baseURI string) (resolved *dw.DevWorkspaceTemplateSpec, location string, err error) {
	switch {
	case parent.Uri != "":
		location, err = resolveURI(parent.Uri, baseURI)
		if err != nil {
			return nil, "", err
		}
		resolved, err = fetchParent(location, tooling)
	case parent.Id != "":
		registryURL := parent.RegistryUrl
		if registryURL == "" {
			registryURL = tooling.DefaultRegistryURL
		}
		if registryURL == "" {
			return nil, "", fmt.Errorf("parent %s does not specify a registryUrl and no default registry is configured", parent.Id)
		}
		location = strings.TrimSuffix(registryURL, "/") + constants.RegistryDevfilesPath + parent.Id
		resolved, err = fetchParent(location, tooling)
	case parent.Kubernetes != nil:
		resolved, err = resolveParentByKubernetesReference(parent.Kubernetes, tooling)
	default:
		err = fmt.Errorf("parent does not define any resources")
	}
	if err != nil {
		return nil, "", err
	}
	return resolved, location, nil
}

func resolveURI(uri, baseURI string) (string, error) {
	ref, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid parent uri %s: %w", uri, err)
	}
	if ref.IsAbs() {
		return uri, nil
	}
	if baseURI == "" {
		return "", fmt.Errorf("parent uri %s is relative but the devfile was not read from a uri", uri)
	}
	base, err := url.Parse(baseURI)
	if err != nil {
		return "", fmt.Errorf("invalid base uri %s: %w", baseURI, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func fetchParent(location string, tooling ResolverTools) (*dw.DevWorkspaceTemplateSpec, error) {
	if tooling.HttpClient == nil {
		return nil, fmt.Errorf("cannot fetch parent from %s: no HTTP client configured", location)
	}
	template, err := network.FetchDevfile(location, tooling.HttpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent: %w", err)
	}
	return template, nil
}

func resolveParentByKubernetesReference(ref *dw.KubernetesCustomResourceImportReference, tooling ResolverTools) (*dw.DevWorkspaceTemplateSpec, error) {
	if tooling.K8sClient == nil {
		return nil, fmt.Errorf("cannot resolve parent %s: no Kubernetes client configured", ref.Name)
	}
	namespace := ref.Namespace
	// Search in the instance namespace if namespace ref is unset
	if namespace == "" {
		namespace = tooling.InstanceNamespace
	}
	var dwTemplate dw.DevWorkspaceTemplate
	namespacedName := types.NamespacedName{
		Name:      ref.Name,
		Namespace: namespace,
	}
	err := tooling.K8sClient.Get(tooling.Context, namespacedName, &dwTemplate)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, fmt.Errorf("parent DevWorkspaceTemplate %s not found in namespace %s", ref.Name, namespace)
		}
		return nil, fmt.Errorf("failed to retrieve parent referenced by kubernetes name and namespace '%s': %w", ref.Name, err)
	}
	return &dwTemplate.Spec, nil
}
