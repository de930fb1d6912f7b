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

// Package resources reads the resource quantities declared by devfile components.
package resources

import (
	"fmt"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

// ParseContainerResources returns the resource requests and limits a container declares. Resources that are not
// declared are not set in the returned lists.
func ParseContainerResources(name string, container *dw.ContainerComponent) (*corev1.ResourceRequirements, error) {
	resources := &corev1.ResourceRequirements{
		Limits:   corev1.ResourceList{},
		Requests: corev1.ResourceList{},
	}
	for _, field := range []struct {
		value        string
		description  string
		resourceName corev1.ResourceName
		list         corev1.ResourceList
	}{
		{container.MemoryLimit, "memory limit", corev1.ResourceMemory, resources.Limits},
		{container.MemoryRequest, "memory request", corev1.ResourceMemory, resources.Requests},
		{container.CpuLimit, "CPU limit", corev1.ResourceCPU, resources.Limits},
		{container.CpuRequest, "CPU request", corev1.ResourceCPU, resources.Requests},
	} {
		if field.value == "" {
			continue
		}
		quantity, err := resource.ParseQuantity(field.value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for container component %s: %w", field.description, name, err)
		}
		field.list[field.resourceName] = quantity
	}
	return resources, nil
}

// ValidateComponent checks the resource quantities of a component: container requests and limits must parse and
// requests must not exceed limits, and volume sizes must parse.
func ValidateComponent(component dw.Component) error {
	switch {
	case component.Container != nil:
		resources, err := ParseContainerResources(component.Name, component.Container)
		if err != nil {
			return err
		}
		for _, resourceName := range []corev1.ResourceName{corev1.ResourceMemory, corev1.ResourceCPU} {
			request, hasRequest := resources.Requests[resourceName]
			limit, hasLimit := resources.Limits[resourceName]
			if hasRequest && hasLimit && request.Cmp(limit) > 0 {
				return fmt.Errorf("%s request (%s) of container component %s exceeds its limit (%s)",
					resourceName, request.String(), component.Name, limit.String())
			}
		}
	case component.Volume != nil:
		if component.Volume.Size == "" {
			return nil
		}
		if _, err := resource.ParseQuantity(component.Volume.Size); err != nil {
			return fmt.Errorf("failed to parse size for volume component %s: %w", component.Name, err)
		}
	}
	return nil
}
