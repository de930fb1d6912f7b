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

package resources

import (
	"testing"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

func getContainerComponent(memLimit, memRequest, cpuLimit, cpuRequest string) dw.Component {
	return dw.Component{
		Name: "tools",
		ComponentUnion: dw.ComponentUnion{
			Container: &dw.ContainerComponent{
				Container: dw.Container{
					Image:         "quay.io/devfile/universal-developer-image:latest",
					MemoryLimit:   memLimit,
					MemoryRequest: memRequest,
					CpuLimit:      cpuLimit,
					CpuRequest:    cpuRequest,
				},
			},
		},
	}
}

func TestParseContainerResources(t *testing.T) {
	tests := []struct {
		name      string
		component dw.Component
		expected  *corev1.ResourceRequirements
		errRegexp string
	}{
		{
			name:      "Parses all fields in component",
			component: getContainerComponent("1000Mi", "100Mi", "1000m", "100m"),
			expected: &corev1.ResourceRequirements{
				Limits: corev1.ResourceList{
					corev1.ResourceMemory: resource.MustParse("1000Mi"),
					corev1.ResourceCPU:    resource.MustParse("1000m"),
				},
				Requests: corev1.ResourceList{
					corev1.ResourceMemory: resource.MustParse("100Mi"),
					corev1.ResourceCPU:    resource.MustParse("100m"),
				},
			},
		},
		{
			name:      "Leaves out unset fields",
			component: getContainerComponent("1Gi", "", "", ""),
			expected: &corev1.ResourceRequirements{
				Limits:   corev1.ResourceList{corev1.ResourceMemory: resource.MustParse("1Gi")},
				Requests: corev1.ResourceList{},
			},
		},
		{
			name:      "Returns error when cannot parse memory limit",
			component: getContainerComponent("test", "100Mi", "1000m", "100m"),
			errRegexp: "failed to parse memory limit for container component tools.*",
		},
		{
			name:      "Returns error when cannot parse memory request",
			component: getContainerComponent("1000Mi", "test", "1000m", "100m"),
			errRegexp: "failed to parse memory request for container component tools.*",
		},
		{
			name:      "Returns error when cannot parse cpu limit",
			component: getContainerComponent("1000Mi", "100Mi", "test", "100m"),
			errRegexp: "failed to parse CPU limit for container component tools.*",
		},
		{
			name:      "Returns error when cannot parse cpu request",
			component: getContainerComponent("1000Mi", "100Mi", "1000m", "test"),
			errRegexp: "failed to parse CPU request for container component tools.*",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := ParseContainerResources(tt.component.Name, tt.component.Container)
			if tt.errRegexp != "" {
				assert.Regexp(t, tt.errRegexp, err)
				return
			}
			if assert.NoError(t, err) {
				assert.True(t, tt.expected.Limits.Memory().Equal(*actual.Limits.Memory()))
				assert.True(t, tt.expected.Limits.Cpu().Equal(*actual.Limits.Cpu()))
				assert.True(t, tt.expected.Requests.Memory().Equal(*actual.Requests.Memory()))
				assert.True(t, tt.expected.Requests.Cpu().Equal(*actual.Requests.Cpu()))
				assert.Len(t, actual.Limits, len(tt.expected.Limits))
				assert.Len(t, actual.Requests, len(tt.expected.Requests))
			}
		})
	}
}

func TestValidateComponent(t *testing.T) {
	tests := []struct {
		name      string
		component dw.Component
		errRegexp string
	}{
		{
			name:      "Valid container",
			component: getContainerComponent("1Gi", "512Mi", "1", "100m"),
		},
		{
			name:      "Request equal to limit",
			component: getContainerComponent("1Gi", "1024Mi", "", ""),
		},
		{
			name:      "Memory request exceeds limit",
			component: getContainerComponent("512Mi", "1Gi", "", ""),
			errRegexp: `memory request \(1Gi\) of container component tools exceeds its limit \(512Mi\)`,
		},
		{
			name:      "CPU request exceeds limit",
			component: getContainerComponent("", "", "500m", "1"),
			errRegexp: `cpu request \(1\) of container component tools exceeds its limit \(500m\)`,
		},
		{
			name:      "Invalid container quantity",
			component: getContainerComponent("lots", "", "", ""),
			errRegexp: "failed to parse memory limit for container component tools.*",
		},
		{
			name: "Valid volume",
			component: dw.Component{Name: "m2", ComponentUnion: dw.ComponentUnion{
				Volume: &dw.VolumeComponent{Volume: dw.Volume{Size: "1Gi"}},
			}},
		},
		{
			name: "Invalid volume size",
			component: dw.Component{Name: "m2", ComponentUnion: dw.ComponentUnion{
				Volume: &dw.VolumeComponent{Volume: dw.Volume{Size: "big"}},
			}},
			errRegexp: "failed to parse size for volume component m2.*",
		},
		{
			name: "Other component types are not checked",
			component: dw.Component{Name: "deploy", ComponentUnion: dw.ComponentUnion{
				Kubernetes: &dw.KubernetesComponent{},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComponent(tt.component)
			if tt.errRegexp != "" {
				assert.Regexp(t, tt.errRegexp, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
