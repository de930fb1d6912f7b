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

// Package conditions reads the conditions the DevWorkspace controller reports in DevWorkspace status.
package conditions

import (
	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	corev1 "k8s.io/api/core/v1"
)

const (
	Started              dw.DevWorkspaceConditionType = "Started"
	DevWorkspaceResolved dw.DevWorkspaceConditionType = "DevWorkspaceResolved"
	StorageReady         dw.DevWorkspaceConditionType = "StorageReady"
	DeploymentReady      dw.DevWorkspaceConditionType = "DeploymentReady"
	DevWorkspaceWarning  dw.DevWorkspaceConditionType = "DevWorkspaceWarning"
)

func GetConditionByType(conditions []dw.DevWorkspaceCondition, t dw.DevWorkspaceConditionType) *dw.DevWorkspaceCondition {
	for _, condition := range conditions {
		if condition.Type == t {
			return &condition
		}
	}
	return nil
}

// GetFailureMessage returns the message of the first condition that is not satisfied, or an empty string if all
// conditions are satisfied or none explains why.
func GetFailureMessage(conditions []dw.DevWorkspaceCondition) string {
	for _, condition := range conditions {
		if condition.Type == DevWorkspaceWarning {
			continue
		}
		if condition.Status == corev1.ConditionFalse && condition.Message != "" {
			return condition.Message
		}
	}
	return ""
}

// GetWarning returns the warning reported for the DevWorkspace, if any.
func GetWarning(conditions []dw.DevWorkspaceCondition) string {
	warning := GetConditionByType(conditions, DevWorkspaceWarning)
	if warning == nil || warning.Status != corev1.ConditionTrue {
		return ""
	}
	return warning.Message
}
