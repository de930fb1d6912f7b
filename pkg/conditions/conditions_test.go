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

package conditions

import (
	"testing"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
)

var testConditions = []dw.DevWorkspaceCondition{
	{Type: DevWorkspaceResolved, Status: corev1.ConditionTrue, Message: "Resolved plugins and parents"},
	{Type: DevWorkspaceWarning, Status: corev1.ConditionTrue, Message: "Deprecated plugin in use"},
	{Type: StorageReady, Status: corev1.ConditionFalse},
	{Type: DeploymentReady, Status: corev1.ConditionFalse, Message: "Container tools has state ImagePullBackOff"},
}

func TestGetConditionByType(t *testing.T) {
	condition := GetConditionByType(testConditions, StorageReady)
	if assert.NotNil(t, condition) {
		assert.Equal(t, corev1.ConditionFalse, condition.Status)
	}
	assert.Nil(t, GetConditionByType(testConditions, Started))
}

func TestGetFailureMessage(t *testing.T) {
	assert.Equal(t, "Container tools has state ImagePullBackOff", GetFailureMessage(testConditions))
	assert.Empty(t, GetFailureMessage(testConditions[:3]))
}

func TestGetWarning(t *testing.T) {
	assert.Equal(t, "Deprecated plugin in use", GetWarning(testConditions))
	assert.Empty(t, GetWarning(testConditions[:1]))
	assert.Empty(t, GetWarning([]dw.DevWorkspaceCondition{
		{Type: DevWorkspaceWarning, Status: corev1.ConditionFalse, Message: "stale"},
	}))
}
