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

// Package status summarizes the state of a DevWorkspace as shown to users.
package status

import (
	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"

	"github.com/che-incubator/devworkspace-factory/pkg/conditions"
)

type Phase string

const (
	PhaseStarting    Phase = "STARTING"
	PhaseRunning     Phase = "RUNNING"
	PhaseFailed      Phase = "FAILED"
	PhaseFailing     Phase = "FAILING"
	PhaseStopped     Phase = "STOPPED"
	PhaseStopping    Phase = "STOPPING"
	PhaseTerminating Phase = "TERMINATING"
)

// devWorkspaceStatusFailing is reported by the DevWorkspace controller while a failed workspace is being stopped.
const devWorkspaceStatusFailing dw.DevWorkspacePhase = "Failing"

// Info is the user-facing summary of a DevWorkspace status.
type Info struct {
	Phase          Phase  `json:"phase"`
	DevWorkspaceID string `json:"devworkspaceId,omitempty"`
	MainURL        string `json:"mainUrl,omitempty"`
	Message        string `json:"message,omitempty"`
	Warning        string `json:"warning,omitempty"`
}

// GetPhase maps the phase reported by the DevWorkspace controller to the phase shown to users.
func GetPhase(workspace *dw.DevWorkspace) Phase {
	if workspace.DeletionTimestamp != nil {
		return PhaseTerminating
	}
	switch workspace.Status.Phase {
	case dw.DevWorkspaceStatusStarting:
		return PhaseStarting
	case dw.DevWorkspaceStatusRunning:
		return PhaseRunning
	case dw.DevWorkspaceStatusStopping:
		return PhaseStopping
	case dw.DevWorkspaceStatusStopped:
		return PhaseStopped
	case devWorkspaceStatusFailing:
		return PhaseFailing
	case dw.DevWorkspaceStatusFailed, dw.DevWorkspaceStatusError:
		if workspace.Spec.Started {
			return PhaseFailing
		}
		return PhaseFailed
	}
	// No phase reported yet
	if workspace.Spec.Started {
		return PhaseStarting
	}
	return PhaseStopped
}

// GetInfo summarizes the status of a DevWorkspace.
func GetInfo(workspace *dw.DevWorkspace) Info {
	info := Info{
		Phase:          GetPhase(workspace),
		DevWorkspaceID: workspace.Status.DevWorkspaceId,
		MainURL:        workspace.Status.MainUrl,
		Message:        workspace.Status.Message,
		Warning:        conditions.GetWarning(workspace.Status.Conditions),
	}
	if info.Message == "" && (info.Phase == PhaseFailed || info.Phase == PhaseFailing) {
		info.Message = conditions.GetFailureMessage(workspace.Status.Conditions)
	}
	return info
}

// IsActive returns true if the DevWorkspace is running or on its way to running.
func IsActive(phase Phase) bool {
	return phase == PhaseStarting || phase == PhaseRunning
}
