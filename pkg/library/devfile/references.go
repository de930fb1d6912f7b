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

package devfile

import (
	"fmt"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
)

// validateReferences checks that commands refer to components, and events and composite commands refer to commands,
// that are defined in the devfile.
func validateReferences(content *dw.DevWorkspaceTemplateSpecContent) error {
	componentNames := map[string]bool{}
	for _, component := range content.Components {
		componentNames[component.Name] = true
	}
	commandIds := map[string]bool{}
	for _, command := range content.Commands {
		commandIds[command.Id] = true
	}

	for _, command := range content.Commands {
		switch {
		case command.Exec != nil:
			if !componentNames[command.Exec.Component] {
				return fmt.Errorf("command %s refers to undefined component %s", command.Id, command.Exec.Component)
			}
		case command.Apply != nil:
			if !componentNames[command.Apply.Component] {
				return fmt.Errorf("command %s refers to undefined component %s", command.Id, command.Apply.Component)
			}
		case command.Composite != nil:
			for _, subCommand := range command.Composite.Commands {
				if !commandIds[subCommand] {
					return fmt.Errorf("composite command %s refers to undefined command %s", command.Id, subCommand)
				}
			}
		}
	}

	if content.Events == nil {
		return nil
	}
	for _, event := range []struct {
		name string
		ids  []string
	}{
		{"preStart", content.Events.PreStart},
		{"postStart", content.Events.PostStart},
		{"preStop", content.Events.PreStop},
		{"postStop", content.Events.PostStop},
	} {
		for _, id := range event.ids {
			if !commandIds[id] {
				return fmt.Errorf("%s event refers to undefined command %s", event.name, id)
			}
		}
	}
	return nil
}
