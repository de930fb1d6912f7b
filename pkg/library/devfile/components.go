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

	"github.com/che-incubator/devworkspace-factory/pkg/library/resources"
)

// ComponentKind returns the type of a component. An error is returned if the component does not set exactly one
// component type.
func ComponentKind(component dw.Component) (dw.ComponentType, error) {
	var kind dw.ComponentType
	err := component.Visit(dw.ComponentUnionVisitor{
		Container:  func(*dw.ContainerComponent) error { kind = dw.ContainerComponentType; return nil },
		Kubernetes: func(*dw.KubernetesComponent) error { kind = dw.KubernetesComponentType; return nil },
		Openshift:  func(*dw.OpenshiftComponent) error { kind = dw.OpenshiftComponentType; return nil },
		Volume:     func(*dw.VolumeComponent) error { kind = dw.VolumeComponentType; return nil },
		Image:      func(*dw.ImageComponent) error { kind = dw.ImageComponentType; return nil },
		Plugin:     func(*dw.PluginComponent) error { kind = dw.PluginComponentType; return nil },
		Custom:     func(*dw.CustomComponent) error { kind = dw.CustomComponentType; return nil },
	})
	if err != nil {
		return "", fmt.Errorf("invalid component %s: %w", component.Name, err)
	}
	if kind == "" {
		return "", fmt.Errorf("component %s does not define a component type", component.Name)
	}
	return kind, nil
}

// CommandKind returns the type of a command. An error is returned if the command does not set exactly one
// command type.
func CommandKind(command dw.Command) (dw.CommandType, error) {
	var kind dw.CommandType
	err := command.Visit(dw.CommandUnionVisitor{
		Exec:      func(*dw.ExecCommand) error { kind = dw.ExecCommandType; return nil },
		Apply:     func(*dw.ApplyCommand) error { kind = dw.ApplyCommandType; return nil },
		Composite: func(*dw.CompositeCommand) error { kind = dw.CompositeCommandType; return nil },
		Custom:    func(*dw.CustomCommand) error { kind = dw.CustomCommandType; return nil },
	})
	if err != nil {
		return "", fmt.Errorf("invalid command %s: %w", command.Id, err)
	}
	if kind == "" {
		return "", fmt.Errorf("command %s does not define a command type", command.Id)
	}
	return kind, nil
}

// Validate checks that every component and command of the devfile is exactly one of its allowed types and that
// element names are unique and resource quantities are valid. References between elements are only checked for devfiles without a parent, as they may
// refer to elements of the parent.
func Validate(devfile *Devfile) error {
	componentNames := map[string]bool{}
	for _, component := range devfile.Components {
		if _, err := ComponentKind(component); err != nil {
			return err
		}
		if err := resources.ValidateComponent(component); err != nil {
			return err
		}
		if componentNames[component.Name] {
			return fmt.Errorf("duplicate component found in devfile: %s", component.Name)
		}
		componentNames[component.Name] = true
	}
	commandIds := map[string]bool{}
	for _, command := range devfile.Commands {
		if _, err := CommandKind(command); err != nil {
			return err
		}
		if commandIds[command.Id] {
			return fmt.Errorf("duplicate command found in devfile: %s", command.Id)
		}
		commandIds[command.Id] = true
	}
	projectNames := map[string]bool{}
	for _, project := range devfile.Projects {
		if projectNames[project.Name] {
			return fmt.Errorf("duplicate project found in devfile: %s", project.Name)
		}
		projectNames[project.Name] = true
	}
	if devfile.Parent != nil {
		return nil
	}
	return validateReferences(&devfile.DevWorkspaceTemplateSpecContent)
}
