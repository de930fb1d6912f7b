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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/che-incubator/devworkspace-factory/pkg/library/status"
	"github.com/che-incubator/devworkspace-factory/pkg/library/workspace"
)

type createdWorkspace struct {
	Name      string      `json:"name"`
	Namespace string      `json:"namespace"`
	Status    status.Info `json:"status"`
}

func newApplyCommand(o *rootOptions) *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "apply [DEVFILE]",
		Short: "Convert a devfile to a DevWorkspace and create it on the cluster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validateArgs(args); err != nil {
				return err
			}
			k8sClient, err := o.newClient()
			if err != nil {
				return err
			}
			devWorkspace, err := o.toDevWorkspace(cmd, flags, args, k8sClient)
			if err != nil {
				return err
			}
			created, err := workspace.Create(cmd.Context(), k8sClient, devWorkspace)
			if err != nil {
				return err
			}
			return writeYAML(cmd, createdWorkspace{
				Name:      created.Name,
				Namespace: created.Namespace,
				Status:    status.GetInfo(created),
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newStatusCommand(o *rootOptions) *cobra.Command {
	var namespace string
	cmd := &cobra.Command{
		Use:   "status NAME",
		Short: "Show the status of a DevWorkspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k8sClient, err := o.newClient()
			if err != nil {
				return err
			}
			if namespace == "" {
				namespace = o.cfg.DevWorkspaceNamespace
			}
			devWorkspace, err := workspace.Get(cmd.Context(), k8sClient, namespace, args[0])
			if err != nil {
				return err
			}
			return writeYAML(cmd, status.GetInfo(devWorkspace))
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace of the DevWorkspace (default from DEVWORKSPACE_NAMESPACE)")
	return cmd
}

func newSetStartedCommand(o *rootOptions, started bool) *cobra.Command {
	var namespace string
	use, short := "stop NAME", "Stop a DevWorkspace"
	if started {
		use, short = "start NAME", "Start a DevWorkspace"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k8sClient, err := o.newClient()
			if err != nil {
				return err
			}
			if namespace == "" {
				namespace = o.cfg.DevWorkspaceNamespace
			}
			devWorkspace, err := workspace.Get(cmd.Context(), k8sClient, namespace, args[0])
			if err != nil {
				return err
			}
			if err := workspace.SetStarted(cmd.Context(), k8sClient, devWorkspace, started); err != nil {
				return err
			}
			return writeYAML(cmd, status.GetInfo(devWorkspace))
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace of the DevWorkspace (default from DEVWORKSPACE_NAMESPACE)")
	return cmd
}
