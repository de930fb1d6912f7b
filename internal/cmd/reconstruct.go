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
	"fmt"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-factory/pkg/library/convert"
)

func newReconstructCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconstruct DEVWORKSPACE",
		Short: "Print the devfile a DevWorkspace was created from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			workspace := &dw.DevWorkspace{}
			if err := yaml.Unmarshal(data, workspace); err != nil {
				return fmt.Errorf("failed to parse DevWorkspace %s: %w", args[0], err)
			}
			return writeYAML(cmd, convert.DevWorkspaceToDevfile(workspace))
		},
	}
}
