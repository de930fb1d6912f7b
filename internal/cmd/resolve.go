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

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
)

func newResolveCommand(o *rootOptions) *cobra.Command {
	var withEditor bool
	cmd := &cobra.Command{
		Use:   "resolve LOCATION",
		Short: "Resolve a factory location to the devfile a workspace would be created from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factoryClient, err := o.factoryClient()
			if err != nil {
				return err
			}
			document, resolver, err := factoryClient.ResolveDevfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := writeYAML(cmd, document); err != nil {
				return err
			}
			if !withEditor {
				return nil
			}
			editor, err := factoryClient.FetchEditorOverride(cmd.Context(), resolver)
			if err != nil {
				return err
			}
			if editor == nil {
				logr.FromContextOrDiscard(cmd.Context()).Info(fmt.Sprintf("Repository does not provide %s", constants.EditorOverrideFile))
				return nil
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "---"); err != nil {
				return err
			}
			return writeYAML(cmd, editor)
		},
	}
	cmd.Flags().BoolVar(&withEditor, "editor", false, "also print the editor the repository declares in "+constants.EditorOverrideFile)
	return cmd
}
