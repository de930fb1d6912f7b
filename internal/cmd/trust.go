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

	"github.com/spf13/cobra"

	"github.com/che-incubator/devworkspace-factory/pkg/library/trust"
)

func newTrustCommand(o *rootOptions) *cobra.Command {
	var sources string
	cmd := &cobra.Command{
		Use:   "trust URL",
		Short: "Check whether a repository is a trusted source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trusted := o.cfg.TrustedSources
			if cmd.Flags().Changed("sources") {
				trusted = trust.ParseSources(sources)
			}
			result := "untrusted"
			if trust.IsTrustedRepo(trusted, args[0]) {
				result = "trusted"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
	cmd.Flags().StringVar(&sources, "sources", "", "trusted sources to check against instead of CHE_TRUSTED_SOURCES")
	return cmd
}
