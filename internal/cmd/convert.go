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
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/che-incubator/devworkspace-factory/pkg/library/convert"
	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
	"github.com/che-incubator/devworkspace-factory/pkg/library/flatten"
	"github.com/che-incubator/devworkspace-factory/pkg/library/trust"
)

type convertFlags struct {
	location  string
	namespace string
	started   bool
	flatten   bool
	trusted   bool
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.location, "location", "", "resolve the devfile from a factory location instead of reading a file")
	cmd.Flags().StringVarP(&f.namespace, "namespace", "n", "", "namespace of the DevWorkspace if the devfile does not set one (default from DEVWORKSPACE_NAMESPACE)")
	cmd.Flags().BoolVar(&f.started, "started", true, "create the DevWorkspace in started state")
	cmd.Flags().BoolVar(&f.flatten, "flatten", false, "merge the parent of the devfile into the DevWorkspace")
	cmd.Flags().BoolVar(&f.trusted, "trust", false, "use the devfile of the location even if the repository is not a trusted source")
}

func (f *convertFlags) validateArgs(args []string) error {
	if f.location != "" && len(args) > 0 {
		return fmt.Errorf("a devfile path cannot be used together with --location")
	}
	if f.location == "" && len(args) != 1 {
		return fmt.Errorf("a devfile path (or - for stdin) or --location is required")
	}
	return nil
}

// loadDocument reads the devfile from the path in args, or resolves it from the factory location. A devfile
// resolved from a repository that is not a trusted source is only used when --trust is set.
func (o *rootOptions) loadDocument(cmd *cobra.Command, flags *convertFlags, args []string) (*devfile.Document, error) {
	if flags.location == "" {
		return readDocument(cmd, args[0])
	}
	if !flags.trusted && !trust.IsTrustedRepo(o.cfg.TrustedSources, flags.location) {
		return nil, fmt.Errorf("repository %s is not a trusted source, use --trust to continue", flags.location)
	}
	factoryClient, err := o.factoryClient()
	if err != nil {
		return nil, err
	}
	document, _, err := factoryClient.ResolveDevfile(cmd.Context(), flags.location)
	return document, err
}

func (o *rootOptions) toDevWorkspace(cmd *cobra.Command, flags *convertFlags, args []string, k8sClient client.Client) (*dw.DevWorkspace, error) {
	document, err := o.loadDocument(cmd, flags, args)
	if err != nil {
		return nil, err
	}
	options := convert.Options{
		DefaultNamespace:  o.cfg.DevWorkspaceNamespace,
		RoutingClass:      o.cfg.RoutingClass,
		Started:           flags.started,
		DefaultComponents: o.cfg.DefaultComponents,
	}
	if flags.namespace != "" {
		options.DefaultNamespace = flags.namespace
	}
	if flags.flatten {
		options.ParentResolver = &flatten.ResolverTools{
			Context:            cmd.Context(),
			K8sClient:          k8sClient,
			HttpClient:         o.httpClient,
			InstanceNamespace:  options.DefaultNamespace,
			DefaultRegistryURL: o.cfg.DevfileRegistryURL,
		}
	}
	return convert.DevfileToDevWorkspace(document, options)
}

func newConvertCommand(o *rootOptions) *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert [DEVFILE]",
		Short: "Convert a devfile to a DevWorkspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validateArgs(args); err != nil {
				return err
			}
			workspace, err := o.toDevWorkspace(cmd, flags, args, nil)
			if err != nil {
				return err
			}
			return writeYAML(cmd, workspace)
		},
	}
	flags.register(cmd)
	return cmd
}
