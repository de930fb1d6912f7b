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

// Package cmd implements the devworkspace-factory command line.
package cmd

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/che-incubator/devworkspace-factory/pkg/config"
	"github.com/che-incubator/devworkspace-factory/pkg/library/factory"
	"github.com/che-incubator/devworkspace-factory/pkg/library/workspace"
)

// ClientFactory returns a client for the cluster DevWorkspaces are submitted to.
type ClientFactory func() (client.Client, error)

type rootOptions struct {
	cfg         *config.Config
	newClient   ClientFactory
	httpClient  *http.Client
	metricsFile string
}

// NewRootCommand builds the devworkspace-factory command tree. If newClient is nil, a client for the cluster of the
// current kubeconfig is used. Commands log to the logger of the context they are executed with.
func NewRootCommand(cfg *config.Config, newClient ClientFactory) *cobra.Command {
	if newClient == nil {
		newClient = NewKubernetesClient
	}
	o := &rootOptions{
		cfg:        cfg,
		newClient:  newClient,
		httpClient: http.DefaultClient,
	}
	rootCmd := &cobra.Command{
		Use:           "devworkspace-factory",
		Short:         "Turn devfiles and factory locations into DevWorkspaces, and back",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.metricsFile == "" {
				return nil
			}
			if err := prometheus.WriteToTextfile(o.metricsFile, ctrlmetrics.Registry); err != nil {
				return fmt.Errorf("failed to write metrics to %s: %w", o.metricsFile, err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&o.metricsFile, "metrics-file", "", "write metrics in Prometheus text format to this file on exit")

	rootCmd.AddCommand(
		newResolveCommand(o),
		newConvertCommand(o),
		newReconstructCommand(o),
		newTrustCommand(o),
		newApplyCommand(o),
		newStatusCommand(o),
		newSetStartedCommand(o, true),
		newSetStartedCommand(o, false),
	)
	return rootCmd
}

// NewKubernetesClient returns a client for the cluster of the current kubeconfig or in-cluster configuration.
func NewKubernetesClient() (client.Client, error) {
	restConfig, err := ctrl.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read cluster configuration: %w", err)
	}
	return client.New(restConfig, client.Options{Scheme: workspace.NewScheme()})
}

func (o *rootOptions) factoryClient() (*factory.Client, error) {
	if o.cfg.CheAPIEndpoint == "" {
		return nil, fmt.Errorf("CHE_API_ENDPOINT must be set to resolve factory locations")
	}
	return factory.NewClient(o.cfg.CheAPIEndpoint, o.httpClient), nil
}
