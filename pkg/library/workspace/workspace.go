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

// Package workspace submits converted DevWorkspaces to the cluster and manages their lifecycle.
package workspace

import (
	"context"
	"fmt"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	k8sErrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

var log = logf.Log.WithName("workspace")

// NewScheme returns a scheme that knows about core Kubernetes types and DevWorkspaces.
func NewScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(dw.AddToScheme(scheme))
	return scheme
}

// Create submits a DevWorkspace to the cluster and returns the object as stored by the API server. The object
// passed in is not modified.
func Create(ctx context.Context, c client.Client, workspace *dw.DevWorkspace) (*dw.DevWorkspace, error) {
	toCreate := workspace.DeepCopy()
	if toCreate.Name == "" && toCreate.GenerateName == "" {
		return nil, fmt.Errorf("DevWorkspace has neither a name nor a generateName")
	}
	if err := c.Create(ctx, toCreate); err != nil {
		if k8sErrors.IsAlreadyExists(err) {
			return nil, fmt.Errorf("DevWorkspace %s already exists in namespace %s: %w", toCreate.Name, toCreate.Namespace, err)
		}
		return nil, fmt.Errorf("failed to create DevWorkspace: %w", err)
	}
	log.Info("Created DevWorkspace", "name", toCreate.Name, "namespace", toCreate.Namespace)
	return toCreate, nil
}

// Get reads a DevWorkspace from the cluster.
func Get(ctx context.Context, c client.Client, namespace, name string) (*dw.DevWorkspace, error) {
	workspace := &dw.DevWorkspace{}
	if err := c.Get(ctx, client.ObjectKey{Namespace: namespace, Name: name}, workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

// SetStarted starts or stops a DevWorkspace by patching spec.started. Nothing is sent if the DevWorkspace is
// already in the requested state.
func SetStarted(ctx context.Context, c client.Client, workspace *dw.DevWorkspace, started bool) error {
	if workspace.Spec.Started == started {
		return nil
	}
	patch := client.MergeFrom(workspace.DeepCopy())
	workspace.Spec.Started = started
	if err := c.Patch(ctx, workspace, patch); err != nil {
		return fmt.Errorf("failed to update spec.started of DevWorkspace %s: %w", workspace.Name, err)
	}
	log.V(1).Info("Updated DevWorkspace", "name", workspace.Name, "started", started)
	return nil
}
