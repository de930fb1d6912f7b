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

// Package convert converts devfiles into DevWorkspaces and reconstructs the devfile a DevWorkspace was created from.
package convert

import (
	"fmt"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/che-incubator/devworkspace-factory/pkg/common"
	"github.com/che-incubator/devworkspace-factory/pkg/constants"
	"github.com/che-incubator/devworkspace-factory/pkg/library/defaults"
	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
	"github.com/che-incubator/devworkspace-factory/pkg/library/flatten"
	"github.com/che-incubator/devworkspace-factory/pkg/library/storage"
	"github.com/che-incubator/devworkspace-factory/pkg/metrics"
)

var log = logf.Log.WithName("convert")

const devWorkspaceKind = "DevWorkspace"

type Options struct {
	// DefaultNamespace is used when the devfile does not set metadata.namespace
	DefaultNamespace string
	// RoutingClass is set as spec.routingClass of the DevWorkspace
	RoutingClass string
	// Started is set as spec.started of the DevWorkspace
	Started bool
	// ParentResolver, if set, is used to merge the parent of the devfile into the DevWorkspace template. Otherwise
	// the parent reference is kept in the template and flattened by the DevWorkspace controller.
	ParentResolver *flatten.ResolverTools
	// DefaultComponents are used when the devfile neither declares components nor has a parent. They are only
	// added to the DevWorkspace, the stored devfile is left as is.
	DefaultComponents defaults.Components
}

// DevfileToDevWorkspace builds the DevWorkspace for a 2.x devfile. The complete devfile is stored in the
// che.eclipse.org/devfile annotation of the DevWorkspace so that it can be reconstructed by DevWorkspaceToDevfile.
func DevfileToDevWorkspace(document *devfile.Document, options Options) (*dw.DevWorkspace, error) {
	if !document.IsV2() {
		return nil, fmt.Errorf("devfile with schemaVersion %q cannot be converted to a DevWorkspace", document.SchemaVersion())
	}
	d := document.Devfile()
	if err := devfile.Validate(d); err != nil {
		return nil, fmt.Errorf("invalid devfile: %w", err)
	}
	originDevfile, err := devfile.Dump(d)
	if err != nil {
		return nil, err
	}

	template := d.DevWorkspaceTemplateSpec.DeepCopy()
	if options.ParentResolver != nil && !flatten.IsFlattened(template) {
		template, err = flatten.ResolveDevWorkspace(template, *options.ParentResolver)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve parent of devfile: %w", err)
		}
	}
	if defaults.NeedsDefaultComponents(template, options.DefaultComponents) {
		defaults.ApplyDefaultComponents(template, options.DefaultComponents)
	}
	if err := storage.ApplyStorageType(d, template); err != nil {
		return nil, err
	}

	annotations, err := devfile.GetMetadataAnnotations(d.Metadata.Attributes)
	if err != nil {
		return nil, err
	}
	if annotations == nil {
		annotations = map[string]string{}
	}
	annotations[constants.DevWorkspaceDevfileAnnotation] = originDevfile

	namespace := d.Metadata.Namespace
	if namespace == "" {
		namespace = options.DefaultNamespace
	}

	workspace := &dw.DevWorkspace{
		TypeMeta: metav1.TypeMeta{
			Kind:       devWorkspaceKind,
			APIVersion: dw.SchemeGroupVersion.String(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:         d.Metadata.Name,
			GenerateName: d.Metadata.GenerateName,
			Namespace:    namespace,
			Annotations:  annotations,
		},
		Spec: dw.DevWorkspaceSpec{
			Started:      options.Started,
			RoutingClass: options.RoutingClass,
			Template:     *template,
		},
	}
	if workspace.Name == "" && workspace.GenerateName == "" {
		workspace.GenerateName = defaultGenerateName(template)
	}
	return workspace, nil
}

func defaultGenerateName(template *dw.DevWorkspaceTemplateSpec) string {
	if len(template.Projects) > 0 {
		return common.GenerateName(template.Projects[0].Name)
	}
	return common.GenerateName("")
}

// DevWorkspaceToDevfile reconstructs the devfile a DevWorkspace was created from. The devfile is read from the
// che.eclipse.org/devfile annotation rather than from the template, which may have been changed by the
// DevWorkspace controller. If the annotation does not hold a 2.x devfile, an empty devfile is returned. The devfile
// source annotation is removed from the result. The empty devfile carries nothing but the schema version, so the
// storage type of the template is not restored onto it.
func DevWorkspaceToDevfile(workspace *dw.DevWorkspace) *devfile.Devfile {
	fellBack := false
	d := devfile.Parse(workspace.Annotations[constants.DevWorkspaceDevfileAnnotation]).OrElse(func(err error) *devfile.Devfile {
		log.V(1).Info("Failed to parse the origin devfile. The target object is not devfile V2.",
			"devworkspace", workspace.Name, "namespace", workspace.Namespace, "reason", err.Error())
		metrics.ReconstructionFellBack()
		fellBack = true
		return devfile.Skeleton()
	})
	if fellBack {
		return d
	}

	attrs, err := devfile.RemoveMetadataAnnotation(d.Metadata.Attributes, constants.DevfileSourceAnnotation)
	if err != nil {
		log.V(1).Info("Failed to remove devfile source annotation", "devworkspace", workspace.Name, "reason", err.Error())
	} else {
		d.Metadata.Attributes = attrs
	}

	storage.RestoreStorageType(d, &workspace.Spec.Template)
	return d
}
