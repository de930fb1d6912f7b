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

// Package storage maps the storage strategy declared by a devfile onto the DevWorkspace template created from it,
// and back.
//
// A devfile declares its storage type through the controller.devfile.io/storage-type attribute. Devfiles with
// schemaVersion 2.1.0 or later use top-level attributes, older 2.x devfiles use metadata.attributes. Persistent
// storage is the default and is never written back to a devfile.
package storage

import (
	"fmt"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/api/v2/pkg/attributes"
	"golang.org/x/mod/semver"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
)

var supportedStorageTypes = map[string]bool{
	constants.EphemeralStorageClassType:    true,
	constants.PerUserStorageClassType:      true,
	constants.PerWorkspaceStorageClassType: true,
	constants.AsyncStorageClassType:        true,
}

// UsesTopLevelAttributes returns true if devfiles with the given schemaVersion keep attributes at the top level
// rather than in metadata.attributes.
func UsesTopLevelAttributes(schemaVersion string) bool {
	return semver.Compare("v"+schemaVersion, "v"+constants.TopLevelAttributesSchemaVersion) >= 0
}

// GetStorageType returns the storage type declared by a devfile, or an empty string if the devfile does not
// declare one. Top-level attributes take precedence over metadata attributes.
func GetStorageType(d *devfile.Devfile) (string, error) {
	for _, attrs := range []attributes.Attributes{d.Attributes, d.Metadata.Attributes} {
		storageType, err := readStorageType(attrs)
		if err != nil || storageType != "" {
			return storageType, err
		}
	}
	return "", nil
}

// ApplyStorageType copies the storage type declared by a devfile to the attributes of the DevWorkspace template.
func ApplyStorageType(d *devfile.Devfile, template *dw.DevWorkspaceTemplateSpec) error {
	storageType, err := GetStorageType(d)
	if err != nil || storageType == "" {
		return err
	}
	if template.Attributes == nil {
		template.Attributes = attributes.Attributes{}
	}
	template.Attributes.PutString(constants.DevWorkspaceStorageTypeAttribute, storageType)
	return nil
}

// IsEphemeral returns true if the DevWorkspace template requests ephemeral storage.
func IsEphemeral(template *dw.DevWorkspaceTemplateSpec) bool {
	storageType, err := readStorageType(template.Attributes)
	return err == nil && storageType == constants.EphemeralStorageClassType
}

// RestoreStorageType records ephemeral storage of a DevWorkspace template in a devfile reconstructed from it. The
// devfile is left unchanged if the template uses any other storage type, or if the devfile already declares one.
func RestoreStorageType(d *devfile.Devfile, template *dw.DevWorkspaceTemplateSpec) {
	if !IsEphemeral(template) {
		return
	}
	if declared, err := GetStorageType(d); err != nil || declared != "" {
		return
	}
	if UsesTopLevelAttributes(d.SchemaVersion) {
		if d.Attributes == nil {
			d.Attributes = attributes.Attributes{}
		}
		d.Attributes.PutString(constants.DevWorkspaceStorageTypeAttribute, constants.EphemeralStorageClassType)
		return
	}
	if d.Metadata.Attributes == nil {
		d.Metadata.Attributes = attributes.Attributes{}
	}
	d.Metadata.Attributes.PutString(constants.DevWorkspaceStorageTypeAttribute, constants.EphemeralStorageClassType)
}

func readStorageType(attrs attributes.Attributes) (string, error) {
	if !attrs.Exists(constants.DevWorkspaceStorageTypeAttribute) {
		return "", nil
	}
	var err error
	storageType := attrs.GetString(constants.DevWorkspaceStorageTypeAttribute, &err)
	if err != nil {
		return "", fmt.Errorf("failed to read attribute %s: %w", constants.DevWorkspaceStorageTypeAttribute, err)
	}
	if !supportedStorageTypes[storageType] {
		return "", fmt.Errorf("unsupported storage type %q, supported types are %s, %s, %s and %s", storageType,
			constants.EphemeralStorageClassType, constants.PerUserStorageClassType,
			constants.PerWorkspaceStorageClassType, constants.AsyncStorageClassType)
	}
	return storageType, nil
}
