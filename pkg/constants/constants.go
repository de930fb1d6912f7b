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

// Package constants defines constant values used throughout the devworkspace factory
package constants

// Devfile schema versions
const (
	// SupportedDevfileSchemaVersion is the schema version assigned to devfiles that are reconstructed
	// without any usable origin content.
	SupportedDevfileSchemaVersion = "2.1.0"

	// TopLevelAttributesSchemaVersion is the first devfile schema version that supports top-level attributes.
	// Older 2.x devfiles keep attributes under metadata.attributes.
	TopLevelAttributesSchemaVersion = "2.1.0"

	// LegacySchemaVersionPrefix marks devfiles in the 1.x format, which are never converted structurally.
	LegacySchemaVersionPrefix = "1."
)

// Annotations and attributes
const (
	// DevWorkspaceDevfileAnnotation is the DevWorkspace annotation storing the devfile the DevWorkspace was created
	// from, serialized as YAML.
	DevWorkspaceDevfileAnnotation = "che.eclipse.org/devfile"

	// DevfileSourceAnnotation describes where a devfile was loaded from: either an scm repository or a plain URL.
	DevfileSourceAnnotation = "che.eclipse.org/devfile-source"

	// DevWorkspaceMetadataAnnotationsAttribute is the devfile metadata attribute holding annotations that
	// are applied to the DevWorkspace created from the devfile.
	DevWorkspaceMetadataAnnotationsAttribute = "dw.metadata.annotations"

	// DevWorkspaceStorageTypeAttribute defines the strategy used for provisioning storage for the workspace.
	DevWorkspaceStorageTypeAttribute = "controller.devfile.io/storage-type"
)

// Storage types
const (
	EphemeralStorageClassType    = "ephemeral"
	PerUserStorageClassType      = "per-user"
	PerWorkspaceStorageClassType = "per-workspace"
	AsyncStorageClassType        = "async"
)

// Factory flow
const (
	// DefaultRemoteName is the name of the git remote used for projects synthesized from a location.
	DefaultRemoteName = "origin"

	// EditorOverrideFile is the path of the file in a repository that overrides the workspace editor.
	EditorOverrideFile = ".che/che-editor.yaml"

	// LinkContentRelSuffix is appended to a file name to form the rel of the factory resolver link
	// serving its content.
	LinkContentRelSuffix = " content"

	// FactoryResolverPath is the path of the factory resolver endpoint, relative to the Che API endpoint.
	FactoryResolverPath = "/api/factory/resolver"

	// RegistryDevfilesPath is the path under a devfile registry where devfile stacks are served by id.
	RegistryDevfilesPath = "/devfiles/"

	// DefaultGenerateName is the generateName used for DevWorkspaces created from devfiles that define neither
	// a name nor projects.
	DefaultGenerateName = "workspace"
)
