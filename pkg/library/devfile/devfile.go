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

// Package devfile defines the devfile documents handled by the factory flow and helpers for reading and writing
// the attributes they carry.
package devfile

import (
	"encoding/json"
	"fmt"
	"strings"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/api/v2/pkg/attributes"
	devfilepkg "github.com/devfile/api/v2/pkg/devfile"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
)

// Devfile is a devfile with schema version 2.x.
type Devfile struct {
	SchemaVersion string   `json:"schemaVersion"`
	Metadata      Metadata `json:"metadata,omitempty"`

	dw.DevWorkspaceTemplateSpec `json:",inline"`
}

// Metadata extends the devfile metadata with the object metadata fields understood when creating a DevWorkspace.
type Metadata struct {
	devfilepkg.DevfileMetadata `json:",inline"`

	// Namespace the DevWorkspace should be created in
	// +optional
	Namespace string `json:"namespace,omitempty"`

	// GenerateName is used as the DevWorkspace generateName when no name is set
	// +optional
	GenerateName string `json:"generateName,omitempty"`
}

// Skeleton returns an empty devfile with the currently supported schema version.
func Skeleton() *Devfile {
	return &Devfile{SchemaVersion: constants.SupportedDevfileSchemaVersion}
}

// IsLegacySchemaVersion returns true for devfiles in the 1.x format, including devfiles that do not declare a
// schemaVersion at all.
func IsLegacySchemaVersion(schemaVersion string) bool {
	return schemaVersion == "" || schemaVersion == "1" || strings.HasPrefix(schemaVersion, constants.LegacySchemaVersionPrefix)
}

// DeepCopy returns a copy of the devfile that shares no memory with the original.
func (in *Devfile) DeepCopy() *Devfile {
	if in == nil {
		return nil
	}
	out := &Devfile{
		SchemaVersion:            in.SchemaVersion,
		Metadata:                 in.Metadata,
		DevWorkspaceTemplateSpec: *in.DevWorkspaceTemplateSpec.DeepCopy(),
	}
	out.Metadata.Attributes = copyAttributes(in.Metadata.Attributes)
	if in.Metadata.Tags != nil {
		out.Metadata.Tags = append([]string{}, in.Metadata.Tags...)
	}
	if in.Metadata.Architectures != nil {
		out.Metadata.Architectures = append(out.Metadata.Architectures[:0:0], in.Metadata.Architectures...)
	}
	return out
}

func copyAttributes(in attributes.Attributes) attributes.Attributes {
	if in == nil {
		return nil
	}
	out := make(attributes.Attributes, len(in))
	for key, value := range in {
		out[key] = *value.DeepCopy()
	}
	return out
}

// Document is a devfile of any supported schema version. Legacy (1.x) devfiles are kept as the raw object they
// were decoded from and are never transformed; 2.x devfiles are decoded into a Devfile.
type Document struct {
	legacy  map[string]interface{}
	devfile *Devfile
}

// NewDocument wraps a 2.x devfile.
func NewDocument(devfile *Devfile) *Document {
	return &Document{devfile: devfile}
}

// NewLegacyDocument wraps the raw content of a 1.x devfile.
func NewLegacyDocument(content map[string]interface{}) *Document {
	return &Document{legacy: content}
}

// IsV2 returns true if the document holds a 2.x devfile.
func (d *Document) IsV2() bool {
	return d != nil && d.devfile != nil
}

// Devfile returns the 2.x devfile held by the document, or nil for legacy documents.
func (d *Document) Devfile() *Devfile {
	if d == nil {
		return nil
	}
	return d.devfile
}

// Legacy returns the raw content of a 1.x devfile, or nil for 2.x documents.
func (d *Document) Legacy() map[string]interface{} {
	if d == nil {
		return nil
	}
	return d.legacy
}

// SchemaVersion returns the schemaVersion declared by the document, if any.
func (d *Document) SchemaVersion() string {
	if d.IsV2() {
		return d.devfile.SchemaVersion
	}
	if d == nil {
		return ""
	}
	version, _ := d.legacy["schemaVersion"].(string)
	return version
}

func (d *Document) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("devfile is not an object: %w", err)
	}
	schemaVersion, _ := raw["schemaVersion"].(string)
	if IsLegacySchemaVersion(schemaVersion) {
		d.legacy = raw
		d.devfile = nil
		return nil
	}
	devfile := &Devfile{}
	if err := json.Unmarshal(data, devfile); err != nil {
		return fmt.Errorf("failed to decode devfile with schemaVersion %s: %w", schemaVersion, err)
	}
	d.devfile = devfile
	d.legacy = nil
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.devfile != nil {
		return json.Marshal(d.devfile)
	}
	if d.legacy == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.legacy)
}
