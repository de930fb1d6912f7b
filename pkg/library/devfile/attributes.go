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

package devfile

import (
	"fmt"

	"github.com/devfile/api/v2/pkg/attributes"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
)

// Well-known keys of the devfile metadata attributes:
//
//	dw.metadata.annotations:            # constants.DevWorkspaceMetadataAnnotationsAttribute
//	  che.eclipse.org/devfile-source: | # constants.DevfileSourceAnnotation
//	    scm:
//	      repo: https://github.com/eclipse-che/che-dashboard.git
//
// Entries of dw.metadata.annotations become annotations of the DevWorkspace created from the devfile. The wrapper
// attribute never exists without entries.

// GetMetadataAnnotations returns the annotations declared through the dw.metadata.annotations attribute. A nil map
// is returned when the attribute is not set.
func GetMetadataAnnotations(attrs attributes.Attributes) (map[string]string, error) {
	if !attrs.Exists(constants.DevWorkspaceMetadataAnnotationsAttribute) {
		return nil, nil
	}
	annotations := map[string]string{}
	if err := attrs.GetInto(constants.DevWorkspaceMetadataAnnotationsAttribute, &annotations); err != nil {
		return nil, fmt.Errorf("failed to read attribute %s: %w", constants.DevWorkspaceMetadataAnnotationsAttribute, err)
	}
	return annotations, nil
}

// GetMetadataAnnotation returns a single annotation declared through the dw.metadata.annotations attribute.
func GetMetadataAnnotation(attrs attributes.Attributes, key string) (value string, found bool, err error) {
	annotations, err := GetMetadataAnnotations(attrs)
	if err != nil {
		return "", false, err
	}
	value, found = annotations[key]
	return value, found, nil
}

// SetMetadataAnnotation stores an annotation under the dw.metadata.annotations attribute, creating the attributes
// and the wrapper attribute as needed. The updated attributes are returned.
func SetMetadataAnnotation(attrs attributes.Attributes, key, value string) (attributes.Attributes, error) {
	annotations, err := GetMetadataAnnotations(attrs)
	if err != nil {
		return attrs, err
	}
	if annotations == nil {
		annotations = map[string]string{}
	}
	annotations[key] = value
	return putMetadataAnnotations(attrs, annotations)
}

// RemoveMetadataAnnotation deletes an annotation from the dw.metadata.annotations attribute. The wrapper attribute is
// removed once it holds no entries, and nil is returned once the attributes are empty.
func RemoveMetadataAnnotation(attrs attributes.Attributes, key string) (attributes.Attributes, error) {
	annotations, err := GetMetadataAnnotations(attrs)
	if err != nil {
		return attrs, err
	}
	if _, ok := annotations[key]; !ok {
		return attrs, nil
	}
	delete(annotations, key)
	if len(annotations) > 0 {
		return putMetadataAnnotations(attrs, annotations)
	}
	delete(attrs, constants.DevWorkspaceMetadataAnnotationsAttribute)
	if len(attrs) == 0 {
		return nil, nil
	}
	return attrs, nil
}

func putMetadataAnnotations(attrs attributes.Attributes, annotations map[string]string) (attributes.Attributes, error) {
	if attrs == nil {
		attrs = attributes.Attributes{}
	}
	var err error
	attrs.Put(constants.DevWorkspaceMetadataAnnotationsAttribute, annotations, &err)
	if err != nil {
		return attrs, fmt.Errorf("failed to write attribute %s: %w", constants.DevWorkspaceMetadataAnnotationsAttribute, err)
	}
	return attrs, nil
}
