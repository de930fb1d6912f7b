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

	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-factory/pkg/dwerrors"
)

// Dump serializes a devfile as YAML text, as stored in the DevWorkspace origin devfile annotation.
func Dump(devfile *Devfile) (string, error) {
	if devfile == nil {
		return "", fmt.Errorf("cannot serialize empty devfile")
	}
	bytes, err := yaml.Marshal(devfile)
	if err != nil {
		return "", fmt.Errorf("failed to serialize devfile: %w", err)
	}
	return string(bytes), nil
}

// ParseResult is the outcome of parsing devfile text. Callers either check Get() or supply a fallback through
// OrElse.
type ParseResult struct {
	devfile *Devfile
	err     error
}

// Get returns the parsed devfile, or an *dwerrors.AnnotationParseError if the text was not a 2.x devfile.
func (r ParseResult) Get() (*Devfile, error) {
	return r.devfile, r.err
}

// OrElse returns the parsed devfile, or the result of fallback if parsing failed.
func (r ParseResult) OrElse(fallback func(err error) *Devfile) *Devfile {
	if r.err != nil {
		return fallback(r.err)
	}
	return r.devfile
}

// Parse reads devfile text. The text must hold an object with both a schemaVersion and metadata, and the
// schemaVersion must not be a legacy one.
func Parse(text string) ParseResult {
	if text == "" {
		return ParseResult{err: &dwerrors.AnnotationParseError{Message: "devfile content is empty"}}
	}
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return ParseResult{err: &dwerrors.AnnotationParseError{Message: "devfile content is not a YAML object", Err: err}}
	}
	if !isDevfileV2(raw) {
		return ParseResult{err: &dwerrors.AnnotationParseError{Message: "devfile content is not a devfile V2"}}
	}
	devfile := &Devfile{}
	if err := yaml.Unmarshal([]byte(text), devfile); err != nil {
		return ParseResult{err: &dwerrors.AnnotationParseError{Message: "failed to decode devfile", Err: err}}
	}
	return ParseResult{devfile: devfile}
}

func isDevfileV2(raw map[string]interface{}) bool {
	schemaVersion, ok := raw["schemaVersion"].(string)
	if !ok || IsLegacySchemaVersion(schemaVersion) {
		return false
	}
	_, hasMetadata := raw["metadata"]
	return hasMetadata
}
