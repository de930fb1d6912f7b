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

package factory

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// DevfileSource is the content of the devfile source annotation. Exactly one of Scm and URL is set.
type DevfileSource struct {
	Scm *ScmSource `json:"scm,omitempty"`
	URL *URLSource `json:"url,omitempty"`
}

// ScmSource locates a devfile in a git repository.
type ScmSource struct {
	Repo     string `json:"repo"`
	Revision string `json:"revision,omitempty"`
	FileName string `json:"fileName,omitempty"`
}

// URLSource locates a devfile that was loaded from a plain URL.
type URLSource struct {
	Location string `json:"location"`
}

func (s *DevfileSource) validate() error {
	switch {
	case s.Scm != nil && s.URL != nil:
		return fmt.Errorf("devfile source cannot be both scm and url")
	case s.Scm == nil && s.URL == nil:
		return fmt.Errorf("devfile source must be either scm or url")
	}
	return nil
}

// Dump serializes the devfile source as YAML.
func (s *DevfileSource) Dump() (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	bytes, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to serialize devfile source: %w", err)
	}
	return string(bytes), nil
}

// ParseDevfileSource reads the content of a devfile source annotation.
func ParseDevfileSource(text string) (*DevfileSource, error) {
	source := &DevfileSource{}
	if err := yaml.UnmarshalStrict([]byte(text), source); err != nil {
		return nil, fmt.Errorf("failed to parse devfile source: %w", err)
	}
	if err := source.validate(); err != nil {
		return nil, err
	}
	return source, nil
}
