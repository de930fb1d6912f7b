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

package network

import (
	"fmt"
	"io"
	"net/http"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-factory/pkg/dwerrors"
	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
)

type HTTPGetter interface {
	Get(location string) (*http.Response, error)
}

// FetchDevfile reads the devfile at location and returns its content as a DevWorkspace template. Only 2.x devfiles
// are accepted.
func FetchDevfile(location string, httpClient HTTPGetter) (*dw.DevWorkspaceTemplateSpec, error) {
	resp, err := httpClient.Get(location)
	if err != nil {
		return nil, &dwerrors.FetchError{URL: location, Err: err}
	}
	defer resp.Body.Close() // ignoring error because what would we even do?
	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read data from %s: %w", location, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &dwerrors.FetchError{URL: location, StatusCode: resp.StatusCode, Body: string(bytes)}
	}

	d := &devfile.Devfile{}
	if err := yaml.Unmarshal(bytes, d); err != nil {
		return nil, fmt.Errorf("could not unmarshal devfile from response: %w", err)
	}
	if devfile.IsLegacySchemaVersion(d.SchemaVersion) {
		return nil, fmt.Errorf("could not process devfile from %s: schemaVersion %q is not supported", location, d.SchemaVersion)
	}
	return &d.DevWorkspaceTemplateSpec, nil
}
