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

package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
	"github.com/che-incubator/devworkspace-factory/pkg/library/flatten/network"
)

type FakeHTTPGetter struct {
	DevfileResources map[string]devfile.Devfile
	Errors           map[string]TestPluginError
}

var _ network.HTTPGetter = (*FakeHTTPGetter)(nil)

func (reg *FakeHTTPGetter) Get(location string) (*http.Response, error) {
	if d, ok := reg.DevfileResources[location]; ok {
		yamlBytes, err := yaml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("error marshalling devfile in test: %w", err)
		}
		resp := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer(yamlBytes)),
		}
		return resp, nil
	}

	if err, ok := reg.Errors[location]; ok {
		if err.StatusCode != 0 {
			return &http.Response{
				StatusCode: err.StatusCode,
				Body:       io.NopCloser(bytes.NewBufferString(err.Message)),
			}, nil
		}
		return nil, errors.New(err.Message)
	}
	return nil, fmt.Errorf("test does not define entry for devfile at URL %s", location)
}
