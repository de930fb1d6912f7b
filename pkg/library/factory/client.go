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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
	"github.com/che-incubator/devworkspace-factory/pkg/dwerrors"
	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
)

var log = logf.Log.WithName("factory")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the factory resolver endpoint of a Che server.
type Client struct {
	endpoint   string
	httpClient HTTPClient
}

// NewClient returns a client for the Che API at endpoint. http.DefaultClient is used if httpClient is nil.
func NewClient(endpoint string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: httpClient,
	}
}

type resolveRequest struct {
	URL string `json:"url"`
}

// Resolve asks the factory resolver for the devfile found at location.
func (c *Client) Resolve(ctx context.Context, loc string) (*FactoryResolver, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("factory resolver endpoint is not configured")
	}
	body, err := json.Marshal(resolveRequest{URL: loc})
	if err != nil {
		return nil, err
	}
	resolverURL := c.endpoint + constants.FactoryResolverPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resolverURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", resolverURL, err)
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}
	resolver := &FactoryResolver{}
	if err := json.Unmarshal(data, resolver); err != nil {
		return nil, fmt.Errorf("could not decode factory resolver response: %w", err)
	}
	log.V(1).Info("Resolved factory location", "location", loc, "source", resolver.Source)
	return resolver, nil
}

// ResolveDevfile resolves location and selects the devfile a workspace is created from.
func (c *Client) ResolveDevfile(ctx context.Context, loc string) (*devfile.Document, *FactoryResolver, error) {
	resolver, err := c.Resolve(ctx, loc)
	if err != nil {
		return nil, nil, err
	}
	document, err := SelectDevfile(resolver, loc)
	if err != nil {
		return nil, resolver, err
	}
	return document, resolver, nil
}

// FetchLink reads the content served by a resolver link. A missing file is not an error: found is false if the
// server answers with 404.
func (c *Client) FetchLink(ctx context.Context, link Link) (content string, found bool, err error) {
	method := link.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, link.Href, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to create request for %s: %w", link.Href, err)
	}
	data, err := c.do(req)
	if dwerrors.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// FetchEditorOverride returns the editor devfile a repository declares in .che/che-editor.yaml, or nil if the
// repository declares none.
func (c *Client) FetchEditorOverride(ctx context.Context, resolver *FactoryResolver) (map[string]interface{}, error) {
	link := FindLink(resolver, constants.EditorOverrideFile)
	if link == nil {
		return nil, nil
	}
	content, found, err := c.FetchLink(ctx, *link)
	if err != nil || !found {
		return nil, err
	}
	editor := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(content), &editor); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", constants.EditorOverrideFile, err)
	}
	return editor, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &dwerrors.FetchError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close() // ignoring error because what would we even do?
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read data from %s: %w", req.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &dwerrors.FetchError{URL: req.URL.String(), StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
