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
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/che-incubator/devworkspace-factory/pkg/dwerrors"
)

const (
	cheEndpoint  = "https://che.example.com"
	editorLink   = "https://che.example.com/api/scm/resolve?repository=che-dashboard&file=.che/che-editor.yaml"
	repoLocation = "https://github.com/eclipse-che/che-dashboard"
)

func TestResolve(t *testing.T) {
	defer gock.Off()
	gock.New(cheEndpoint).
		Post("/api/factory/resolver").
		MatchType("json").
		JSON(map[string]string{"url": repoLocation}).
		Reply(200).
		JSON(map[string]interface{}{
			"devfile": map[string]interface{}{
				"schemaVersion": "2.1.0",
				"metadata":      map[string]interface{}{"name": "che-dashboard"},
			},
			"scm_info": map[string]interface{}{
				"clone_url":    "https://github.com/eclipse-che/che-dashboard.git",
				"scm_provider": "github",
				"branch":       "main",
			},
			"source": "devfile.yaml",
			"links": []interface{}{
				map[string]interface{}{"href": editorLink, "rel": ".che/che-editor.yaml content", "method": "GET"},
			},
		})

	client := NewClient(cheEndpoint+"/", nil)
	resolver, err := client.Resolve(context.Background(), repoLocation)
	require.NoError(t, err)
	assert.True(t, resolver.Devfile.IsV2())
	assert.Equal(t, "che-dashboard", resolver.Devfile.Devfile().Metadata.Name)
	assert.Equal(t, &ScmInfo{
		CloneURL:    "https://github.com/eclipse-che/che-dashboard.git",
		ScmProvider: "github",
		Branch:      "main",
	}, resolver.ScmInfo)
	assert.Equal(t, "devfile.yaml", resolver.Source)
	assert.Len(t, resolver.Links, 1)
	assert.True(t, gock.IsDone())
}

func TestResolveDevfile(t *testing.T) {
	defer gock.Off()
	gock.New(cheEndpoint).
		Post("/api/factory/resolver").
		Reply(200).
		BodyString(`{"devfile": {"schemaVersion": "2.1.0", "metadata": {"name": "app"}}, "source": "devfile.yaml"}`)

	document, resolver, err := NewClient(cheEndpoint, nil).ResolveDevfile(context.Background(), "https://raw.example.com/devfile.yaml")
	require.NoError(t, err)
	assert.Equal(t, "devfile.yaml", resolver.Source)
	source, err := GetDevfileSource(document.Devfile())
	require.NoError(t, err)
	assert.Equal(t, "https://raw.example.com/devfile.yaml", source.URL.Location)
}

func TestResolveFailure(t *testing.T) {
	defer gock.Off()
	gock.New(cheEndpoint).
		Post("/api/factory/resolver").
		Reply(500).
		BodyString("internal error")

	_, err := NewClient(cheEndpoint, nil).Resolve(context.Background(), repoLocation)
	var fetchErr *dwerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 500, fetchErr.StatusCode)
	assert.Equal(t, "internal error", fetchErr.Body)
}

func TestResolveWithoutEndpoint(t *testing.T) {
	_, err := NewClient("", nil).Resolve(context.Background(), repoLocation)
	assert.Error(t, err)
}

func TestFetchEditorOverride(t *testing.T) {
	defer gock.Off()
	gock.New(cheEndpoint).
		Get("/api/scm/resolve").
		MatchParam("file", ".che/che-editor.yaml").
		Reply(200).
		BodyString("id: che-incubator/che-code/latest\n")

	resolver := &FactoryResolver{Links: []Link{{Href: editorLink, Rel: ".che/che-editor.yaml content", Method: "GET"}}}
	editor, err := NewClient(cheEndpoint, nil).FetchEditorOverride(context.Background(), resolver)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": "che-incubator/che-code/latest"}, editor)
}

func TestFetchEditorOverrideNotFound(t *testing.T) {
	defer gock.Off()
	gock.New(cheEndpoint).
		Get("/api/scm/resolve").
		Reply(404).
		BodyString("not found")

	resolver := &FactoryResolver{Links: []Link{{Href: editorLink, Rel: ".che/che-editor.yaml content"}}}
	editor, err := NewClient(cheEndpoint, nil).FetchEditorOverride(context.Background(), resolver)
	assert.NoError(t, err)
	assert.Nil(t, editor)
}

func TestFetchEditorOverrideWithoutLink(t *testing.T) {
	editor, err := NewClient(cheEndpoint, nil).FetchEditorOverride(context.Background(), &FactoryResolver{})
	assert.NoError(t, err)
	assert.Nil(t, editor)
}

func TestFetchLinkFailure(t *testing.T) {
	defer gock.Off()
	gock.New(cheEndpoint).
		Get("/api/scm/resolve").
		Reply(403).
		BodyString("forbidden")

	_, found, err := NewClient(cheEndpoint, nil).FetchLink(context.Background(), Link{Href: editorLink})
	assert.False(t, found)
	var fetchErr *dwerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 403, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "forbidden")
}
