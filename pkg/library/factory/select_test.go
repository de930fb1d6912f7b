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
	"errors"
	"testing"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
	"github.com/che-incubator/devworkspace-factory/pkg/dwerrors"
	"github.com/che-incubator/devworkspace-factory/pkg/library/devfile"
)

func loadResolver(t *testing.T, content string) *FactoryResolver {
	resolver := &FactoryResolver{}
	require.NoError(t, yaml.Unmarshal([]byte(content), resolver))
	return resolver
}

const scmResolver = `
devfile:
  schemaVersion: 2.1.0
  metadata:
    name: che-dashboard
  components:
    - name: tools
      container:
        image: quay.io/devfile/universal-developer-image:latest
scm_info:
  clone_url: https://github.com/eclipse-che/che-dashboard.git
  scm_provider: github
  branch: main
source: devfile.yaml
links:
  - href: https://che.example.com/api/scm/resolve?repository=che-dashboard&file=.che/che-editor.yaml
    rel: .che/che-editor.yaml content
    method: GET
`

func TestSelectDevfileForScmLocation(t *testing.T) {
	resolver := loadResolver(t, scmResolver)

	document, err := SelectDevfile(resolver, "https://github.com/eclipse-che/che-dashboard")
	require.NoError(t, err)
	require.True(t, document.IsV2())
	result := document.Devfile()

	require.Len(t, result.Projects, 1)
	project := result.Projects[0]
	assert.Equal(t, "che-dashboard", project.Name)
	assert.Equal(t, map[string]string{"origin": "https://github.com/eclipse-che/che-dashboard.git"}, project.Git.Remotes)
	require.NotNil(t, project.Git.CheckoutFrom)
	assert.Equal(t, "main", project.Git.CheckoutFrom.Revision)

	source, err := GetDevfileSource(result)
	require.NoError(t, err)
	assert.Equal(t, &DevfileSource{
		Scm: &ScmSource{
			Repo:     "https://github.com/eclipse-che/che-dashboard.git",
			Revision: "main",
			FileName: "devfile.yaml",
		},
	}, source)

	assert.Empty(t, resolver.Devfile.Devfile().Projects, "Should not modify resolver devfile")
	assert.Nil(t, resolver.Devfile.Devfile().Metadata.Attributes, "Should not modify resolver devfile")
}

func TestSelectDevfileOmitsEmptyScmFields(t *testing.T) {
	resolver := loadResolver(t, scmResolver)
	resolver.ScmInfo.Branch = ""
	resolver.Source = ""

	document, err := SelectDevfile(resolver, "https://github.com/eclipse-che/che-dashboard")
	require.NoError(t, err)
	text, found, err := devfile.GetMetadataAnnotation(document.Devfile().Metadata.Attributes, constants.DevfileSourceAnnotation)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "scm:\n  repo: https://github.com/eclipse-che/che-dashboard.git\n", text)
	assert.Nil(t, document.Devfile().Projects[0].Git.CheckoutFrom)
}

func TestSelectDevfileKeepsExistingProject(t *testing.T) {
	resolver := loadResolver(t, scmResolver)
	existing := dw.Project{Name: "dashboard", ProjectSource: dw.ProjectSource{Git: &dw.GitProjectSource{}}}
	existing.Git.Remotes = map[string]string{"origin": "git@github.com:eclipse-che/che-dashboard.git"}
	resolver.Devfile.Devfile().Projects = []dw.Project{existing}

	document, err := SelectDevfile(resolver, "https://github.com/eclipse-che/che-dashboard")
	require.NoError(t, err)
	assert.Equal(t, []dw.Project{existing}, document.Devfile().Projects)
}

func TestSelectDevfileForURLLocation(t *testing.T) {
	resolver := loadResolver(t, `
devfile:
  schemaVersion: 2.2.0
  metadata:
    generateName: sample-
`)
	location := "https://raw.example.com/samples/devfile.yaml"

	document, err := SelectDevfile(resolver, location)
	require.NoError(t, err)
	assert.Empty(t, document.Devfile().Projects)
	source, err := GetDevfileSource(document.Devfile())
	require.NoError(t, err)
	assert.Equal(t, &DevfileSource{URL: &URLSource{Location: location}}, source)
}

func TestSelectDevfileReturnsLegacyDevfileUnchanged(t *testing.T) {
	resolver := loadResolver(t, `
devfile:
  apiVersion: 1.0.0
  metadata:
    name: legacy
scm_info:
  clone_url: https://github.com/eclipse-che/che-dashboard.git
  scm_provider: github
`)
	document, err := SelectDevfile(resolver, "https://github.com/eclipse-che/che-dashboard")
	require.NoError(t, err)
	assert.Same(t, resolver.Devfile, document)
	assert.False(t, document.IsV2())
	assert.Equal(t, map[string]interface{}{
		"apiVersion": "1.0.0",
		"metadata":   map[string]interface{}{"name": "legacy"},
	}, document.Legacy())
}

func TestSelectDevfileWithoutDevfile(t *testing.T) {
	_, err := SelectDevfile(&FactoryResolver{Source: "devfile.yaml"}, "https://github.com/eclipse-che/che-dashboard")
	var missing *dwerrors.MissingDevfileError
	assert.True(t, errors.As(err, &missing))
	assert.EqualError(t, err, "The specified link does not contain any Devfile.")
}

func TestSelectDevfileWithUnsupportedCloneURL(t *testing.T) {
	resolver := loadResolver(t, scmResolver)
	resolver.ScmInfo.CloneURL = "github.com/eclipse-che/che-dashboard"
	_, err := SelectDevfile(resolver, "github.com/eclipse-che/che-dashboard")
	assert.EqualError(t, err, "Failed to get project from location: 'github.com/eclipse-che/che-dashboard'.")
}

func TestDevfileSourceRoundTrip(t *testing.T) {
	sources := []*DevfileSource{
		{Scm: &ScmSource{Repo: "git@github.com:a/b.git", Revision: "feature/x", FileName: ".devfile.yaml"}},
		{Scm: &ScmSource{Repo: "https://gitlab.com/g/p.git"}},
		{URL: &URLSource{Location: "https://raw.example.com/devfile.yaml"}},
	}
	for _, source := range sources {
		text, err := source.Dump()
		require.NoError(t, err)
		parsed, err := ParseDevfileSource(text)
		require.NoError(t, err)
		assert.Equal(t, source, parsed)
	}
}

func TestDevfileSourceIsExclusive(t *testing.T) {
	_, err := (&DevfileSource{
		Scm: &ScmSource{Repo: "https://github.com/a/b.git"},
		URL: &URLSource{Location: "https://github.com/a/b"},
	}).Dump()
	assert.Error(t, err)
	_, err = (&DevfileSource{}).Dump()
	assert.Error(t, err)
	_, err = ParseDevfileSource("scm:\n  repo: a\nurl:\n  location: b\n")
	assert.Error(t, err)
	_, err = ParseDevfileSource("other: value\n")
	assert.Error(t, err)
}

func TestFindLink(t *testing.T) {
	resolver := loadResolver(t, scmResolver)
	link := FindLink(resolver, constants.EditorOverrideFile)
	require.NotNil(t, link)
	assert.Equal(t, "GET", link.Method)
	assert.Nil(t, FindLink(resolver, "devfile.yaml"))
	assert.Nil(t, FindLink(nil, constants.EditorOverrideFile))
}
