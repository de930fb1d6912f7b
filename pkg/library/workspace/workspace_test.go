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

package workspace_test

import (
	"context"
	"errors"

	dw "github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	k8sErrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/che-incubator/devworkspace-factory/pkg/library/workspace"
)

const testNamespace = "user-che"

func testDevWorkspace(name string) *dw.DevWorkspace {
	return &dw.DevWorkspace{
		TypeMeta: metav1.TypeMeta{
			Kind:       "DevWorkspace",
			APIVersion: dw.SchemeGroupVersion.String(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: testNamespace,
		},
		Spec: dw.DevWorkspaceSpec{
			Started:      true,
			RoutingClass: "che",
			Template: dw.DevWorkspaceTemplateSpec{
				DevWorkspaceTemplateSpecContent: dw.DevWorkspaceTemplateSpecContent{
					Projects: []dw.Project{{
						Name: "che-dashboard",
						ProjectSource: dw.ProjectSource{
							Git: &dw.GitProjectSource{
								GitLikeProjectSource: dw.GitLikeProjectSource{
									Remotes: map[string]string{"origin": "https://github.com/eclipse-che/che-dashboard.git"},
								},
							},
						},
					}},
				},
			},
		},
	}
}

var _ = Describe("DevWorkspace submission", func() {
	var (
		ctx       context.Context
		k8sClient client.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		k8sClient = fake.NewClientBuilder().WithScheme(workspace.NewScheme()).Build()
	})

	It("creates the DevWorkspace and returns the stored object", func() {
		toCreate := testDevWorkspace("che-dashboard")
		created, err := workspace.Create(ctx, k8sClient, toCreate)
		Expect(err).NotTo(HaveOccurred())
		Expect(created.ResourceVersion).NotTo(BeEmpty())
		Expect(toCreate.ResourceVersion).To(BeEmpty(), "input object should not be modified")

		stored, err := workspace.Get(ctx, k8sClient, testNamespace, "che-dashboard")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Spec.RoutingClass).To(Equal("che"))
		Expect(stored.Spec.Template.Projects).To(HaveLen(1))
		Expect(stored.Spec.Template.Projects[0].Git.Remotes).To(HaveKeyWithValue("origin", "https://github.com/eclipse-che/che-dashboard.git"))
	})

	It("generates a name when only generateName is set", func() {
		toCreate := testDevWorkspace("")
		toCreate.GenerateName = "che-dashboard-"
		created, err := workspace.Create(ctx, k8sClient, toCreate)
		Expect(err).NotTo(HaveOccurred())
		Expect(created.Name).To(HavePrefix("che-dashboard-"))
	})

	It("rejects a DevWorkspace without a name", func() {
		_, err := workspace.Create(ctx, k8sClient, testDevWorkspace(""))
		Expect(err).To(MatchError("DevWorkspace has neither a name nor a generateName"))
	})

	It("wraps AlreadyExists errors", func() {
		_, err := workspace.Create(ctx, k8sClient, testDevWorkspace("che-dashboard"))
		Expect(err).NotTo(HaveOccurred())

		_, err = workspace.Create(ctx, k8sClient, testDevWorkspace("che-dashboard"))
		Expect(err).To(HaveOccurred())
		Expect(k8sErrors.IsAlreadyExists(errors.Unwrap(err))).To(BeTrue())
		Expect(err.Error()).To(HavePrefix("DevWorkspace che-dashboard already exists in namespace user-che"))
	})

	It("reports NotFound for missing DevWorkspaces", func() {
		_, err := workspace.Get(ctx, k8sClient, testNamespace, "missing")
		Expect(k8sErrors.IsNotFound(err)).To(BeTrue())
	})

	It("stops and starts a DevWorkspace", func() {
		created, err := workspace.Create(ctx, k8sClient, testDevWorkspace("che-dashboard"))
		Expect(err).NotTo(HaveOccurred())

		Expect(workspace.SetStarted(ctx, k8sClient, created, false)).To(Succeed())
		stored, err := workspace.Get(ctx, k8sClient, testNamespace, "che-dashboard")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Spec.Started).To(BeFalse())

		Expect(workspace.SetStarted(ctx, k8sClient, stored, false)).To(Succeed())
		Expect(workspace.SetStarted(ctx, k8sClient, stored, true)).To(Succeed())
		stored, err = workspace.Get(ctx, k8sClient, testNamespace, "che-dashboard")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Spec.Started).To(BeTrue())
	})
})
