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

package common

import (
	"regexp"
	"strings"

	"github.com/che-incubator/devworkspace-factory/pkg/constants"
)

var NonAlphaNumRegexp = regexp.MustCompile(`[^a-z0-9]+`)

const (
	maxNameLength = 63
	// Kubernetes appends five random characters to a generateName
	maxGenerateNameLength = maxNameLength - 5
)

// ObjectName converts an arbitrary string into a valid Kubernetes object name (RFC 1123 label).
func ObjectName(name string) string {
	name = strings.ToLower(name)
	name = NonAlphaNumRegexp.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if len(name) > maxNameLength {
		name = strings.TrimRight(name[:maxNameLength], "-")
	}
	return name
}

// GenerateName returns a Kubernetes generateName derived from base. The default generateName is used if base does
// not contain any usable character.
func GenerateName(base string) string {
	name := ObjectName(base)
	if len(name) > maxGenerateNameLength-1 {
		name = strings.TrimRight(name[:maxGenerateNameLength-1], "-")
	}
	if name == "" {
		name = constants.DefaultGenerateName
	}
	return name + "-"
}
