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

package metrics

// DevfileSource classifies where a devfile selected by the factory flow came from.
type DevfileSource string

const (
	SourceScm    DevfileSource = "scm"
	SourceURL    DevfileSource = "url"
	SourceLegacy DevfileSource = "legacy"
)

// FactoryResolved records a factory resolver response that was turned into a devfile.
func FactoryResolved(source DevfileSource) {
	label := string(source)
	if label == "" {
		label = unknownSourceLabel
	}
	factoryResolutions.WithLabelValues(label).Inc()
}

// ReconstructionFellBack records a DevWorkspace whose origin devfile annotation could not be used.
func ReconstructionFellBack() {
	reconstructionFallbacks.Inc()
}

// TrustDecided records the result of a trusted source check.
func TrustDecided(trusted bool) {
	if trusted {
		trustDecisions.WithLabelValues(resultTrusted).Inc()
	} else {
		trustDecisions.WithLabelValues(resultUntrusted).Inc()
	}
}
