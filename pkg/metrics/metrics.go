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

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	metricsNamespace   = "devworkspace_factory"
	metricSourceLabel  = "source"
	metricResultLabel  = "result"
	resultTrusted      = "trusted"
	resultUntrusted    = "untrusted"
	unknownSourceLabel = "unknown"
)

var (
	factoryResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "factory_resolutions_total",
			Help:      "Number of factory resolver responses turned into a devfile, by devfile source",
		},
		[]string{
			metricSourceLabel,
		},
	)
	reconstructionFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "devfile_reconstruction_fallbacks_total",
			Help:      "Number of DevWorkspaces whose origin devfile could not be parsed and was replaced by an empty devfile",
		},
	)
	trustDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "trust_decisions_total",
			Help:      "Number of trusted source checks, by result",
		},
		[]string{
			metricResultLabel,
		},
	)
)

func init() {
	// Register custom metrics with the global prometheus registry
	metrics.Registry.MustRegister(factoryResolutions, reconstructionFallbacks, trustDecisions)
}
