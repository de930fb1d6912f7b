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

package trust

import (
	"strings"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/che-incubator/devworkspace-factory/pkg/metrics"
)

var log = logf.Log.WithName("trust")

const wildcard = "*"

// Sources is the list of trusted repositories. The zero value trusts nothing.
type Sources struct {
	all  bool
	urls []string
}

// AllSources returns Sources trusting every repository.
func AllSources() Sources {
	return Sources{all: true}
}

// SourceList returns Sources trusting the listed repositories.
func SourceList(urls ...string) Sources {
	return Sources{urls: urls}
}

// ParseSources parses a trusted sources setting: "*" trusts every repository, anything else is a comma separated
// list of repository URLs.
func ParseSources(value string) Sources {
	value = strings.TrimSpace(value)
	if value == wildcard {
		return AllSources()
	}
	var urls []string
	for _, entry := range strings.Split(value, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			urls = append(urls, entry)
		}
	}
	return SourceList(urls...)
}

// EnvDecode allows Sources to be read from the environment by go-envconfig.
func (s *Sources) EnvDecode(value string) error {
	*s = ParseSources(value)
	return nil
}

// All returns true if every repository is trusted.
func (s Sources) All() bool {
	return s.all
}

// URLs returns the trusted repository URLs. It is empty when every or no repository is trusted.
func (s Sources) URLs() []string {
	return s.urls
}

func (s Sources) String() string {
	if s.all {
		return wildcard
	}
	return strings.Join(s.urls, ",")
}

// IsTrusted returns true if url refers to a trusted repository. Trusted entries and url are compared by repository
// identity; if either side is not a URL of a known provider, the raw strings are compared.
func (s Sources) IsTrusted(url string) bool {
	if s.all {
		return true
	}
	id, ok := Canonicalize(url)
	for _, source := range s.urls {
		sourceID, sourceOK := Canonicalize(source)
		if ok && sourceOK {
			if id == sourceID {
				return true
			}
			continue
		}
		if source == url {
			return true
		}
	}
	return false
}

// IsTrustedRepo checks url against the trusted sources and records the decision.
func IsTrustedRepo(sources Sources, url string) bool {
	trusted := sources.IsTrusted(url)
	log.V(1).Info("Checked repository against trusted sources", "url", url, "trusted", trusted)
	metrics.TrustDecided(trusted)
	return trusted
}
