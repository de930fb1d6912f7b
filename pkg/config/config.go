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

// Package config loads the factory configuration from the environment.
package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sethvargo/go-envconfig"

	"github.com/che-incubator/devworkspace-factory/pkg/library/defaults"
	"github.com/che-incubator/devworkspace-factory/pkg/library/trust"
)

type Config struct {
	// CheAPIEndpoint is the base URL of the Che server exposing the factory resolver.
	CheAPIEndpoint string `env:"CHE_API_ENDPOINT"`
	// DevWorkspaceNamespace is used for DevWorkspaces whose devfile does not specify a namespace.
	DevWorkspaceNamespace string `env:"DEVWORKSPACE_NAMESPACE,default=default"`
	RoutingClass          string `env:"DEVWORKSPACE_ROUTING_CLASS,default=che"`
	// DevfileRegistryURL is used for parents referenced by id without a registryUrl.
	DevfileRegistryURL string `env:"DEVFILE_REGISTRY_URL"`
	// TrustedSources lists the repositories whose devfiles may be used without confirmation. Unset means none.
	TrustedSources trust.Sources `env:"CHE_TRUSTED_SOURCES"`
	// DefaultComponents is a YAML list of components used for devfiles that declare none.
	DefaultComponents defaults.Components `env:"CHE_DEFAULT_COMPONENTS"`
	DevMode           bool                `env:"DEV_MODE,default=false"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads the configuration using the provided lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.ProcessWith(ctx, cfg, lookuper); err != nil {
		return nil, fmt.Errorf("failed to read configuration from environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.CheAPIEndpoint = strings.TrimSuffix(cfg.CheAPIEndpoint, "/")
	cfg.DevfileRegistryURL = strings.TrimSuffix(cfg.DevfileRegistryURL, "/")
	return cfg, nil
}

func (c *Config) validate() error {
	for _, setting := range []struct{ envVar, value string }{
		{"CHE_API_ENDPOINT", c.CheAPIEndpoint},
		{"DEVFILE_REGISTRY_URL", c.DevfileRegistryURL},
	} {
		envVar, value := setting.envVar, setting.value
		if value == "" {
			continue
		}
		parsed, err := url.Parse(value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", envVar, value)
		}
	}
	if c.DevWorkspaceNamespace == "" {
		return fmt.Errorf("DEVWORKSPACE_NAMESPACE must not be empty")
	}
	return nil
}
