// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envNamespace lets a deployment scope variables to this program, e.g.
// RECORD_SYNC_SYNC_ZONE next to an unrelated SYNC_ZONE.
const envNamespace = "RECORD_SYNC_"

// parseEnv populates cfg from the process environment using the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom populates cfg from environ. A namespaced variable overrides
// its bare counterpart.
func parseEnvFrom(cfg any, environ map[string]string) error {
	resolved := make(map[string]string, len(environ))
	for key, value := range environ {
		resolved[key] = value
	}
	for key, value := range environ {
		if name, ok := strings.CutPrefix(key, envNamespace); ok && name != "" {
			resolved[name] = value
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: resolved}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
