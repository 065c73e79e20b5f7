// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// platformEnv holds the variable names set by the hosting platform and the
// identity provider integration.
type platformEnv struct {
	NetlifyDatabaseURL         string `env:"NETLIFY_DATABASE_URL"`
	NetlifyDatabaseURLUnpooled string `env:"NETLIFY_DATABASE_URL_UNPOOLED"`
	DatabaseURL                string `env:"DATABASE_URL"`
	SupabaseURL                string `env:"SUPABASE_URL"`
	SupabaseAnonKey            string `env:"SUPABASE_ANON_KEY"`
}

// parsePlatformEnv maps platform variables onto a [StructuredConfig]. The
// first non-empty database URL wins.
func parsePlatformEnv() (*StructuredConfig, error) {
	var p platformEnv
	if err := parseEnv(&p); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: firstNonEmpty(p.NetlifyDatabaseURL, p.NetlifyDatabaseURLUnpooled, p.DatabaseURL),
			},
		},
		Identity: Identity{
			URL:    p.SupabaseURL,
			APIKey: p.SupabaseAnonKey,
		},
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
