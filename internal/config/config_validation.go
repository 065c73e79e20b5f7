// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// Err*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidStorageConfigs)
	}

	if cfg.Identity.URL == "" || cfg.Identity.APIKey == "" {
		return fmt.Errorf("%w: provider URL and API key are required", ErrInvalidIdentityConfigs)
	}

	switch cfg.Server.Mode {
	case ModeHTTP:
		if cfg.Server.HTTPAddress == "" {
			return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
		}
	case ModeLambda:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidServerConfigs, cfg.Server.Mode)
	}

	return nil
}
