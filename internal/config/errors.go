package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidIdentityConfigs indicates missing identity provider settings.
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidServerConfigs indicates an unknown mode or a missing listen
	// address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
