// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Server modes accepted by [Server.Mode].
const (
	// ModeHTTP runs a long-lived HTTP listener.
	ModeHTTP = "http"
	// ModeLambda serves API Gateway proxy events through the same router.
	ModeLambda = "lambda"
)

// StructuredConfig is the top-level configuration container for the
// go-life-records service. It aggregates all sub-configurations and is
// populated by merging built-in defaults, platform environment variables,
// application environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the run mode, listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Identity holds the settings of the external identity provider that
	// verifies bearer tokens.
	Identity Identity `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the version string of the running application. It is
	// reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the PostgreSQL backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI, falling back to NETLIFY_DATABASE_URL,
	// NETLIFY_DATABASE_URL_UNPOOLED and DATABASE_URL.
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns caps idle pooled connections.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// ConnMaxIdleTime closes connections idle for longer than this.
	// Env: STORAGE_DB_CONN_MAX_IDLE_TIME
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME"`

	// ConnectTimeout bounds the initial ping.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// AutoMigrate applies the embedded schema on startup.
	// Env: STORAGE_DB_AUTO_MIGRATE
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Server holds run mode and inbound transport settings.
type Server struct {
	// Mode is either "http" or "lambda".
	// Env: SERVER_MODE
	Mode string `env:"MODE"`

	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080"). Ignored in lambda mode.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Identity holds settings of the identity provider.
type Identity struct {
	// URL is the provider base URL. Tokens are checked against
	// {URL}/auth/v1/user.
	// Env: IDENTITY_URL, falling back to SUPABASE_URL.
	URL string `env:"URL"`

	// APIKey is the public project key sent as the apikey header.
	// Env: IDENTITY_API_KEY, falling back to SUPABASE_ANON_KEY.
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds one verification call.
	// Env: IDENTITY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Platform environment variables (NETLIFY_*, DATABASE_URL, SUPABASE_*)
//  3. Application environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withPlatformEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
