// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// ucip-keeper server. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags, and an
// optional configuration file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds security settings: token verification and the
	// confidentiality-layer keys.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the context document store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a configuration file (JSON, JSONC or
	// YAML, chosen by extension). When non-empty, the file is parsed and
	// merged on top of the values already loaded from env and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control
// authentication and encryption.
type App struct {
	// TokenSignKey is the shared HS256 secret used to verify bearer tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer, when set, is the required "iss" claim of bearer tokens
	// and the issuer written into tokens minted by the CLI.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by the CLI.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// EncryptionKey is the base64-encoded 32-byte primary key of the
	// confidentiality layer. When empty a random key is generated at
	// start-up and stored documents do not survive a restart.
	// Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// PreviousEncryptionKeys are retired keys still accepted for decryption.
	// Env: APP_PREVIOUS_ENCRYPTION_KEYS (comma separated)
	PreviousEncryptionKeys []string `env:"PREVIOUS_ENCRYPTION_KEYS" envSeparator:","`

	// CiphertextMaxAge rejects stored ciphertexts older than this duration.
	// Zero disables the check.
	// Env: APP_CIPHERTEXT_MAX_AGE
	CiphertextMaxAge time.Duration `env:"CIPHERTEXT_MAX_AGE"`

	// StrictSchema makes the JSON projection reject unknown keys instead of
	// ignoring them.
	// Env: APP_STRICT_SCHEMA
	StrictSchema bool `env:"STRICT_SCHEMA"`

	// LogLevel is the minimum zerolog level written by the server
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint when no build version is set.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the document store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the document store backend.
type DB struct {
	// DSN selects and configures the backend:
	//   - "" or "memory": in-process map, not durable
	//   - "postgres://..." or "postgresql://...": PostgreSQL
	//   - "sqlite://path", "file:..." or "*.db": SQLite
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090"). Empty disables gRPC.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier ones for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, usually os.Args[1:])
//  4. Configuration file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
