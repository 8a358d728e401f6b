// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// shielded-nft server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds registry policy and credential settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the registry backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by the command-line client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration: versioning, viewing key
// issuance and the staking policy.
type App struct {
	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ViewingKeySignKey is the HMAC secret used to sign and verify viewing
	// keys. Must be kept confidential.
	// Env: APP_VIEWING_KEY_SIGN_KEY
	ViewingKeySignKey string `env:"VIEWING_KEY_SIGN_KEY"`

	// ViewingKeyIssuer is the "iss" claim of every issued viewing key.
	// Env: APP_VIEWING_KEY_ISSUER
	ViewingKeyIssuer string `env:"VIEWING_KEY_ISSUER"`

	// ViewingKeyDuration is how long a viewing key stays valid.
	// Env: APP_VIEWING_KEY_DURATION
	ViewingKeyDuration time.Duration `env:"VIEWING_KEY_DURATION"`

	// DefaultLockMaturity is the maturity, in epochs, applied on stake to
	// assets minted without one.
	// Env: APP_DEFAULT_LOCK_MATURITY
	DefaultLockMaturity uint64 `env:"DEFAULT_LOCK_MATURITY"`

	// EpochDuration is the wall-clock length of one maturity epoch.
	// Env: APP_EPOCH_DURATION
	EpochDuration time.Duration `env:"EPOCH_DURATION"`

	// EnforceMaturity makes unstake fail until the maturity window elapsed.
	// Env: APP_ENFORCE_MATURITY
	EnforceMaturity bool `env:"ENFORCE_MATURITY"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Storage groups the configuration of the registry backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// SealKey is the passphrase used to seal shielded description and
	// attributes columns at rest. Empty stores them as plain bytes.
	// Env: STORAGE_SEAL_KEY
	SealKey string `env:"SEAL_KEY"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend:
	//   - empty: in-memory registry;
	//   - postgres:// or postgresql://: PostgreSQL through pgx;
	//   - anything else: SQLite file path or file: URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side transport settings.
type Adapter struct {
	// Transport is "http" or "grpc".
	// Env: ADAPTER_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// HTTPAddress is the base URL of the HTTP API
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC API.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
