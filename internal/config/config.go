// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// record store server and the sync client. It is populated by merging values
// from environment variables, command-line flags, and an optional config
// file. Each binary then extracts its own view ([ServerConfig] or
// [ClientConfig]).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// the application version and logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener and batch limits of the record store server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection settings for the record store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds sync engine settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify account tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an account token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RestrictedAccounts lists account ids whose status is reported as
	// restricted.
	// Env: APP_RESTRICTED_ACCOUNTS (comma separated)
	RestrictedAccounts []string `env:"RESTRICTED_ACCOUNTS" envSeparator:","`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log file path. Empty means "logs" next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// ImportFile is an optional JSON file of bookmarks the client uploads on
	// start.
	// Env: APP_IMPORT_FILE
	ImportFile string `env:"IMPORT_FILE"`
}

// Server holds network settings and limits of the record store server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBatchSize is the largest modify batch the server accepts before
	// answering LIMIT_EXCEEDED.
	// Env: SERVER_MAX_BATCH_SIZE
	MaxBatchSize int `env:"MAX_BATCH_SIZE"`

	// RetryAfter is the pacing hint sent with transient failures.
	// Env: SERVER_RETRY_AFTER
	RetryAfter time.Duration `env:"RETRY_AFTER"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the Data Source Name. The server expects a PostgreSQL URL and
	// falls back to an in-memory store when it is empty. The client accepts
	// a SQLite file path, a ".json" file path or ":memory:".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's connection settings for the record store.
type Adapter struct {
	// HTTPAddress is the record store address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the account token presented to the record store.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Sync holds sync engine settings.
type Sync struct {
	// RecordType is the record type synchronized by the engine.
	// Env: SYNC_RECORD_TYPE
	RecordType string `env:"RECORD_TYPE"`

	// Zone is the sync zone name. Defaults to the record type.
	// Env: SYNC_ZONE
	Zone string `env:"ZONE"`

	// PageSize is the number of changes requested per fetch page.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// DefaultRetryDelay is used for throttling errors without a server hint.
	// Env: SYNC_DEFAULT_RETRY_DELAY
	DefaultRetryDelay time.Duration `env:"DEFAULT_RETRY_DELAY"`

	// RemoteConcurrency bounds the number of in-flight remote operations.
	// Env: SYNC_REMOTE_CONCURRENCY
	RemoteConcurrency int `env:"REMOTE_CONCURRENCY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the client refreshes the account status and
	// forces a sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ReconnectDelay is the pause before the notification listener redials.
	// Env: WORKERS_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
