// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// media-hub server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds business settings: token parameters, account limits and
	// the password policy.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and Redis.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for outbound integrations.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, account limits and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT access tokens
	// and to key the digests of stored refresh tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of an access token (e.g. "30m").
	// Env: APP_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of a refresh token (e.g. "336h").
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// SignUpKeyTTL is how long an emailed verification code stays valid.
	// Env: APP_SIGN_UP_KEY_TTL
	SignUpKeyTTL time.Duration `env:"SIGN_UP_KEY_TTL"`

	// MaxProfiles is the number of active profiles a user may own.
	// Env: APP_MAX_PROFILES
	MaxProfiles int `env:"MAX_PROFILES"`

	// PasswordMinLength and PasswordMaxLength bound new passwords.
	// Env: APP_PASSWORD_MIN_LENGTH, APP_PASSWORD_MAX_LENGTH
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`
	PasswordMaxLength int `env:"PASSWORD_MAX_LENGTH"`

	// BcryptCost is the work factor used when hashing passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the cache connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: "postgres://..." for PostgreSQL,
	// "sqlite3://path/to/file.db" for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the verification code and refresh
// token cache.
type Redis struct {
	// Address in "host:port" form. Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Password is optional. Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// DB is the logical database index. Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// KeyPrefix namespaces every key written by the service.
	// Env: STORAGE_REDIS_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	Mail Mail `envPrefix:"MAIL_"`
}

// Mail configures the HTTP mail gateway. When Endpoint is empty, messages
// are written to the log instead of being delivered.
type Mail struct {
	// Endpoint is the base URL of the gateway. Env: ADAPTER_MAIL_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// APIKey is sent as a bearer token. Env: ADAPTER_MAIL_API_KEY
	APIKey string `env:"API_KEY"`
	// Sender is the "from" address. Env: ADAPTER_MAIL_SENDER
	Sender string `env:"SENDER"`
	// RequestTimeout bounds one delivery call. Env: ADAPTER_MAIL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source receive the values from [Defaults].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
