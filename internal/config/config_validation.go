// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// bcryptMaxInput is the longest password, in bytes, bcrypt can hash.
const bcryptMaxInput = 72

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	switch {
	case app.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case app.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case app.AccessTokenDuration <= 0 || app.RefreshTokenDuration <= 0:
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	case app.SignUpKeyTTL <= 0:
		return fmt.Errorf("%w: sign up key ttl must be positive", ErrInvalidAppConfigs)
	case app.MaxProfiles <= 0:
		return fmt.Errorf("%w: max profiles must be positive", ErrInvalidAppConfigs)
	case app.PasswordMinLength <= 0 || app.PasswordMaxLength < app.PasswordMinLength:
		return fmt.Errorf("%w: password length bounds are inconsistent", ErrInvalidAppConfigs)
	case app.PasswordMaxLength > bcryptMaxInput:
		return fmt.Errorf("%w: password max length exceeds %d, the bcrypt input limit", ErrInvalidAppConfigs, bcryptMaxInput)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs)
	}
	if _, err := cfg.Storage.DB.Driver(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}
	if cfg.Storage.Redis.Address == "" {
		return fmt.Errorf("%w: redis address is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if endpoint := cfg.Adapter.Mail.Endpoint; endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: mail endpoint must be an absolute http(s) URL", ErrInvalidAdapterConfigs)
		}
	}

	return nil
}

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Driver returns the database/sql driver name for the DSN scheme.
func (db DB) Driver() (string, error) {
	switch {
	case strings.HasPrefix(db.DSN, "postgres://"), strings.HasPrefix(db.DSN, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(db.DSN, "sqlite3://"):
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported dsn scheme in %q", redactDSN(db.DSN))
	}
}

// SQLitePath returns the file path of a "sqlite3://" DSN.
func (db DB) SQLitePath() string {
	return strings.TrimPrefix(db.DSN, "sqlite3://")
}

func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i] + "://..."
	}
	return "..."
}
