// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration is incomplete or invalid. All of them are fatal: the
// pipeline must not reach the migration stage with a config that failed
// validation.
var (
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was configured and the POSTGRES_* fallback parts are incomplete.
	ErrMissingDatabaseDSN = errors.New("database connection string is required")

	// ErrInvalidDatabaseDSN indicates that a connection string was supplied
	// but cannot be parsed as a URL.
	ErrInvalidDatabaseDSN = errors.New("invalid database connection string")

	// ErrMissingSignKeys indicates that one of the two token signing keys
	// resolved to an empty string.
	ErrMissingSignKeys = errors.New("token signing keys must not be empty")

	// ErrInvalidTokenDurations indicates a non-positive access or refresh
	// token lifetime.
	ErrInvalidTokenDurations = errors.New("token durations must be positive")

	// ErrMissingServerAddress indicates an empty HTTP listen address.
	ErrMissingServerAddress = errors.New("server address must not be empty")
)
