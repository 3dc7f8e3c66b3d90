// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used by the migrate or serve stages.
//
// The database connection string is the only hard requirement: it must be
// resolvable (directly or from the POSTGRES_* parts) before any stage runs.
// The resolved DSN is written back to Storage.DB.DSN so every consumer sees
// the canonical form.
//
// Validation is purely local — no network I/O — which is what lets a
// misconfigured deployment fail before the pipeline touches the database.
func (cfg *StructuredConfig) validate() error {
	dsn, err := cfg.Storage.DB.ResolveDSN()
	if err != nil {
		return err
	}
	cfg.Storage.DB.DSN = dsn

	if cfg.App.TokenSignKey == "" || cfg.App.RefreshSignKey == "" {
		return ErrMissingSignKeys
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.RefreshDuration <= 0 {
		return ErrInvalidTokenDurations
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrMissingServerAddress
	}

	return nil
}
