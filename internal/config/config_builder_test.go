// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources fails
// validation: a configuration without a database connection string must be
// rejected before any stage can run.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrMissingDatabaseDSN)
}

// TestBuild_DefaultsAlone verifies that defaults plus a DSN produce a valid
// config with all documented fallback values.
func TestBuild_DefaultsAlone(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DBConfig{DSN: "postgres://u:p@h:5432/db"}},
	})
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "go-deploy-gate", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 21*24*time.Hour, cfg.App.RefreshDuration)
	assert.True(t, cfg.App.SecureCookies())
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.False(t, cfg.OAuth.Enabled())
}

// TestBuild_EarlierSourceWins verifies merge priority: a field set by an
// earlier (higher-priority) source is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenIssuer: "from-env"},
			Storage: Storage{DB: DBConfig{DSN: "postgres://u:p@h:5432/db"}},
		},
		&StructuredConfig{
			App: App{TokenIssuer: "from-json", Version: "9.9.9"},
		},
	)
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	// Fields only the later source sets still come through.
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

// TestBuild_ExplicitCookieSecureFalseSurvivesDefaults verifies that the
// pointer field keeps an explicit false through the defaults merge.
func TestBuild_ExplicitCookieSecureFalseSurvivesDefaults(t *testing.T) {
	insecure := false
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{CookieSecure: &insecure},
		Storage: Storage{DB: DBConfig{DSN: "postgres://u:p@h:5432/db"}},
	})
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.False(t, cfg.App.SecureCookies())
}

// TestBuild_ResolvesDSNFromParts verifies that validation writes the
// assembled DSN back into the config.
func TestBuild_ResolvesDSNFromParts(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DBConfig{
			Postgres: PostgresParts{Host: "h", Name: "db", User: "u"},
			SSLMode:  "require",
		}},
	})
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "postgres://u@h:5432/db?sslmode=require", cfg.Storage.DB.DSN)
}

// ── withEnv / withJSON ────────────────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://u:p@h:5432/db",
	})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://u:p@h:5432/db", b.configs[0].Storage.DB.DSN)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_issuer":   "json-issuer",
			"token_duration": "45m",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://u:p@h:5432/jsondb"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, b.configs[1].App.TokenDuration)
	assert.Equal(t, "postgres://u:p@h:5432/jsondb", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_MissingSignKeys(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DBConfig{DSN: "postgres://u:p@h:5432/db"}},
		App: App{
			TokenSignKey:    "",
			RefreshSignKey:  "r",
			TokenDuration:   time.Hour,
			RefreshDuration: time.Hour,
		},
		Server: Server{HTTPAddress: ":8000"},
	}

	assert.ErrorIs(t, cfg.validate(), ErrMissingSignKeys)
}

func TestValidate_NonPositiveDurations(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DBConfig{DSN: "postgres://u:p@h:5432/db"}},
		App: App{
			TokenSignKey:    "a",
			RefreshSignKey:  "r",
			TokenDuration:   0,
			RefreshDuration: time.Hour,
		},
		Server: Server{HTTPAddress: ":8000"},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidTokenDurations)
}

func TestValidate_MissingServerAddress(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DBConfig{DSN: "postgres://u:p@h:5432/db"}},
		App: App{
			TokenSignKey:    "a",
			RefreshSignKey:  "r",
			TokenDuration:   time.Hour,
			RefreshDuration: time.Hour,
		},
	}

	assert.ErrorIs(t, cfg.validate(), ErrMissingServerAddress)
}
