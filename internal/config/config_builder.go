// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected source configs in append order. mergo fills
// only zero fields of the destination, so earlier sources win.
// WithoutDereference keeps pointer fields as pointers during the merge:
// a source that set CookieSecure to an explicit false would otherwise be
// dereferenced, read as a zero value, and overwritten by the default true.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the lowest-priority source.
// Must be called after all real sources so that it only fills fields no
// source has set.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *StructuredConfig {
	secure := true

	return &StructuredConfig{
		App: App{
			TokenSignKey:    "dev-sign-key-change-me",
			RefreshSignKey:  "dev-refresh-key-change-me",
			TokenIssuer:     "go-deploy-gate",
			TokenDuration:   2 * time.Hour,
			RefreshDuration: 21 * 24 * time.Hour,
			CookieSecure:    &secure,
			Version:         "0.1.0",
		},
		OAuth: OAuth{
			GoogleRedirectURI: "http://localhost:8000/auth/callback",
		},
		Storage: Storage{
			DB: DBConfig{
				Postgres: PostgresParts{
					Port: "5432",
				},
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8000",
			RequestTimeout: 30 * time.Second,
		},
	}
}
