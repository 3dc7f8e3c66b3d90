// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type. It exists so the JSON file can use "2h"
// style durations while the merged config keeps time.Duration fields.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		RefreshSignKey       string   `json:"refresh_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		RefreshDuration      Duration `json:"refresh_duration"`
		CookieSecure         *bool    `json:"cookie_secure"`
		Version              string   `json:"version"`
		TestUserEmail        string   `json:"test_user_email"`
		TestUserPasswordHash string   `json:"test_user_password_hash"`
	} `json:"app,omitempty"`

	OAuth struct {
		GoogleClientID     string `json:"google_client_id"`
		GoogleClientSecret string `json:"google_client_secret"`
		GoogleRedirectURI  string `json:"google_redirect_uri"`
	} `json:"oauth,omitempty"`

	Storage struct {
		DB struct {
			DSN     string `json:"dsn"`
			SSLMode string `json:"ssl_mode"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			RefreshSignKey:       jsonCfg.App.RefreshSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			RefreshDuration:      time.Duration(jsonCfg.App.RefreshDuration),
			CookieSecure:         jsonCfg.App.CookieSecure,
			Version:              jsonCfg.App.Version,
			TestUserEmail:        jsonCfg.App.TestUserEmail,
			TestUserPasswordHash: jsonCfg.App.TestUserPasswordHash,
		},
		OAuth: OAuth{
			GoogleClientID:     jsonCfg.OAuth.GoogleClientID,
			GoogleClientSecret: jsonCfg.OAuth.GoogleClientSecret,
			GoogleRedirectURI:  jsonCfg.OAuth.GoogleRedirectURI,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN:     jsonCfg.Storage.DB.DSN,
				SSLMode: jsonCfg.Storage.DB.SSLMode,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
