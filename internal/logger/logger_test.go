// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_EmitsRoleField(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	var buf bytes.Buffer
	child := &Logger{log.Output(&buf)}
	child.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic and must not write anywhere.
	log.Info().Msg("discarded")
	log.Error().Msg("discarded")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestFromRequest_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{Nop().Output(&buf)}

	r := httptest.NewRequest("GET", "/health", nil)
	r = r.WithContext(log.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)
}
