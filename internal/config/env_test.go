// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PAGE_SIZE": "25",
		"APP_VERSION":   "1.2.3",

		"SERVER_ADDRESS":             "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":     "30s",
		"SERVER_PUBLIC_URL":          "http://triage.local",
		"SERVER_CLIENT_CALLBACK_URL": "http://localhost:8081/callback",
		"SERVER_DRY_RUN":             "true",

		"POCKET_CONSUMER_KEY":    "consumer",
		"POCKET_BASE_URL":        "https://getpocket.com",
		"POCKET_REQUEST_TIMEOUT": "10s",
		"POCKET_RATE_LIMIT":      "250ms",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"AUTH_CALLBACK_ADDRESS": "localhost:8081",

		"WORKERS_RETRY_INTERVAL": "2m",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/tmp/triage.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, 25, cfg.App.PageSize)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://triage.local", cfg.Server.PublicURL)
	assert.Equal(t, "http://localhost:8081/callback", cfg.Server.ClientCallbackURL)
	assert.True(t, cfg.Server.DryRun)

	assert.Equal(t, "consumer", cfg.Pocket.ConsumerKey)
	assert.Equal(t, "https://getpocket.com", cfg.Pocket.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Pocket.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Pocket.RateLimit)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "localhost:8081", cfg.Auth.CallbackAddress)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RetryInterval)

	assert.Equal(t, "/tmp/triage.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"POCKET_CONSUMER_KEY": "consumer",
		"APP_PAGE_SIZE":       "5",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "consumer", cfg.Pocket.ConsumerKey)
	assert.Equal(t, 5, cfg.App.PageSize)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.RetryInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"WORKERS_RETRY_INTERVAL": "every now and then",
	})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidPageSize(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_PAGE_SIZE": "ten",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "seconds", value: "45s", expected: 45 * time.Second},
		{name: "minutes", value: "3m", expected: 3 * time.Minute},
		{name: "hours", value: "1h", expected: time.Hour},
		{name: "combined", value: "1m30s", expected: 90 * time.Second},
		{name: "milliseconds", value: "500ms", expected: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.value})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_PAGE_SIZE",
		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_PUBLIC_URL",
		"SERVER_CLIENT_CALLBACK_URL",
		"SERVER_DRY_RUN",

		"POCKET_CONSUMER_KEY",
		"POCKET_BASE_URL",
		"POCKET_REQUEST_TIMEOUT",
		"POCKET_RATE_LIMIT",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"AUTH_CALLBACK_ADDRESS",

		"WORKERS_RETRY_INTERVAL",

		"STORAGE_DB_DATABASE_URI",
	}
	for _, k := range keys {
		old, ok := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		if ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
