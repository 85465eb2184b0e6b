// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// triage client and the proxy server. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings shared by both binaries.
	App App `envPrefix:"APP_"`

	// Storage holds the client-side SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the proxy listen address and redirect targets.
	Server Server `envPrefix:"SERVER_"`

	// Pocket holds the upstream Pocket API settings used by the server.
	Pocket Pocket `envPrefix:"POCKET_"`

	// Adapter holds the client's view of the proxy server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds the client's OAuth callback listener settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Workers holds background job settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// PageSize is the number of links reviewed per page.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// Version is exposed by the server /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the client persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings of the client.
type DB struct {
	// DSN is the SQLite file path (or ":memory:" for a throwaway session).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings of the proxy server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PublicURL is the externally reachable base URL of the server, used to
	// build the OAuth redirect back to /oauth/access_token.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// ClientCallbackURL is where the server sends the browser once the
	// access token is known (the client's callback listener).
	// Env: SERVER_CLIENT_CALLBACK_URL
	ClientCallbackURL string `env:"CLIENT_CALLBACK_URL"`

	// DryRun makes DELETE /links log the upstream request instead of sending it.
	// Env: SERVER_DRY_RUN
	DryRun bool `env:"DRY_RUN"`
}

// Pocket holds the upstream API settings.
type Pocket struct {
	// ConsumerKey identifies the application to Pocket.
	// Env: POCKET_CONSUMER_KEY
	ConsumerKey string `env:"CONSUMER_KEY"`

	// BaseURL of the Pocket API (e.g. "https://getpocket.com").
	// Env: POCKET_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every upstream call.
	// Env: POCKET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the minimal interval between two upstream calls.
	// Env: POCKET_RATE_LIMIT
	RateLimit time.Duration `env:"RATE_LIMIT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the proxy server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds the OAuth callback listener settings of the client.
type Auth struct {
	// CallbackAddress is the "host:port" the client listens on for the
	// access token redirect.
	// Env: AUTH_CALLBACK_ADDRESS
	CallbackAddress string `env:"CALLBACK_ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RetryInterval is how often failed deletes are retried.
	// Env: WORKERS_RETRY_INTERVAL
	RetryInterval time.Duration `env:"RETRY_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first non-zero value wins in
// this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
