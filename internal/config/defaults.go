// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultPageSize          = 10
	DefaultBaseURL           = "http://localhost:8080"
	DefaultServerAddress     = "localhost:8080"
	DefaultCallbackAddress   = "localhost:8081"
	DefaultClientCallbackURL = "http://localhost:8081/callback"
	DefaultPocketBaseURL     = "https://getpocket.com"
	DefaultDSN               = "pocket-triage.db"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRetryInterval     = time.Minute
	DefaultPocketRateLimit   = 200 * time.Millisecond
)

// defaultConfig is merged last, so it only fills fields no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PageSize: DefaultPageSize,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:       DefaultServerAddress,
			RequestTimeout:    DefaultRequestTimeout,
			PublicURL:         DefaultBaseURL,
			ClientCallbackURL: DefaultClientCallbackURL,
		},
		Pocket: Pocket{
			BaseURL:        DefaultPocketBaseURL,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit:      DefaultPocketRateLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Auth: Auth{
			CallbackAddress: DefaultCallbackAddress,
		},
		Workers: Workers{
			RetryInterval: DefaultRetryInterval,
		},
	}
}
