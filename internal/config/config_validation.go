// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
)

// validate checks the invariants shared by every binary. Source-specific
// requirements live on [ClientConfig] and [ServerConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.PageSize < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !isHTTPURL(cfg.Adapter.HTTPAddress) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RetryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.PageSize <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Auth.CallbackAddress == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if !isHTTPURL(cfg.Server.PublicURL) || !isHTTPURL(cfg.Server.ClientCallbackURL) {
		return ErrInvalidServerConfigs
	}

	if cfg.Pocket.ConsumerKey == "" || !isHTTPURL(cfg.Pocket.BaseURL) || cfg.Pocket.RequestTimeout <= 0 {
		return ErrInvalidPocketConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
