// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ServerConfig is the proxy server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App    App
	Server Server
	Pocket Pocket
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(cfg)
}

// NewServerConfig maps the server-relevant fields of cfg and validates them.
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Pocket: cfg.Pocket,
	}

	return serverCfg, serverCfg.validate()
}
