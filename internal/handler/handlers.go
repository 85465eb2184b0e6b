// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the proxy server's transport handlers together
// with the Pocket client they delegate to.
package handler

import (
	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/handler/http"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/pocket"
	"github.com/kevinlebrun/pocket-triage/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the Pocket client for cfg.Pocket, wrapped in the dry-run
// decorator when cfg.Server.DryRun is set, and the HTTP handler over it.
func NewHandlers(cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	client := pocket.NewClient(cfg.Pocket, logger)
	if cfg.Server.DryRun {
		logger.Warn().Msg("dry run: deletes are logged, not sent to pocket")
		client = pocket.NewDryRunClient(client, logger)
	}

	return &Handlers{
		HTTP: http.NewHandler(client, cfg.Server, buildInfo, logger),
	}, nil
}
