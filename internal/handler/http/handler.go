// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/pocket"
	"github.com/kevinlebrun/pocket-triage/internal/utils"
	"github.com/kevinlebrun/pocket-triage/internal/validators"
	"github.com/kevinlebrun/pocket-triage/models"
)

type Handler struct {
	pocket    pocket.Client
	cfg       config.Server
	buildInfo models.AppBuildInfo
	traceIDs  *utils.TraceIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(client pocket.Client, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Bool("dry_run", cfg.DryRun).Msg("http handler created")
	return &Handler{
		pocket:    client,
		cfg:       cfg,
		buildInfo: buildInfo,
		traceIDs:  utils.NewTraceIDGenerator(),
		validator: validators.NewPocketActionsValidator(),
		logger:    logger,
	}
}
