// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/handler"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/server"
	"github.com/kevinlebrun/pocket-triage/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pocket-triage-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("public_url", cfg.Server.PublicURL).
		Str("pocket_url", cfg.Pocket.BaseURL).
		Bool("dry_run", cfg.Server.DryRun).
		Msg("received configs")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers, err := handler.NewHandlers(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
