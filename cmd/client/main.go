// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/kevinlebrun/pocket-triage/internal/adapter"
	"github.com/kevinlebrun/pocket-triage/internal/auth"
	"github.com/kevinlebrun/pocket-triage/internal/client"
	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/service"
	"github.com/kevinlebrun/pocket-triage/internal/store"
	"github.com/kevinlebrun/pocket-triage/internal/tui"
	"github.com/kevinlebrun/pocket-triage/internal/workers"
	"github.com/kevinlebrun/pocket-triage/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("pocket-triage-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	session := auth.NewSession(localStorage.TokenStore)
	if err = session.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("load session")
	}

	linksAdapter, err := adapter.NewHTTPLinksAdapter(cfg.Adapter, session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create links adapter")
	}

	services := service.NewClientServices(localStorage, linksAdapter, session, cfg.Workers.RetryInterval, log)
	listener := auth.NewCallbackListener(cfg.Auth.CallbackAddress, session, log)

	ui := tui.New(services.LinkService, tui.Options{
		PageSize:    cfg.App.PageSize,
		CallbackURL: listener.CallbackURL(),
		Tokens:      listener.Tokens(),
		BuildInfo:   models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, log)

	app, err := client.NewApp(ui, listener, workers.NewWorkers(services.RetryJob), localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
