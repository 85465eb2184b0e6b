// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/workers"
)

type App struct {
	ui       UI
	listener Listener
	workers  workers.Worker
	storage  io.Closer
	logger   *logger.Logger
}

// NewApp assembles the client runtime. storage is closed when Run returns.
func NewApp(ui UI, listener Listener, bg workers.Worker, storage io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		ui:       ui,
		listener: listener,
		workers:  bg,
		storage:  storage,
		logger:   logger,
	}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if a.storage != nil {
		defer func() {
			if err := a.storage.Close(); err != nil {
				a.logger.Err(err).Str("func", "App.run").Msg("error closing local storage")
			}
		}()
	}

	if a.listener != nil {
		// without the listener a stored token still works, only a new login
		// cannot be captured
		if err := a.listener.Start(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("callback listener not started")
		} else {
			defer func() {
				if err := a.listener.Close(); err != nil {
					a.logger.Err(err).Str("func", "App.run").Msg("error closing callback listener")
				}
			}()
		}
	}

	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
