// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of pocket-triage: the login prompt,
// the paged review of saved links and the final summary.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/service"
)

// deleteDrainTimeout bounds how long Run waits for in-flight deletes after
// the user quits.
const deleteDrainTimeout = 10 * time.Second

type TUI struct {
	links  service.LinkService
	opts   Options
	logger *logger.Logger
}

func New(links service.LinkService, opts Options, logger *logger.Logger) *TUI {
	return &TUI{links: links, opts: opts, logger: logger}
}

// Run shows the UI until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := NewModel(ctx, t.links, t.opts)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	result, ok := finalModel.(Model)
	if !ok {
		// killed through ctx: the initial model still tracks the deletes
		result = model
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deleteDrainTimeout)
	defer cancel()
	if err := result.WaitForDeletes(drainCtx); err != nil {
		t.logger.Warn().Err(err).Msg("quit before every delete finished")
	}

	if s := result.Session(); s != nil {
		t.logger.Info().
			Int("total", s.Total()).
			Int("deleted", s.Deleted()).
			Bool("done", s.Done()).
			Msg("review finished")
	}
	return nil
}
