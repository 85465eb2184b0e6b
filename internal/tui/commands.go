// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kevinlebrun/pocket-triage/internal/service"
	"github.com/kevinlebrun/pocket-triage/models"
)

func (m Model) cmdWaitForToken() tea.Cmd {
	tokens := m.opts.Tokens
	if tokens == nil {
		return nil
	}

	ctx := m.ctx
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-tokens:
			return tokenCapturedMsg{}
		}
	}
}

func (m Model) cmdFetch() tea.Cmd {
	ctx := m.ctx
	svc := m.links
	return func() tea.Msg {
		links, err := svc.Fetch(ctx)
		return linksLoadedMsg{links: links, err: err}
	}
}

// cmdDelete forwards batch without blocking the review. Empty batches are
// not sent.
func (m Model) cmdDelete(batch []models.Link) tea.Cmd {
	if len(batch) == 0 {
		return nil
	}

	// a batch handed out by the session is delivered or queued even when
	// the UI is shutting down
	ctx := context.WithoutCancel(m.ctx)
	svc := m.links
	wg := m.deletes
	wg.Add(1)

	return func() tea.Msg {
		defer wg.Done()

		err := svc.Delete(ctx, batch)
		pending, countErr := svc.PendingCount(ctx)
		if countErr != nil {
			pending = -1
		}
		return deleteDoneMsg{count: len(batch), err: err, pending: pending}
	}
}

func (m Model) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	if msg.pending >= 0 {
		m.pending = msg.pending
	}

	switch {
	case msg.err == nil:
		return m, nil
	case errors.Is(msg.err, service.ErrDeleteQueued):
		m.status = fmt.Sprintf("Could not delete %d items, queued for retry", msg.count)
	default:
		m.status = "Delete failed: " + humanizeServerUnavailableError(msg.err)
	}
	return m, cmdClearStatus()
}

func (m Model) cmdCopy(what, text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
