// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kevinlebrun/pocket-triage/internal/review"
	"github.com/kevinlebrun/pocket-triage/internal/service"
)

func (m Model) handleLinksLoaded(msg linksLoadedMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenLoading {
		return m, nil
	}

	if msg.err != nil {
		if errors.Is(msg.err, service.ErrNotLoggedIn) {
			m.screen = screenLogin
			m.fetchErr = nil
			m.status = "Your Pocket session has expired, please log in again"
			return m, m.cmdWaitForToken()
		}
		m.fetchErr = msg.err
		return m, nil
	}

	m.session = review.NewSession(msg.links, m.opts.PageSize, nil)
	if m.session.Empty() {
		m.screen = screenEmpty
		return m, nil
	}

	m.screen = screenReview
	return m, nil
}

func (m Model) viewLoading() string {
	if m.screen == screenEmpty {
		return renderPage("pocket-triage", "Nothing to triage: your list is empty.", "r reload  q quit", m.footer())
	}

	if m.fetchErr != nil {
		body := errorStyle.Render("Could not load your links") + "\n\n" + humanizeServerUnavailableError(m.fetchErr)
		return renderPage("pocket-triage", body, "r retry  q quit", m.footer())
	}

	return renderPage("pocket-triage", m.spinner.View()+" Loading...", "q quit", m.footer())
}
