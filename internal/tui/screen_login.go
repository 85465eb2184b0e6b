// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy("login URL", m.links.OauthURL())
	}
	return m, nil
}

func (m Model) viewLogin() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("You are not logged!"))
	b.WriteString("\n\nOpen this URL in your browser to log in with Pocket:\n\n  ")
	b.WriteString(urlStyle.Render(m.links.OauthURL()))
	b.WriteString("\n")
	if m.opts.CallbackURL != "" {
		b.WriteString("\nWaiting for the login to come back on ")
		b.WriteString(m.opts.CallbackURL)
		b.WriteString("\n")
	}

	return renderPage("pocket-triage", b.String(), "c copy URL  q quit", m.footer())
}
