// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxTitleWidth   = 72
	maxExcerptWidth = 96
)

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.down):
		s.MoveDown()
	case key.Matches(msg, keys.up):
		s.MoveUp()
	case key.Matches(msg, keys.keep):
		s.ToggleKeep()
	case key.Matches(msg, keys.advance), key.Matches(msg, keys.next):
		batch := s.AdvancePage()
		if s.Done() {
			m.screen = screenDone
		}
		return m, m.cmdDelete(batch)
	case key.Matches(msg, keys.copyURL):
		if link, ok := s.Selected(); ok {
			return m, m.cmdCopy("URL", link.URL)
		}
	}
	return m, nil
}

func (m Model) viewReview() string {
	s := m.session
	var b strings.Builder

	b.WriteString(fmt.Sprintf("page %d of %d, %d items", s.PageIndex(), s.PageCount(), s.Total()))
	b.WriteString("    ")
	b.WriteString(fmt.Sprintf("%d deleted", s.Deleted()))
	b.WriteString("\n\n")

	for i, link := range s.Page() {
		cursor := "  "
		title := fitText(link.Title, maxTitleWidth)
		if i == s.Row() {
			cursor = "> "
			title = selectedStyle.Render(title)
		}

		marker := "[ ]"
		if s.IsKept(link) {
			marker = keptStyle.Render("[k]")
		}

		favorite := " "
		if link.Favorite {
			favorite = favoriteStyle.Render("★")
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, marker, favorite, title))
		b.WriteString("        " + urlStyle.Render(link.URL) + "\n")
		if excerpt := oneLine(link.Excerpt); excerpt != "" {
			b.WriteString("        " + helpStyle.Render(fitText(excerpt, maxExcerptWidth)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(buttonStyle.Render("Next (n)"))

	return renderPage(
		"pocket-triage",
		b.String(),
		"space keep  enter/n next page  j/k move  y copy URL  q quit",
		m.footer(),
	)
}

func (m Model) viewDone() string {
	body := fmt.Sprintf(
		"Well done! You went through all of your items.\n\nYou deleted %d items.",
		m.session.Deleted(),
	)
	return renderPage("pocket-triage", body, "press any key to quit", m.footer())
}

// footer shows the transient status, the outbox size and the version.
func (m Model) footer() string {
	var parts []string
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if m.pending > 0 {
		parts = append(parts, fmt.Sprintf("%d deletes queued for retry", m.pending))
	}
	if v := m.opts.BuildInfo.BuildVersion(); v != "" && v != "N/A" {
		parts = append(parts, helpStyle.Render("v"+v))
	}
	return strings.Join(parts, "  ·  ")
}
