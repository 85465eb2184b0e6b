// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kevinlebrun/pocket-triage/internal/review"
	"github.com/kevinlebrun/pocket-triage/internal/service"
	"github.com/kevinlebrun/pocket-triage/models"
)

type screen int

const (
	screenLogin screen = iota
	screenLoading
	screenEmpty
	screenReview
	screenDone
)

// Options configures a [Model].
type Options struct {
	// PageSize is the number of links per review page.
	PageSize int

	// CallbackURL is shown on the login screen.
	CallbackURL string

	// Tokens signals that the callback listener stored a token. May be nil.
	Tokens <-chan string

	BuildInfo models.AppBuildInfo
}

// Model is the terminal UI. It owns the review session; the link service
// only sees the delete batches the session hands out.
type Model struct {
	ctx   context.Context
	links service.LinkService
	opts  Options

	// copyText writes to the system clipboard
	copyText func(string) error

	screen   screen
	session  *review.Session
	spinner  spinner.Model
	fetchErr error

	status  string
	pending int

	// deletes tracks batches still in flight after the program quits
	deletes *sync.WaitGroup
}

func NewModel(ctx context.Context, links service.LinkService, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := Model{
		ctx:      ctx,
		links:    links,
		opts:     opts,
		copyText: clipboard.WriteAll,
		spinner:  s,
		screen:   screenLogin,
		deletes:  &sync.WaitGroup{},
	}
	if links.IsAuthenticated() {
		m.screen = screenLoading
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenLogin {
		return m.cmdWaitForToken()
	}
	return tea.Batch(m.spinner.Tick, m.cmdFetch())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tokenCapturedMsg:
		if m.screen != screenLogin {
			return m, nil
		}
		return m.startLoading()
	case linksLoadedMsg:
		return m.handleLinksLoaded(msg)
	case deleteDoneMsg:
		return m.handleDeleteDone(msg)
	case copiedMsg:
		m.status = "Copied " + msg.what + " to the clipboard"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = "Copy failed: " + msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.screen != screenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(keyMsg)
	case screenLoading, screenEmpty:
		return m.updateLoading(keyMsg)
	case screenReview:
		return m.updateReview(keyMsg)
	case screenDone:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenLoading, screenEmpty:
		return m.viewLoading()
	case screenReview:
		return m.viewReview()
	case screenDone:
		return m.viewDone()
	}
	return ""
}

// Session returns the review session, nil before the links are loaded.
func (m Model) Session() *review.Session {
	return m.session
}

// WaitForDeletes blocks until every forwarded batch has finished or ctx is
// done.
func (m Model) WaitForDeletes(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.deletes.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m Model) startLoading() (tea.Model, tea.Cmd) {
	m.screen = screenLoading
	m.fetchErr = nil
	return m, tea.Batch(m.spinner.Tick, m.cmdFetch())
}

func (m Model) updateLoading(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.retry):
		if m.screen == screenEmpty || m.fetchErr != nil {
			return m.startLoading()
		}
	}
	return m, nil
}
