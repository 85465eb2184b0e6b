// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/kevinlebrun/pocket-triage/models"

// tokenCapturedMsg is sent once the callback listener stored a token.
type tokenCapturedMsg struct{}

type linksLoadedMsg struct {
	links []models.Link
	err   error
}

// deleteDoneMsg reports one forwarded batch. pending is the outbox size
// after the attempt, or -1 when it could not be read.
type deleteDoneMsg struct {
	count   int
	err     error
	pending int
}

type copiedMsg struct {
	what string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
