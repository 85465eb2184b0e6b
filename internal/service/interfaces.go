// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business logic between the terminal
// UI and the proxy adapter: fetching the link list, forwarding delete batches
// and keeping failed deletes in a local outbox until a retry succeeds.
package service

import (
	"context"

	"github.com/kevinlebrun/pocket-triage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LinkService is what the terminal UI talks to.
type LinkService interface {
	// IsAuthenticated reports whether an access token is available.
	IsAuthenticated() bool

	// OauthURL returns the URL that starts the browser login.
	OauthURL() string

	// Fetch returns every saved link in server order. A rejected token is
	// reported as [ErrNotLoggedIn] and the stored token is dropped.
	Fetch(ctx context.Context) ([]models.Link, error)

	// Delete forwards one batch of links to the server, split into
	// requests the server accepts. An empty batch is not sent. When a
	// request fails the ids are queued for retry and the returned error
	// wraps [ErrDeleteQueued]; ids the server rejects are not queued.
	Delete(ctx context.Context, links []models.Link) error

	// RetryPending sends the queued ids in chunks and returns how many were
	// delivered. Ids the server rejects are dropped from the queue.
	RetryPending(ctx context.Context) (int, error)

	// PendingCount returns the number of queued ids.
	PendingCount(ctx context.Context) (int, error)
}

// RetryJob periodically calls [LinkService.RetryPending].
type RetryJob interface {
	// Start runs one retry immediately, then one per interval until ctx is
	// done or Stop is called. A running job is stopped first.
	Start(ctx context.Context)

	// Stop cancels the job and waits for it to exit.
	Stop()
}
