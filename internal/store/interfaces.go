// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the client-side SQLite persistence: the session key/value
// table that holds the access token and the outbox of deletes that failed to
// reach the server.
package store

import (
	"context"

	"github.com/kevinlebrun/pocket-triage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository is a small key/value store scoped to the local user.
type SessionRepository interface {
	// GetValue returns [ErrSessionValueNotFound] when key is absent.
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

// PendingDeleteRepository is the outbox of link ids whose delete failed.
type PendingDeleteRepository interface {
	// Enqueue records ids with the error that made the delete fail. Ids that
	// are already queued get their attempt counter bumped.
	Enqueue(ctx context.Context, ids []string, lastErr string) error
	// List returns every queued record, oldest first.
	List(ctx context.Context) ([]models.PendingDelete, error)
	// MarkFailed bumps the attempt counter of ids after a failed retry.
	MarkFailed(ctx context.Context, ids []string, lastErr string) error
	// Remove drops ids from the outbox.
	Remove(ctx context.Context, ids []string) error
}
