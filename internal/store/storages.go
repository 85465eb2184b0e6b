// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	SessionRepository       SessionRepository
	PendingDeleteRepository PendingDeleteRepository
	TokenStore              *TokenStore

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN (creating
// the file if needed), applies migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	sessions := NewSessionRepository(db, logger)

	return &ClientStorages{
		SessionRepository:       sessions,
		PendingDeleteRepository: NewPendingDeleteRepository(db, logger),
		TokenStore:              NewTokenStore(sessions),
		db:                      db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
