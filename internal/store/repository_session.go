// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) GetValue(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectSessionValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionValueNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetValue").
			Str("key", key).
			Msg("failed to query session value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sessionRepository) SetValue(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertSessionValueQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SetValue").
			Str("key", key).
			Msg("failed to upsert session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) DeleteValue(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteSessionValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteValue").
			Str("key", key).
			Msg("failed to delete session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
