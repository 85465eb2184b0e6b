// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/models"
)

type pendingDeleteRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewPendingDeleteRepository(db *DB, logger *logger.Logger) PendingDeleteRepository {
	return &pendingDeleteRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (p *pendingDeleteRepository) Enqueue(ctx context.Context, ids []string, lastErr string) error {
	log := logger.FromContext(ctx)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	query, args, err := enqueuePendingQuery(ids, lastErr, p.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "pendingDeleteRepository.Enqueue").
			Int("count", len(ids)).
			Msg("failed to enqueue pending deletes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *pendingDeleteRepository) List(ctx context.Context) ([]models.PendingDelete, error) {
	log := logger.FromContext(ctx)

	query, args, err := listPendingQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "pendingDeleteRepository.List").
			Msg("failed to query pending deletes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.PendingDelete
	for rows.Next() {
		var item models.PendingDelete
		if err = rows.Scan(
			&item.ItemID,
			&item.Attempts,
			&item.LastError,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "pendingDeleteRepository.List").
				Msg("failed to scan pending delete row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (p *pendingDeleteRepository) MarkFailed(ctx context.Context, ids []string, lastErr string) error {
	log := logger.FromContext(ctx)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	query, args, err := markPendingFailedQuery(ids, lastErr, p.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "pendingDeleteRepository.MarkFailed").
			Int("count", len(ids)).
			Msg("failed to mark pending deletes as failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *pendingDeleteRepository) Remove(ctx context.Context, ids []string) error {
	log := logger.FromContext(ctx)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	query, args, err := removePendingQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "pendingDeleteRepository.Remove").
			Int("count", len(ids)).
			Msg("failed to remove pending deletes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
