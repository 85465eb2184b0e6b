// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/kevinlebrun/pocket-triage/internal/adapter"
	"github.com/kevinlebrun/pocket-triage/internal/auth"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/store"
	"github.com/kevinlebrun/pocket-triage/internal/validators"
	"github.com/kevinlebrun/pocket-triage/models"
)

type linkService struct {
	adapter adapter.LinksAdapter
	pending store.PendingDeleteRepository
	session *auth.Session
	logger  *logger.Logger

	// serialises outbox retries
	retryMu sync.Mutex
}

// NewLinkService creates a LinkService backed by the proxy adapter and the
// local outbox.
func NewLinkService(
	linksAdapter adapter.LinksAdapter,
	pending store.PendingDeleteRepository,
	session *auth.Session,
	log *logger.Logger,
) LinkService {
	return &linkService{
		adapter: linksAdapter,
		pending: pending,
		session: session,
		logger:  log.Component("link-service"),
	}
}

func (s *linkService) IsAuthenticated() bool {
	return s.adapter.IsAuthenticated()
}

func (s *linkService) OauthURL() string {
	return s.adapter.OauthURL()
}

func (s *linkService) Fetch(ctx context.Context) ([]models.Link, error) {
	links, err := s.adapter.FetchLinks(ctx)
	if err != nil {
		err = s.handleAdapterError(ctx, err)
		s.logger.Err(err).Str("func", "linkService.Fetch").Msg("error fetching links")
		return nil, err
	}

	s.logger.Debug().Int("count", len(links)).Msg("links fetched")
	return links, nil
}

func (s *linkService) Delete(ctx context.Context, links []models.Link) error {
	if len(links) == 0 {
		return nil
	}

	var (
		firstErr error
		queued   []string
	)
	for chunk := range slices.Chunk(links, validators.MaxBatchSize) {
		err := s.adapter.DeleteLinks(ctx, chunk)
		if err == nil {
			continue
		}

		err = s.handleAdapterError(ctx, err)
		if firstErr == nil {
			firstErr = err
		}
		// a rejected batch would be rejected again on every retry
		if errors.Is(err, ErrServerRejected) {
			s.logger.Err(err).Str("func", "linkService.Delete").Strs("ids", adapter.ExtractIDs(chunk)).Msg("server rejected delete")
			continue
		}
		queued = append(queued, adapter.ExtractIDs(chunk)...)
	}

	if firstErr == nil {
		s.logger.Debug().Int("count", len(links)).Msg("links deleted")
		return nil
	}
	if len(queued) == 0 {
		return firstErr
	}

	if enqueueErr := s.pending.Enqueue(ctx, queued, firstErr.Error()); enqueueErr != nil {
		s.logger.Err(enqueueErr).Str("func", "linkService.Delete").Strs("ids", queued).Msg("error queueing failed delete")
		return errors.Join(firstErr, enqueueErr)
	}

	s.logger.Warn().Err(firstErr).Str("func", "linkService.Delete").Strs("ids", queued).Msg("delete failed, queued for retry")
	return fmt.Errorf("%w: %w", ErrDeleteQueued, firstErr)
}

func (s *linkService) RetryPending(ctx context.Context) (int, error) {
	s.retryMu.Lock()
	defer s.retryMu.Unlock()

	// without a token the retry would only bump attempts
	if !s.adapter.IsAuthenticated() {
		return 0, nil
	}

	pending, err := s.pending.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending deletes: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	delivered := 0
	for chunk := range slices.Chunk(models.PendingIDs(pending), validators.MaxBatchSize) {
		n, err := s.retryChunk(ctx, chunk)
		delivered += n
		if err != nil {
			return delivered, err
		}
	}

	s.logger.Info().Int("count", delivered).Msg("queued deletes delivered")
	return delivered, nil
}

// retryChunk sends ids in one request. When the server rejects a chunk its
// ids are resent one by one so only the refused ones are dropped.
func (s *linkService) retryChunk(ctx context.Context, ids []string) (int, error) {
	links := make([]models.Link, 0, len(ids))
	for _, id := range ids {
		links = append(links, models.Link{ID: id})
	}

	err := s.adapter.DeleteLinks(ctx, links)
	if err == nil {
		if err = s.pending.Remove(ctx, ids); err != nil {
			return 0, fmt.Errorf("remove delivered deletes: %w", err)
		}
		return len(ids), nil
	}

	err = s.handleAdapterError(ctx, err)
	if !errors.Is(err, ErrServerRejected) {
		if markErr := s.pending.MarkFailed(ctx, ids, err.Error()); markErr != nil {
			return 0, errors.Join(err, markErr)
		}
		return 0, err
	}

	if len(ids) > 1 {
		delivered := 0
		for _, id := range ids {
			n, err := s.retryChunk(ctx, []string{id})
			delivered += n
			if err != nil {
				return delivered, err
			}
		}
		return delivered, nil
	}

	s.logger.Warn().Err(err).Str("func", "linkService.retryChunk").Str("id", ids[0]).Msg("server rejected queued delete, dropping it")
	if err = s.pending.Remove(ctx, ids); err != nil {
		return 0, fmt.Errorf("remove rejected delete: %w", err)
	}
	return 0, nil
}

func (s *linkService) PendingCount(ctx context.Context) (int, error) {
	pending, err := s.pending.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending deletes: %w", err)
	}
	return len(pending), nil
}

// handleAdapterError maps err and forgets the token once the server has
// rejected it.
func (s *linkService) handleAdapterError(ctx context.Context, err error) error {
	err = mapAdapterError(err)
	if errors.Is(err, ErrNotLoggedIn) {
		if clearErr := s.session.Clear(ctx); clearErr != nil {
			s.logger.Err(clearErr).Str("func", "linkService.handleAdapterError").Msg("error clearing token")
		}
	}
	return err
}
