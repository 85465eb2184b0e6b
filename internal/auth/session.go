// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth holds the client's authentication context: the access token
// captured from the OAuth redirect and the local listener that receives it.
package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

//go:generate mockgen -source=session.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore persists the access token between runs.
type TokenStore interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context) error
}

// Session is the explicit auth context handed to the API client and the
// terminal UI. It caches the token in memory and writes through to the
// store. Safe for concurrent use.
type Session struct {
	store TokenStore

	mu    sync.RWMutex
	token string
}

func NewSession(store TokenStore) *Session {
	return &Session{store: store}
}

// Load reads the persisted token, if any.
func (s *Session) Load(ctx context.Context) error {
	token, err := s.store.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}

	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.mu.Unlock()

	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetToken stores token. An empty token is rejected.
func (s *Session) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return nil
}

// Clear forgets the token, e.g. after the server rejected it.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.store.DeleteToken(ctx); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
