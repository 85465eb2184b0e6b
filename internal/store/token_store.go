// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
)

// TokenKey is the session key the access token is stored under.
const TokenKey = "token"

// TokenStore keeps the access token in the session table.
type TokenStore struct {
	repo SessionRepository
}

func NewTokenStore(repo SessionRepository) *TokenStore {
	return &TokenStore{repo: repo}
}

// GetToken returns the stored token, or "" when none is stored.
func (t *TokenStore) GetToken(ctx context.Context) (string, error) {
	token, err := t.repo.GetValue(ctx, TokenKey)
	if errors.Is(err, ErrSessionValueNotFound) {
		return "", nil
	}
	return token, err
}

func (t *TokenStore) SetToken(ctx context.Context, token string) error {
	return t.repo.SetValue(ctx, TokenKey, token)
}

func (t *TokenStore) DeleteToken(ctx context.Context) error {
	return t.repo.DeleteValue(ctx, TokenKey)
}
