// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pocket is the proxy server's client for the Pocket v3 API: the
// two-step OAuth handshake, fetching unread items and sending delete
// actions. Calls are rate limited and bounded by a timeout.
package pocket

import (
	"context"

	"github.com/kevinlebrun/pocket-triage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pocket_mock.go -package=mock

// Client talks to the Pocket API on behalf of one consumer key.
type Client interface {
	// RequestToken obtains an OAuth request token. redirectURI is where
	// Pocket sends the browser once the user has approved access.
	RequestToken(ctx context.Context, redirectURI string) (string, error)

	// AuthorizeURL is the Pocket page the user approves access on.
	AuthorizeURL(requestToken, redirectURI string) string

	// AccessToken exchanges an approved request token for an access token.
	AccessToken(ctx context.Context, requestToken string) (string, error)

	// Get returns the raw body of an unread, complete-detail item listing.
	Get(ctx context.Context, accessToken string) ([]byte, error)

	// Send posts a batch of actions and returns the raw response body.
	Send(ctx context.Context, accessToken string, actions []models.PocketAction) ([]byte, error)
}
