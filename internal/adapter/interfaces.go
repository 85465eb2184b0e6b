// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the pocket-triage proxy
// server.
//
// The primary abstraction is [LinksAdapter], which decouples the service and
// presentation layers from HTTP. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/kevinlebrun/pocket-triage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/links_adapter_mock.go -package=mock

// LinksAdapter is the API client used by the triage client.
type LinksAdapter interface {
	// IsAuthenticated reports whether a non-empty access token is available.
	IsAuthenticated() bool

	// OauthURL returns the URL the user opens in a browser to log in.
	OauthURL() string

	// FetchLinks returns the full, unpaginated link list in server order.
	FetchLinks(ctx context.Context) ([]models.Link, error)

	// DeleteLinks deletes the given links by id. Order is preserved and one id
	// is sent per link.
	DeleteLinks(ctx context.Context, links []models.Link) error
}

// TokenSource supplies the access token attached to authenticated requests.
type TokenSource interface {
	Token() string
}
