// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingToken is returned when a /links request has no token header.
	ErrMissingToken = errors.New("missing `token` header")

	// ErrMissingRequestToken is returned by /oauth/access_token when the
	// request_token query parameter is absent.
	ErrMissingRequestToken = errors.New("missing request_token")

	ErrInvalidBody = errors.New("body must be a JSON array of item ids")

	// ErrInvalidIDs is returned when the array decodes but its ids are not
	// accepted by Pocket.
	ErrInvalidIDs = errors.New("invalid item ids")
)
