// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pocket

import "errors"

var (
	// ErrUnauthorized is returned when Pocket rejects the consumer key or
	// the access token (401 or 403).
	ErrUnauthorized = errors.New("pocket rejected credentials")

	// ErrUpstream covers every other non-2xx answer.
	ErrUpstream = errors.New("pocket request failed")

	ErrMalformedResponse = errors.New("malformed pocket response")
	ErrRateLimited       = errors.New("pocket rate limit wait aborted")
)
