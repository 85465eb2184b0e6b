// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"net/url"
)

// AccessTokenParam is the query parameter the server redirects with.
const AccessTokenParam = "access_token"

// Bootstrap captures the access token from u. When the query holds
// access_token, the token is stored in session and a copy of u without that
// parameter is returned with captured set. Otherwise u is returned unchanged.
func Bootstrap(ctx context.Context, session *Session, u *url.URL) (*url.URL, bool, error) {
	query := u.Query()
	if !query.Has(AccessTokenParam) {
		return u, false, nil
	}

	if err := session.SetToken(ctx, query.Get(AccessTokenParam)); err != nil {
		return u, false, err
	}

	query.Del(AccessTokenParam)
	cleaned := *u
	cleaned.RawQuery = query.Encode()

	return &cleaned, true, nil
}
