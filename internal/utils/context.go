// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client and the
// proxy server: typed context keys, JSON response writing, the resty-backed
// HTTP client and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AccessTokenCtxKey is the key under which the token middleware stores the
// Pocket access token of the current request.
var AccessTokenCtxKey = contextKey("accessToken")

// WithAccessToken returns a copy of ctx carrying token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AccessTokenCtxKey, token)
}

// GetAccessTokenFromContext retrieves the Pocket access token from ctx.
//
// ok is false when the value is missing, has an unexpected type or is empty.
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	return token, ok && token != ""
}
