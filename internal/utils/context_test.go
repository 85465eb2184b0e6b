// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if AccessTokenCtxKey.String() != "accessToken" {
		t.Errorf("expected 'accessToken', got '%s'", AccessTokenCtxKey.String())
	}
}

func TestGetAccessTokenFromContext_Success(t *testing.T) {
	ctx := WithAccessToken(context.Background(), "tok-123")

	token, ok := GetAccessTokenFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if token != "tok-123" {
		t.Errorf("expected token 'tok-123', got '%s'", token)
	}
}

func TestGetAccessTokenFromContext_Missing(t *testing.T) {
	token, ok := GetAccessTokenFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if token != "" {
		t.Errorf("expected empty token, got '%s'", token)
	}
}

func TestGetAccessTokenFromContext_Empty(t *testing.T) {
	ctx := WithAccessToken(context.Background(), "")

	if _, ok := GetAccessTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty token, got true")
	}
}

func TestGetAccessTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccessTokenCtxKey, 42)

	if _, ok := GetAccessTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetAccessTokenFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "tok")

	if _, ok := GetAccessTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
