// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackListener_HandlerRedirectsOnce(t *testing.T) {
	s := NewSession(&memoryStore{})
	l := NewCallbackListener("127.0.0.1:0", s, logger.Nop())
	router := l.Init()

	// first hit carries the token
	req := httptest.NewRequest(http.MethodGet, "/callback?access_token=tok&x=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/callback?x=1", rec.Header().Get("Location"))
	assert.Equal(t, "tok", s.Token())

	select {
	case got := <-l.Tokens():
		assert.Equal(t, "tok", got)
	default:
		t.Fatal("expected a token on the channel")
	}

	// the cleaned URL renders the confirmation page
	req = httptest.NewRequest(http.MethodGet, "/callback?x=1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pageLoggedIn, rec.Body.String())
}

func TestCallbackListener_HandlerWithoutToken(t *testing.T) {
	l := NewCallbackListener("127.0.0.1:0", NewSession(&memoryStore{}), logger.Nop())

	rec := httptest.NewRecorder()
	l.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, pageNoToken, rec.Body.String())
}

func TestCallbackListener_HandlerEmptyToken(t *testing.T) {
	l := NewCallbackListener("127.0.0.1:0", NewSession(&memoryStore{}), logger.Nop())

	rec := httptest.NewRecorder()
	l.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?access_token=", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCallbackListener_StartAndClose(t *testing.T) {
	s := NewSession(&memoryStore{})
	l := NewCallbackListener("127.0.0.1:0", s, logger.Nop())

	require.NoError(t, l.Start(context.Background()))
	assert.ErrorIs(t, l.Start(context.Background()), ErrListenerAlreadyActive)

	client := &http.Client{
		Timeout: 2 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(l.CallbackURL() + "?access_token=live")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "live", <-l.Tokens())

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	_, err = client.Get(l.CallbackURL())
	assert.Error(t, err)
}

func TestCallbackListener_StopsWithContext(t *testing.T) {
	l := NewCallbackListener("127.0.0.1:0", NewSession(&memoryStore{}), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, l.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool {
		_, err := (&http.Client{Timeout: 200 * time.Millisecond}).Get(l.CallbackURL())
		return err != nil
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, l.Close())
}

func TestCallbackListener_StartBadAddress(t *testing.T) {
	l := NewCallbackListener("256.0.0.1:99999", NewSession(&memoryStore{}), logger.Nop())
	require.Error(t, l.Start(context.Background()))
}
