// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/handler"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Server: config.Server{
			HTTPAddress:       "127.0.0.1:0",
			RequestTimeout:    time.Second,
			PublicURL:         "http://localhost:8080",
			ClientCallbackURL: "http://localhost:8081/callback",
		},
		Pocket: config.Pocket{ConsumerKey: "consumer", BaseURL: "http://127.0.0.1:1"},
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesUntilContextDone(t *testing.T) {
	cfg := newTestServerConfig()
	handlers, err := handler.NewHandlers(cfg, models.NewAppBuildInfo("9.9.9", "", ""), logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.run(ctx, func() { s.httpServer.serve(ln) })
	}()

	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "9.9.9", string(body))

	cancel()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + addr + "/version")
	assert.Error(t, err)
}
