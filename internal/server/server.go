// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/handler"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx, s.httpServer.RunServer)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run starts serve in the background and blocks until ctx is done, then
// shuts the server down.
func (s *server) run(ctx context.Context, serve func()) {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.logger.Info().Str("addr", s.httpServer.server.Addr).Msg("Launching HTTP server")
		serve()
	}()

	select {
	case <-ctx.Done():
	case <-stopped:
		s.logger.Warn().Msg("HTTP server stopped on its own")
		return
	}

	s.Shutdown()
	<-stopped
	s.logger.Info().Msg("server Shutdown gracefully")
}
