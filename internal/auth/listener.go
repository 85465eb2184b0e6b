// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
)

// CallbackPath receives the browser redirect carrying the access token.
const CallbackPath = "/callback"

const (
	pageLoggedIn = "Logged in to pocket-triage. You can close this tab and return to your terminal.\n"
	pageNoToken  = "No access token received. Start the login again from your terminal.\n"
)

// CallbackListener is the local HTTP endpoint the proxy server redirects the
// browser to once Pocket has granted access. It lives as long as the terminal
// UI: Start acquires the port, Close releases it.
type CallbackListener struct {
	addr    string
	session *Session
	logger  *logger.Logger

	tokens chan string

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	done     chan struct{}
	wg       sync.WaitGroup
}

func NewCallbackListener(addr string, session *Session, logger *logger.Logger) *CallbackListener {
	return &CallbackListener{
		addr:    addr,
		session: session,
		logger:  logger,
		tokens:  make(chan string, 1),
	}
}

// Init builds the listener routes.
func (c *CallbackListener) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get(CallbackPath, c.handleCallback)

	return router
}

// Start binds the address and serves in the background until ctx is done or
// Close is called.
func (c *CallbackListener) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.server != nil {
		return ErrListenerAlreadyActive
	}

	ln, err := net.Listen("tcp", c.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", c.addr, err)
	}

	c.listener = ln
	c.server = &http.Server{
		Handler:           c.Init(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	server := c.server
	done := make(chan struct{})
	c.done = done

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.logger.Err(err).Str("func", "CallbackListener.Start").Msg("callback listener stopped")
		}
	}()
	go func() {
		defer c.wg.Done()
		select {
		case <-ctx.Done():
			_ = server.Close()
		case <-done:
		}
	}()

	c.logger.Info().Str("addr", ln.Addr().String()).Msg("callback listener started")
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (c *CallbackListener) Addr() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listener != nil {
		return c.listener.Addr().String()
	}
	return c.addr
}

// CallbackURL is the URL the proxy server must redirect to.
func (c *CallbackListener) CallbackURL() string {
	return "http://" + c.Addr() + CallbackPath
}

// Tokens delivers every captured token. The channel holds at most one
// unread token; older unread tokens are superseded by the session itself.
func (c *CallbackListener) Tokens() <-chan string {
	return c.tokens
}

// Close stops the listener and waits for its goroutines. Calling it more
// than once, or before Start, is a no-op.
func (c *CallbackListener) Close() error {
	c.mu.Lock()
	server, done := c.server, c.done
	c.server, c.done = nil, nil
	c.mu.Unlock()

	if server == nil {
		return nil
	}
	close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := server.Shutdown(ctx)
	c.wg.Wait()
	if err != nil {
		return fmt.Errorf("callback listener shutdown: %w", err)
	}
	return nil
}

func (c *CallbackListener) handleCallback(w http.ResponseWriter, r *http.Request) {
	cleaned, captured, err := Bootstrap(r.Context(), c.session, r.URL)
	if err != nil {
		c.logger.Err(err).Str("func", "CallbackListener.handleCallback").Msg("failed to store access token")
		http.Error(w, "could not store access token", http.StatusBadRequest)
		return
	}

	if captured {
		select {
		case c.tokens <- c.session.Token():
		default:
		}

		c.logger.Info().Msg("access token captured")
		// one-time redirect so the token does not stay in browser history
		http.Redirect(w, r, cleaned.RequestURI(), http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if c.session.IsAuthenticated() {
		_, _ = w.Write([]byte(pageLoggedIn))
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(pageNoToken))
}
