// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/utils"
	"github.com/kevinlebrun/pocket-triage/models"
)

// TokenHeader carries the Pocket access token on every authenticated call.
const TokenHeader = "token"

const (
	linksPath        = "/links"
	oauthRequestPath = "/oauth/request"
)

type httpLinksAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	tokens  TokenSource

	logger *logger.Logger
}

// NewHTTPLinksAdapter constructs the HTTP implementation of [LinksAdapter].
// The base URL from adapterCfg.HTTPAddress is normalised ("host:port" gains
// an http scheme, trailing slashes are dropped) and every request is bounded
// by adapterCfg.RequestTimeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPLinksAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (LinksAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpLinksAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		tokens:  tokens,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpLinksAdapter) IsAuthenticated() bool {
	return h.token() != ""
}

func (h *httpLinksAdapter) OauthURL() string {
	return h.baseURL + oauthRequestPath
}

// FetchLinks implements [LinksAdapter]. It GETs /links and decodes the
// ordered `list` object with [DecodeRawLink].
func (h *httpLinksAdapter) FetchLinks(ctx context.Context) ([]models.Link, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(linksPath)
	if err != nil {
		return nil, fmt.Errorf("fetch links request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.LinksResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode links response: %w", err)
	}

	links := DecodeLinks(body.List)
	h.logger.Debug().Int("count", len(links)).Msg("links fetched")

	return links, nil
}

// DeleteLinks implements [LinksAdapter]. It sends DELETE /links with the
// ordered JSON array of ids.
func (h *httpLinksAdapter) DeleteLinks(ctx context.Context, links []models.Link) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	ids := ExtractIDs(links)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(ids).
		Delete(linksPath)
	if err != nil {
		return fmt.Errorf("delete links request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Int("count", len(ids)).Msg("links deleted")
	return nil
}

func (h *httpLinksAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(TokenHeader, token), nil
}

func (h *httpLinksAdapter) token() string {
	if h.tokens == nil {
		return ""
	}
	return strings.TrimSpace(h.tokens.Token())
}
