// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pocket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/utils"
	"github.com/kevinlebrun/pocket-triage/models"
	"golang.org/x/time/rate"
)

const (
	requestTokenPath = "/v3/oauth/request.php"
	authorizePath    = "/v3/oauth/authorize"
	getPath          = "/v3/get"
	sendPath         = "/v3/send"
	authPagePath     = "/auth/authorize"

	// pocketErrorHeader carries Pocket's error description.
	pocketErrorHeader = "X-Error"
)

type httpClient struct {
	client      *utils.HTTPClient
	baseURL     string
	consumerKey string
	limiter     *rate.Limiter

	logger *logger.Logger
}

// NewClient builds the HTTP implementation of [Client]. One request is let
// through per cfg.RateLimit (no limit when zero), and each request is
// bounded by cfg.RequestTimeout.
func NewClient(cfg config.Pocket, log *logger.Logger) Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Every(cfg.RateLimit)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	return &httpClient{
		client:      utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL:     baseURL,
		consumerKey: cfg.ConsumerKey,
		limiter:     rate.NewLimiter(limit, 1),
		logger:      log.Component("pocket"),
	}
}

func (c *httpClient) RequestToken(ctx context.Context, redirectURI string) (string, error) {
	resp, err := c.post(ctx, requestTokenPath, func(r *resty.Request) {
		r.SetFormData(map[string]string{
			"consumer_key": c.consumerKey,
			"redirect_uri": redirectURI,
		})
	})
	if err != nil {
		return "", err
	}

	values, err := url.ParseQuery(string(resp.Body()))
	if err != nil || values.Get("code") == "" {
		return "", fmt.Errorf("%w: no request token in %q", ErrMalformedResponse, resp.String())
	}

	return values.Get("code"), nil
}

func (c *httpClient) AuthorizeURL(requestToken, redirectURI string) string {
	query := url.Values{}
	query.Set("request_token", requestToken)
	query.Set("redirect_uri", redirectURI)

	return c.baseURL + authPagePath + "?" + query.Encode()
}

func (c *httpClient) AccessToken(ctx context.Context, requestToken string) (string, error) {
	resp, err := c.post(ctx, authorizePath, func(r *resty.Request) {
		r.SetFormData(map[string]string{
			"consumer_key": c.consumerKey,
			"code":         requestToken,
		})
	})
	if err != nil {
		return "", err
	}

	values, err := url.ParseQuery(string(resp.Body()))
	if err != nil || values.Get("access_token") == "" {
		return "", fmt.Errorf("%w: no access token in response", ErrMalformedResponse)
	}

	return values.Get("access_token"), nil
}

func (c *httpClient) Get(ctx context.Context, accessToken string) ([]byte, error) {
	body := models.PocketGetRequest{
		PocketAuth: c.auth(accessToken),
		State:      models.PocketStateUnread,
		DetailType: models.PocketDetailComplete,
		Count:      models.PocketMaxCount,
		Offset:     0,
	}

	resp, err := c.post(ctx, getPath, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	})
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *httpClient) Send(ctx context.Context, accessToken string, actions []models.PocketAction) ([]byte, error) {
	body := models.PocketSendRequest{
		PocketAuth: c.auth(accessToken),
		Actions:    actions,
	}

	resp, err := c.post(ctx, sendPath, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	})
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *httpClient) auth(accessToken string) models.PocketAuth {
	return models.PocketAuth{ConsumerKey: c.consumerKey, AccessToken: accessToken}
}

// post waits for the rate limiter, sends the request and maps the status.
func (c *httpClient) post(ctx context.Context, path string, build func(r *resty.Request)) (*resty.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	req := c.client.R().SetContext(ctx)
	build(req)

	start := time.Now()
	resp, err := req.Post(path)
	if err != nil {
		c.logger.Err(err).Str("func", "httpClient.post").Str("path", path).Msg("pocket request failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("pocket request")

	if err = mapStatus(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func mapStatus(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= 200 && status < 300 {
		return nil
	}

	reason := resp.Header().Get(pocketErrorHeader)
	if reason == "" {
		reason = http.StatusText(status)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %d %s", ErrUnauthorized, status, reason)
	default:
		return fmt.Errorf("%w: %d %s", ErrUpstream, status, reason)
	}
}
