// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/kevinlebrun/pocket-triage/internal/app"
	"github.com/kevinlebrun/pocket-triage/internal/config"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/mock"
	"github.com/kevinlebrun/pocket-triage/internal/pocket"
	"github.com/kevinlebrun/pocket-triage/internal/validators"
	"github.com/kevinlebrun/pocket-triage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testServerConfig = config.Server{
	PublicURL:         "http://triage.local/",
	ClientCallbackURL: "http://localhost:8081/callback",
}

// newTestRouter builds the full route tree over a mocked Pocket client.
func newTestRouter(t *testing.T) (http.Handler, *mock.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)

	h := NewHandler(client, testServerConfig, models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())
	return h.Init(), client
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ── /version ─────────────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, versionPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

// ── /oauth ───────────────────────────────────────────────────────────────────

func TestOauthRequest_RedirectsToPocket(t *testing.T) {
	router, client := newTestRouter(t)

	gomock.InOrder(
		client.EXPECT().RequestToken(gomock.Any(), "http://triage.local/oauth/access_token").Return("req-1", nil),
		client.EXPECT().
			AuthorizeURL("req-1", "http://triage.local/oauth/access_token?request_token=req-1").
			Return("https://getpocket.com/auth/authorize?request_token=req-1"),
	)

	rec := serve(router, httptest.NewRequest(http.MethodGet, oauthRequestPath, nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://getpocket.com/auth/authorize?request_token=req-1", rec.Header().Get("Location"))
}

func TestOauthRequest_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "bad consumer key", err: fmt.Errorf("%w: 403 Forbidden", pocket.ErrUnauthorized), wantStatus: http.StatusUnauthorized},
		{name: "pocket down", err: fmt.Errorf("%w: 503", pocket.ErrUpstream), wantStatus: http.StatusBadGateway},
		{name: "garbage answer", err: pocket.ErrMalformedResponse, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, client := newTestRouter(t)
			client.EXPECT().RequestToken(gomock.Any(), gomock.Any()).Return("", tt.err)

			rec := serve(router, httptest.NewRequest(http.MethodGet, oauthRequestPath, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestOauthAccessToken_RedirectsToClient(t *testing.T) {
	router, client := newTestRouter(t)
	client.EXPECT().AccessToken(gomock.Any(), "req-1").Return("acc-9", nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, oauthAccessTokenPath+"?request_token=req-1", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:8081/callback?access_token=acc-9", rec.Header().Get("Location"))
}

func TestOauthAccessToken_MissingRequestToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, oauthAccessTokenPath, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOauthAccessToken_Rejected(t *testing.T) {
	router, client := newTestRouter(t)
	client.EXPECT().AccessToken(gomock.Any(), "req-1").Return("", pocket.ErrUnauthorized)

	rec := serve(router, httptest.NewRequest(http.MethodGet, oauthAccessTokenPath+"?request_token=req-1", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ── GET /links ───────────────────────────────────────────────────────────────

func TestGetLinks_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, linksPath, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"missing `+"`token`"+` header"}`, rec.Body.String())
}

func TestGetLinks_CopiesUpstreamBody(t *testing.T) {
	router, client := newTestRouter(t)
	const upstream = `{"status":1,"list":{"9":{"item_id":"9","given_url":"https://a"}}}`
	client.EXPECT().Get(gomock.Any(), "acc").Return([]byte(upstream), nil)

	req := httptest.NewRequest(http.MethodGet, linksPath, nil)
	req.Header.Set(tokenHeader, "acc")
	rec := serve(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, upstream, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestGetLinks_Gzip(t *testing.T) {
	router, client := newTestRouter(t)
	upstream := `{"list":{"1":{"item_id":"1","excerpt":"` + strings.Repeat("x", 2048) + `"}}}`
	client.EXPECT().Get(gomock.Any(), "acc").Return([]byte(upstream), nil)

	req := httptest.NewRequest(http.MethodGet, linksPath, nil)
	req.Header.Set(tokenHeader, "acc")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Less(t, rec.Body.Len(), len(upstream))

	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	decoded, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, upstream, string(decoded))
}

func TestGetLinks_UpstreamStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "token revoked", err: pocket.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "pocket 5xx", err: pocket.ErrUpstream, wantStatus: http.StatusBadGateway},
		{name: "rate limit wait aborted", err: pocket.ErrRateLimited, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, client := newTestRouter(t)
			client.EXPECT().Get(gomock.Any(), "acc").Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, linksPath, nil)
			req.Header.Set(tokenHeader, "acc")

			assert.Equal(t, tt.wantStatus, serve(router, req).Code)
		})
	}
}

// ── DELETE /links ────────────────────────────────────────────────────────────

func newDeleteRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, linksPath, strings.NewReader(body))
	req.Header.Set(tokenHeader, "acc")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDeleteLinks_SendsActions(t *testing.T) {
	router, client := newTestRouter(t)
	client.EXPECT().
		Send(gomock.Any(), "acc", []models.PocketAction{
			{ItemID: "1", Action: "delete"},
			{ItemID: "2", Action: "delete"},
		}).
		Return([]byte(`{"status":1}`), nil)

	rec := serve(router, newDeleteRequest(`["1","2"]`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":1}`, rec.Body.String())
}

func TestDeleteLinks_MalformedBody(t *testing.T) {
	for _, body := range []string{``, `{"ids":["1"]}`, `[1,2]`, `["1"`} {
		t.Run(body, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(router, newDeleteRequest(body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeleteLinks_InvalidIDs(t *testing.T) {
	tooMany := make([]string, validators.MaxBatchSize+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("%q", strconv.Itoa(i+1))
	}

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "empty id", body: `[""]`, wantErr: validators.ErrEmptyItemID},
		{name: "non numeric", body: `["abc"]`, wantErr: validators.ErrInvalidItemID},
		{name: "duplicate", body: `["1","1"]`, wantErr: validators.ErrDuplicateItems},
		{name: "too many", body: "[" + strings.Join(tooMany, ",") + "]", wantErr: validators.ErrTooManyItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(router, newDeleteRequest(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+app.MsgInvalidDataProvided+": "+tt.wantErr.Error()+`"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), ErrInvalidBody.Error())
		})
	}
}

func TestDeleteLinks_EmptyBatch(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, newDeleteRequest(`[]`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"done":true}`, rec.Body.String())
}

func TestDeleteLinks_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	h := NewHandler(pocket.NewDryRunClient(client, logger.Nop()), config.Server{DryRun: true}, models.AppBuildInfo{}, logger.Nop())

	rec := serve(h.Init(), newDeleteRequest(`["1"]`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"done":true}`, rec.Body.String())
}

// ── routing ──────────────────────────────────────────────────────────────────

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, linksPath},
		{http.MethodPut, linksPath},
		{http.MethodPost, versionPath},
		{http.MethodDelete, oauthRequestPath},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(tokenHeader, "acc")

			assert.Equal(t, http.StatusNotFound, serve(router, req).Code)
		})
	}
}

// ── middleware ───────────────────────────────────────────────────────────────

func TestWithTraceID_ReusesHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, versionPath, nil)
	req.Header.Set(traceIDHeader, "my-trace")
	rec := serve(router, req)

	assert.Equal(t, "my-trace", rec.Header().Get(traceIDHeader))
}

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	client.EXPECT().AccessToken(gomock.Any(), "secret").Return("", pocket.ErrUnauthorized)
	h := NewHandler(client, testServerConfig, models.AppBuildInfo{}, logger.New(&buf, "server"))
	buf.Reset()

	req := httptest.NewRequest(http.MethodGet, oauthAccessTokenPath+"?request_token=secret", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	serve(h.Init(), req)

	out := buf.String()
	assert.Contains(t, out, `"trace_id":"trace-1"`)
	assert.Contains(t, out, `"path":"/oauth/access_token"`)
	assert.Contains(t, out, `"status":401`)
	assert.NotContains(t, out, "secret")
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFromError(ErrMissingToken))
	assert.Equal(t, http.StatusBadRequest, statusFromError(fmt.Errorf("%w: eof", ErrInvalidBody)))
	assert.Equal(t, http.StatusBadRequest, statusFromError(fmt.Errorf("%w: %w", ErrInvalidIDs, validators.ErrTooManyItems)))
	assert.Equal(t, http.StatusUnauthorized, statusFromError(fmt.Errorf("%w: 401", pocket.ErrUnauthorized)))
	assert.Equal(t, http.StatusBadGateway, statusFromError(io.ErrUnexpectedEOF))
}

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "missing header is echoed", err: ErrMissingToken, want: ErrMissingToken.Error()},
		{name: "bad body", err: fmt.Errorf("%w: eof", ErrInvalidBody), want: app.MsgInvalidDataProvided + ": " + ErrInvalidBody.Error()},
		{name: "duplicate ids", err: fmt.Errorf("%w: %w: 7", ErrInvalidIDs, validators.ErrDuplicateItems), want: app.MsgInvalidDataProvided + ": " + validators.ErrDuplicateItems.Error()},
		{name: "pocket 401 hides reason", err: fmt.Errorf("%w: 401 invalid consumer key", pocket.ErrUnauthorized), want: app.MsgPocketUnauthorized},
		{name: "pocket 5xx hides reason", err: fmt.Errorf("%w: 503 maintenance", pocket.ErrUpstream), want: app.MsgPocketUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err))
		})
	}
}
