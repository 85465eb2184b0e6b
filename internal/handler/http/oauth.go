// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/kevinlebrun/pocket-triage/internal/app"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/utils"
)

const (
	requestTokenParam = "request_token"
	accessTokenParam  = "access_token"
)

// oauthRequest starts the Pocket handshake: it obtains a request token and
// sends the browser to Pocket's authorization page. Pocket then redirects
// back to /oauth/access_token with the same request token.
func (h *Handler) oauthRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	code, err := h.pocket.RequestToken(r.Context(), h.accessTokenURL(""))
	if err != nil {
		log.Err(err).Str("func", "*Handler.oauthRequest").Msg("error obtaining request token")
		h.writeError(w, err)
		return
	}

	authorizeURL := h.pocket.AuthorizeURL(code, h.accessTokenURL(code))
	log.Info().Msg("redirecting to pocket authorization")
	http.Redirect(w, r, authorizeURL, http.StatusFound)
}

// oauthAccessToken finishes the handshake and hands the access token to the
// terminal client's callback listener.
func (h *Handler) oauthAccessToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	code := r.URL.Query().Get(requestTokenParam)
	if code == "" {
		log.Err(ErrMissingRequestToken).Str("func", "*Handler.oauthAccessToken").Send()
		h.writeError(w, ErrMissingRequestToken)
		return
	}

	token, err := h.pocket.AccessToken(r.Context(), code)
	if err != nil {
		log.Err(err).Str("func", "*Handler.oauthAccessToken").Msg("error obtaining access token")
		h.writeError(w, err)
		return
	}

	callbackURL, err := withQueryParam(h.cfg.ClientCallbackURL, accessTokenParam, token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.oauthAccessToken").Msg("invalid client callback url")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Info().Msg("access token obtained, redirecting to client")
	http.Redirect(w, r, callbackURL, http.StatusFound)
}

// accessTokenURL is this server's /oauth/access_token, with the request
// token attached when code is set.
func (h *Handler) accessTokenURL(code string) string {
	u := strings.TrimRight(h.cfg.PublicURL, "/") + oauthAccessTokenPath
	if code == "" {
		return u
	}
	return u + "?" + url.Values{requestTokenParam: {code}}.Encode()
}

func withQueryParam(rawURL, key, value string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set(key, value)
	u.RawQuery = query.Encode()

	return u.String(), nil
}
