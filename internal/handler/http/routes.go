// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	oauthRequestPath     = "/oauth/request"
	oauthAccessTokenPath = "/oauth/access_token"
	linksPath            = "/links"
	versionPath          = "/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without a token
	router.Group(func(r chi.Router) {
		r.Get(versionPath, h.getServerVersion)
		r.Get(oauthRequestPath, h.oauthRequest)
		r.Get(oauthAccessTokenPath, h.oauthAccessToken)
	})

	// routes acting on the user's list
	router.Group(func(r chi.Router) {
		r.Use(h.withToken)
		r.Use(withGZip)
		r.Get(linksPath, h.getLinks)
		r.Delete(linksPath, h.deleteLinks)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
