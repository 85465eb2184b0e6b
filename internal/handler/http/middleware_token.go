// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/utils"
)

// tokenHeader carries the user's Pocket access token.
const tokenHeader = "token"

// withToken rejects requests without a token header with 401 and stores the
// token in the request context under [utils.AccessTokenCtxKey].
func (h *Handler) withToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(tokenHeader))
		if token == "" {
			logger.FromRequest(r).Err(ErrMissingToken).Str("func", "*Handler.withToken").Send()
			utils.WriteError(w, ErrMissingToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccessToken(r.Context(), token)))
	})
}
