// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/kevinlebrun/pocket-triage/internal/app"
	"github.com/kevinlebrun/pocket-triage/internal/pocket"
	"github.com/kevinlebrun/pocket-triage/internal/validators"
)

// idErrors are the validation failures echoed to the client as is.
var idErrors = []error{
	validators.ErrEmptyItemID,
	validators.ErrInvalidItemID,
	validators.ErrTooManyItems,
	validators.ErrDuplicateItems,
}

var errorStatusMap = map[error]int{
	ErrMissingToken:        http.StatusUnauthorized,
	ErrMissingRequestToken: http.StatusBadRequest,
	ErrInvalidBody:         http.StatusBadRequest,
	ErrInvalidIDs:          http.StatusBadRequest,
	pocket.ErrUnauthorized: http.StatusUnauthorized,
}

// statusFromError maps err to the status answered to the client. Anything
// unknown is treated as an upstream failure.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadGateway
}

// messageFromError is the body text for err. Request errors are echoed,
// Pocket failures are replaced by a generic message.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrMissingRequestToken):
		return err.Error()
	case errors.Is(err, ErrInvalidBody):
		return app.MsgInvalidDataProvided + ": " + ErrInvalidBody.Error()
	case errors.Is(err, ErrInvalidIDs):
		for _, target := range idErrors {
			if errors.Is(err, target) {
				return app.MsgInvalidDataProvided + ": " + target.Error()
			}
		}
		return app.MsgInvalidDataProvided + ": " + ErrInvalidIDs.Error()
	case errors.Is(err, pocket.ErrUnauthorized):
		return app.MsgPocketUnauthorized
	default:
		return app.MsgPocketUnavailable
	}
}
