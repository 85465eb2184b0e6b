// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from HTTP status codes returned by the proxy server.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrNoToken is returned by authenticated calls made before login. It matches
// [ErrUnauthorized] so callers handle both the same way.
var ErrNoToken = fmt.Errorf("%w: no access token", ErrUnauthorized)
