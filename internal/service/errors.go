// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrDeleteQueued   = errors.New("delete queued for retry")
	ErrServerRejected = errors.New("server rejected the request")
	ErrServerFailed   = errors.New("server failed to reach pocket")
)
