// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	ErrEmptyToken            = errors.New("empty access token")
	ErrListenerAlreadyActive = errors.New("callback listener already started")
)
