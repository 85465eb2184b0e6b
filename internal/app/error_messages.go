// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the messages the proxy server answers with when a
// Pocket call fails. Upstream error details stay in the server log.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgPocketUnauthorized is returned when Pocket rejects the consumer key
	// or the access token.
	MsgPocketUnauthorized = "pocket rejected the credentials, log in again"

	// MsgPocketUnavailable is returned for any other failed Pocket call.
	MsgPocketUnavailable = "pocket is unavailable, try again later"
)
