// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the proxy server's HTTP transport.
//
// It exposes the OAuth handshake endpoints, GET and DELETE /links and
// /version. Request tracing, access logging, token extraction and response
// compression are handled here before calls are delegated to the Pocket
// client.
package http
