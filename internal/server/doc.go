// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the proxy's HTTP server: startup, signal handling and
// graceful shutdown.
package server
