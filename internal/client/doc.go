// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pocket-triage terminal client runtime.
//
// It ties the OAuth callback listener, the delete retry worker and the
// terminal UI to a single process lifecycle.
package client
