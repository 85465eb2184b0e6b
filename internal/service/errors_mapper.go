// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/kevinlebrun/pocket-triage/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrServerRejected, err)
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrServerFailed, err)
	}

	return err
}
