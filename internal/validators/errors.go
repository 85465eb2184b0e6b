// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItemID    = errors.New("item id is empty")
	ErrInvalidItemID  = errors.New("item id must be numeric")
	ErrTooManyItems   = errors.New("too many items in one batch")
	ErrInvalidAction  = errors.New("unsupported action")
	ErrDuplicateItems = errors.New("item id appears more than once")
)
