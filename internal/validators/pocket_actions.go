// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/kevinlebrun/pocket-triage/models"
)

const (
	FieldItemID = "item_id"
	FieldAction = "action"
	FieldBatch  = "batch"
)

// MaxBatchSize is the largest number of ids accepted by one DELETE /links.
// The client never sends more than a page.
const MaxBatchSize = 1000

var allowedActions = []string{
	models.PocketActionDelete,
}

type PocketActionsValidator struct{}

func NewPocketActionsValidator() Validator {
	return &PocketActionsValidator{}
}

// Validate accepts a list of item ids, a single [models.PocketAction] or a
// list of them. With no fields every rule is checked.
func (v *PocketActionsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if err := checkFields(fields); err != nil {
		return err
	}

	switch value := obj.(type) {
	case []string:
		return v.validateIDs(value, fields...)

	case models.PocketAction:
		return v.validateAction(value, fields...)
	case *models.PocketAction:
		return v.validateAction(*value, fields...)

	case []models.PocketAction:
		ids := make([]string, 0, len(value))
		for i, action := range value {
			if err := v.validateAction(action, fields...); err != nil {
				return fmt.Errorf("action %d: %w", i, err)
			}
			ids = append(ids, action.ItemID)
		}
		return v.validateBatch(ids, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PocketActionsValidator) validateIDs(ids []string, fields ...string) error {
	if wants(fields, FieldItemID) {
		for i, id := range ids {
			if err := validateItemID(id); err != nil {
				return fmt.Errorf("id %d: %w", i, err)
			}
		}
	}
	return v.validateBatch(ids, fields...)
}

func (v *PocketActionsValidator) validateAction(action models.PocketAction, fields ...string) error {
	if wants(fields, FieldItemID) {
		if err := validateItemID(action.ItemID); err != nil {
			return err
		}
	}
	if wants(fields, FieldAction) && !slices.Contains(allowedActions, action.Action) {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action.Action)
	}
	return nil
}

func (v *PocketActionsValidator) validateBatch(ids []string, fields ...string) error {
	if !wants(fields, FieldBatch) {
		return nil
	}

	if len(ids) > MaxBatchSize {
		return fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(ids), MaxBatchSize)
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateItems, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateItemID(id string) error {
	if id == "" {
		return ErrEmptyItemID
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidItemID, id)
		}
	}
	return nil
}

func checkFields(fields []string) error {
	for _, field := range fields {
		switch field {
		case FieldItemID, FieldAction, FieldBatch:
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

// wants reports whether field is selected. No fields selects all of them.
func wants(fields []string, field string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}
