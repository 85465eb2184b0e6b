// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PendingDelete is a link id whose delete request did not reach the server.
// It sits in the local outbox until a retry succeeds.
type PendingDelete struct {
	ItemID    string
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PendingIDs returns the item ids of the given outbox records in order.
func PendingIDs(pending []PendingDelete) []string {
	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.ItemID)
	}
	return ids
}
