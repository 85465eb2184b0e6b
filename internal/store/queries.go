// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session"
	pendingTable = "pending_deletes"
)

var pendingColumns = []string{"item_id", "attempts", "last_error", "created_at", "updated_at"}

func selectSessionValueQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func upsertSessionValueQuery(key, value string) (string, []any, error) {
	return sq.Insert(sessionTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func deleteSessionValueQuery(key string) (string, []any, error) {
	return sq.Delete(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func enqueuePendingQuery(ids []string, lastErr string, now time.Time) (string, []any, error) {
	builder := sq.Insert(pendingTable).Columns(pendingColumns...)
	for _, id := range ids {
		builder = builder.Values(id, 1, lastErr, now, now)
	}

	return builder.
		Suffix("ON CONFLICT(item_id) DO UPDATE SET attempts = pending_deletes.attempts + 1, last_error = excluded.last_error, updated_at = excluded.updated_at").
		ToSql()
}

func listPendingQuery() (string, []any, error) {
	return sq.Select(pendingColumns...).
		From(pendingTable).
		OrderBy("created_at", "item_id").
		ToSql()
}

func markPendingFailedQuery(ids []string, lastErr string, now time.Time) (string, []any, error) {
	return sq.Update(pendingTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", lastErr).
		Set("updated_at", now).
		Where(sq.Eq{"item_id": ids}).
		ToSql()
}

func removePendingQuery(ids []string) (string, []any, error) {
	return sq.Delete(pendingTable).
		Where(sq.Eq{"item_id": ids}).
		ToSql()
}

// uniqueIDs drops empty and repeated ids, keeping first occurrences.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
