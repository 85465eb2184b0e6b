// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── GetValue ─────────────────────────────────────────────────────────────────

func TestSessionRepository_GetValue_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM session WHERE key = ?`)).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))

	value, err := repo.GetValue(testContext(), "token")

	require.NoError(t, err)
	assert.Equal(t, "abc", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetValue_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM session`)).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetValue(testContext(), "token")

	assert.ErrorIs(t, err, ErrSessionValueNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetValue_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM session`)).
		WithArgs("token").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetValue(testContext(), "token")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── SetValue ─────────────────────────────────────────────────────────────────

func TestSessionRepository_SetValue_Upserts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`)).
		WithArgs("token", "abc").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetValue(testContext(), "token", "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_SetValue_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session`)).
		WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, repo.SetValue(testContext(), "token", "abc"), ErrExecutingStatement)
}

// ── DeleteValue ──────────────────────────────────────────────────────────────

func TestSessionRepository_DeleteValue(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM session WHERE key = ?`)).
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteValue(testContext(), "token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── TokenStore ───────────────────────────────────────────────────────────────

func TestTokenStore_MissingTokenIsEmpty(t *testing.T) {
	db, mock := newTestDB(t)
	tokens := NewTokenStore(NewSessionRepository(newDBFromSQL(db), logger.Nop()))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM session`)).
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	token, err := tokens.GetToken(testContext())

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenStore_SetAndDeleteUseTokenKey(t *testing.T) {
	db, mock := newTestDB(t)
	tokens := NewTokenStore(NewSessionRepository(newDBFromSQL(db), logger.Nop()))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session`)).
		WithArgs(TokenKey, "abc").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM session`)).
		WithArgs(TokenKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, tokens.SetToken(testContext(), "abc"))
	require.NoError(t, tokens.DeleteToken(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
