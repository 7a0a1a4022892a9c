// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newPostgresTestDB wraps a sqlmock connection as a PostgreSQL handle.
func newPostgresTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock := newTestDB(t)
	t.Cleanup(func() { require.NoError(t, mock.ExpectationsWereMet()) })
	return newDB(conn, DialectPostgres, logger.Nop()), mock
}

// newSQLiteTestDB opens a migrated SQLite database in a temp dir.
func newSQLiteTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), t.TempDir()+"/vault.db", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

// fastRetries shrinks the backoff for the duration of a test.
func fastRetries(t *testing.T) {
	t.Helper()
	saved := retryBase
	retryBase = time.Nanosecond
	t.Cleanup(func() { retryBase = saved })
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
