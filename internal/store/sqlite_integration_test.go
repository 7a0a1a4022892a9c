// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_UserLifecycle(t *testing.T) {
	db := newSQLiteTestDB(t)
	storages := NewStorages(db, logger.Nop())
	ctx := testContext()

	now := time.Now().UTC().Truncate(time.Second)
	created, err := storages.UserRepository.CreateUser(ctx, models.User{Email: "me@x.com", PasswordHash: "hash", CreatedAt: now})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)

	_, err = storages.UserRepository.CreateUser(ctx, models.User{Email: "me@x.com", PasswordHash: "other", CreatedAt: now})
	assert.ErrorIs(t, err, ErrEmailAlreadyTaken)

	found, err := storages.UserRepository.FindUserByEmail(ctx, "me@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.True(t, now.Equal(found.CreatedAt))

	_, err = storages.UserRepository.FindUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_VaultOwnership(t *testing.T) {
	db := newSQLiteTestDB(t)
	storages := NewStorages(db, logger.Nop())
	ctx := testContext()

	now := time.Now().UTC().Truncate(time.Second)
	alice, err := storages.UserRepository.CreateUser(ctx, models.User{Email: "alice@x.com", PasswordHash: "h", CreatedAt: now})
	require.NoError(t, err)
	bob, err := storages.UserRepository.CreateUser(ctx, models.User{Email: "bob@x.com", PasswordHash: "h", CreatedAt: now})
	require.NoError(t, err)

	repo := storages.VaultRepository
	first, err := repo.CreateRecord(ctx, testRecord("a", alice.UserID, now))
	require.NoError(t, err)
	_, err = repo.CreateRecord(ctx, testRecord("b", alice.UserID, now.Add(time.Minute)))
	require.NoError(t, err)
	_, err = repo.CreateRecord(ctx, testRecord("c", bob.UserID, now))
	require.NoError(t, err)

	records, err := repo.ListRecords(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0].ID, "newest first")
	assert.Equal(t, "a", records[1].ID)

	// bob cannot touch alice's record
	stolen := first
	stolen.UserID = bob.UserID
	stolen.Title = "ct-overwritten"
	_, err = repo.UpdateRecord(ctx, stolen)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteRecord(ctx, first.ID, bob.UserID), ErrRecordNotFound)

	changed := first
	changed.Title = "ct-new-title"
	changed.UpdatedAt = now.Add(time.Hour)
	updated, err := repo.UpdateRecord(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, models.Ciphertext("ct-new-title"), updated.Title)
	assert.True(t, first.CreatedAt.Equal(updated.CreatedAt), "created_at is immutable")

	require.NoError(t, repo.DeleteRecord(ctx, first.ID, alice.UserID))
	assert.ErrorIs(t, repo.DeleteRecord(ctx, first.ID, alice.UserID), ErrRecordNotFound)

	records, err = repo.ListRecords(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNewDB(t *testing.T) {
	_, err := NewDB(context.Background(), "", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)

	path := filepath.Join(t.TempDir(), "nested", "vault.db")
	db, err := NewDB(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DialectSQLite, db.Dialect())
	_, err = os.Stat(path)
	assert.NoError(t, err, "database file is created")
}

func TestDialectOf(t *testing.T) {
	assert.Equal(t, DialectPostgres, DialectOf("postgres://u:p@localhost/db"))
	assert.Equal(t, DialectPostgres, DialectOf("PostgreSQL://localhost/db"))
	assert.Equal(t, DialectSQLite, DialectOf("vault.db"))
	assert.Equal(t, DialectSQLite, DialectOf("file:vault.db?cache=shared"))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "vault.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("vault.db"))
	assert.Equal(t, "vault.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("vault.db?cache=shared"))
}
