// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vaultRows = []string{"id", "user_id", "title", "username", "encrypted_data", "created_at", "updated_at"}

func testRecord(id string, userID int64, at time.Time) models.VaultRecord {
	return models.VaultRecord{
		ID:            id,
		UserID:        userID,
		Title:         "ct-title-" + models.Ciphertext(id),
		Username:      "ct-user-" + models.Ciphertext(id),
		EncryptedData: "ct-data-" + models.Ciphertext(id),
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}

func recordValues(r models.VaultRecord) []driver.Value {
	return []driver.Value{r.ID, r.UserID, r.Title.String(), r.Username.String(), r.EncryptedData.String(), r.CreatedAt, r.UpdatedAt}
}

// ── ListRecords ───────────────────────────────────────────────────────────────

func TestVaultRepository_ListRecords(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	now := time.Now().UTC()
	newer := testRecord("b", 1, now)
	older := testRecord("a", 1, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, user_id, title, username, encrypted_data, created_at, updated_at FROM vault_records WHERE user_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(vaultRows).
			AddRow(recordValues(newer)...).
			AddRow(recordValues(older)...))

	records, err := repo.ListRecords(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, []models.VaultRecord{newer, older}, records)
}

func TestVaultRepository_ListRecords_Empty(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM vault_records").WillReturnRows(sqlmock.NewRows(vaultRows))

	records, err := repo.ListRecords(testContext(), 1)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestVaultRepository_ListRecords_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(sqlmock.Sqlmock)
		want  error
	}{
		{
			name: "query error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT (.+) FROM vault_records").WillReturnError(errors.New("boom"))
			},
			want: ErrExecutingQuery,
		},
		{
			name: "scan error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT (.+) FROM vault_records").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a"))
			},
			want: ErrScanningRow,
		},
		{
			name: "rows error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT (.+) FROM vault_records").WillReturnRows(
					sqlmock.NewRows(vaultRows).
						AddRow(recordValues(testRecord("a", 1, time.Now()))...).
						RowError(0, errors.New("broken pipe")))
			},
			want: ErrScanningRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPostgresTestDB(t)
			repo := NewVaultRepository(db, logger.Nop())
			tt.setup(mock)

			_, err := repo.ListRecords(testContext(), 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVaultRepository_ListRecords_RetriesTransientError(t *testing.T) {
	fastRetries(t)
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM vault_records").WillReturnError(pgError(pgerrcode.CannotConnectNow))
	mock.ExpectQuery("SELECT (.+) FROM vault_records").
		WillReturnRows(sqlmock.NewRows(vaultRows).AddRow(recordValues(testRecord("a", 1, time.Now().UTC()))...))

	records, err := repo.ListRecords(testContext(), 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

// ── CreateRecord ──────────────────────────────────────────────────────────────

func TestVaultRepository_CreateRecord(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	rec := testRecord("0192", 5, time.Now().UTC())
	mock.ExpectQuery(`INSERT INTO vault_records \(id,user_id,title,username,encrypted_data,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING`).
		WithArgs(recordValues(rec)...).
		WillReturnRows(sqlmock.NewRows(vaultRows).AddRow(recordValues(rec)...))

	created, err := repo.CreateRecord(testContext(), rec)
	require.NoError(t, err)
	assert.Equal(t, rec, created)
}

func TestVaultRepository_CreateRecord_Error(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO vault_records").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateRecord(testContext(), testRecord("x", 5, time.Now()))
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestVaultRepository_CreateRecord_Retries(t *testing.T) {
	tests := []struct {
		name    string
		errs    []error
		wantErr bool
	}{
		{name: "rolled back statement is repeated", errs: []error{pgError(pgerrcode.SerializationFailure)}},
		{name: "lost connection is not repeated", errs: []error{pgError(pgerrcode.ConnectionFailure)}, wantErr: true},
		{name: "shutdown mid-statement is not repeated", errs: []error{pgError(pgerrcode.AdminShutdown)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fastRetries(t)
			db, mock := newPostgresTestDB(t)
			repo := NewVaultRepository(db, logger.Nop())

			rec := testRecord("0192", 5, time.Now().UTC())
			for _, err := range tt.errs {
				mock.ExpectQuery("INSERT INTO vault_records").WillReturnError(err)
			}
			if !tt.wantErr {
				mock.ExpectQuery("INSERT INTO vault_records").
					WillReturnRows(sqlmock.NewRows(vaultRows).AddRow(recordValues(rec)...))
			}

			created, err := repo.CreateRecord(testContext(), rec)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrExecutingQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rec, created)
		})
	}
}

func TestVaultRepository_UpdateRecord_RetriesLostConnection(t *testing.T) {
	fastRetries(t)
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	rec := testRecord("0192", 5, time.Now().UTC())
	mock.ExpectQuery("UPDATE vault_records").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("UPDATE vault_records").
		WillReturnRows(sqlmock.NewRows(vaultRows).AddRow(recordValues(rec)...))

	updated, err := repo.UpdateRecord(testContext(), rec)
	require.NoError(t, err)
	assert.Equal(t, rec, updated)
}

// ── UpdateRecord ──────────────────────────────────────────────────────────────

func TestVaultRepository_UpdateRecord(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	rec := testRecord("0192", 5, time.Now().UTC())
	mock.ExpectQuery(`UPDATE vault_records SET title = \$1, username = \$2, encrypted_data = \$3, updated_at = \$4 WHERE id = \$5 AND user_id = \$6 RETURNING`).
		WithArgs(rec.Title.String(), rec.Username.String(), rec.EncryptedData.String(), rec.UpdatedAt, rec.ID, rec.UserID).
		WillReturnRows(sqlmock.NewRows(vaultRows).AddRow(recordValues(rec)...))

	updated, err := repo.UpdateRecord(testContext(), rec)
	require.NoError(t, err)
	assert.Equal(t, rec, updated)
}

func TestVaultRepository_UpdateRecord_NotFound(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("UPDATE vault_records").WillReturnRows(sqlmock.NewRows(vaultRows))

	_, err := repo.UpdateRecord(testContext(), testRecord("x", 5, time.Now()))
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestVaultRepository_UpdateRecord_Error(t *testing.T) {
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("UPDATE vault_records").WillReturnError(errors.New("boom"))

	_, err := repo.UpdateRecord(testContext(), testRecord("x", 5, time.Now()))
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── DeleteRecord ──────────────────────────────────────────────────────────────

func TestVaultRepository_DeleteRecord(t *testing.T) {
	tests := []struct {
		name  string
		setup func(sqlmock.Sqlmock)
		want  error
	}{
		{
			name: "deleted",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM vault_records WHERE id = \$1 AND user_id = \$2`).
					WithArgs("0192", int64(5)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not owned or missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM vault_records").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: ErrRecordNotFound,
		},
		{
			name: "exec error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM vault_records").WillReturnError(errors.New("boom"))
			},
			want: ErrExecutingStatement,
		},
		{
			name: "rows affected error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM vault_records").WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))
			},
			want: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPostgresTestDB(t)
			repo := NewVaultRepository(db, logger.Nop())
			tt.setup(mock)

			err := repo.DeleteRecord(testContext(), "0192", 5)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// Replaying a delete that already committed would report the record as missing.
func TestVaultRepository_DeleteRecord_LostConnectionIsNotRetried(t *testing.T) {
	fastRetries(t)
	db, mock := newPostgresTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM vault_records").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	err := repo.DeleteRecord(testContext(), "0192", 5)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrRecordNotFound)
}
