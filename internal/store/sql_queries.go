// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	usersTable = "users"
	vaultTable = "vault_records"
)

var (
	userColumns  = []string{"user_id", "email", "password_hash", "created_at"}
	vaultColumns = []string{"id", "user_id", "title", "username", "encrypted_data", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert(usersTable).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql())
}

func (db *DB) buildFindUserByEmailQuery(email string) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql())
}

func (db *DB) buildListRecordsQuery(userID int64) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(vaultColumns...).
		From(vaultTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql())
}

func (db *DB) buildCreateRecordQuery(r models.VaultRecord) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert(vaultTable).
		Columns(vaultColumns...).
		Values(r.ID, r.UserID, r.Title.String(), r.Username.String(), r.EncryptedData.String(), r.CreatedAt, r.UpdatedAt).
		Suffix(returning(vaultColumns)).
		ToSql())
}

func (db *DB) buildUpdateRecordQuery(r models.VaultRecord) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(vaultTable).
		Set("title", r.Title.String()).
		Set("username", r.Username.String()).
		Set("encrypted_data", r.EncryptedData.String()).
		Set("updated_at", r.UpdatedAt).
		Where(sq.Eq{"id": r.ID, "user_id": r.UserID}).
		Suffix(returning(vaultColumns)).
		ToSql())
}

func (db *DB) buildDeleteRecordQuery(id string, userID int64) (string, []any, error) {
	return wrapBuild(db.builder.
		Delete(vaultTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func scanRecord(row rowScanner) (models.VaultRecord, error) {
	var r models.VaultRecord
	err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Username, &r.EncryptedData, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}
