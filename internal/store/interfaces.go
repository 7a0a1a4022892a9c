// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID assigned.
	// A duplicate email yields [ErrEmailAlreadyTaken].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultRepository persists opaque vault records in the "vault_records" table.
// Every method is scoped to one owner; a record of another user behaves
// exactly like a missing one.
type VaultRepository interface {
	// ListRecords returns the owner's records, newest first.
	ListRecords(ctx context.Context, userID int64) ([]models.VaultRecord, error)

	// CreateRecord inserts record as given; id and timestamps are set by the caller.
	CreateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// UpdateRecord replaces title, username, encrypted data and updated_at of
	// the record matching both record.ID and record.UserID.
	// Returns [ErrRecordNotFound] when there is no such record.
	UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// DeleteRecord removes the record matching id and userID.
	// Returns [ErrRecordNotFound] when nothing was deleted.
	DeleteRecord(ctx context.Context, id string, userID int64) error
}

// ErrorClassificator tells transient driver errors apart from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
