// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the server's business logic: account sign-up and
// login, session tokens, and owner-scoped storage of encrypted vault records.
//
// The server never sees plaintext. Vault records arrive as ciphertext and
// are stored and returned as-is; the service only decides who may touch them.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages accounts and session tokens.
type AuthService interface {
	// Signup creates an account. The email is normalized before storing and
	// the password is kept only as a bcrypt hash.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login checks credentials. An unknown email and a wrong password both
	// return ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService stores opaque records on behalf of their owner.
// A record that belongs to another user is reported as ErrRecordNotFound.
type VaultService interface {
	// List returns the owner's records, newest first.
	List(ctx context.Context, userID int64) ([]models.VaultRecord, error)

	// Create assigns a new UUIDv7 id and both timestamps.
	Create(ctx context.Context, userID int64, request models.RecordRequest) (models.VaultRecord, error)

	// Update replaces all three ciphertexts and refreshes updatedAt.
	Update(ctx context.Context, userID int64, id string, request models.RecordRequest) (models.VaultRecord, error)

	Delete(ctx context.Context, userID int64, id string) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
