// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Session is the account side of the client.
type Session interface {
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	// Logout locks the vault even when the server call fails.
	Logout(ctx context.Context) error
}

// Vault is the record list and its unlock state machine, as implemented by
// [vault.Vault].
type Vault interface {
	State() vault.State
	Records() []models.VaultRecord
	Hidden() int
	Refresh(ctx context.Context) error
	Unlock(secret []byte) error
	Lock()
	Filter(query string) ([]models.DecryptedView, error)
	View(id string) (models.DecryptedView, error)
	Create(ctx context.Context, rec models.PlainRecord, secret []byte) (models.VaultRecord, error)
	Update(ctx context.Context, id string, rec models.PlainRecord, secret []byte) (models.VaultRecord, error)
	Delete(ctx context.Context, id string) error
}

type PasswordGenerator interface {
	Generate(opts generator.Options) (string, error)
}
