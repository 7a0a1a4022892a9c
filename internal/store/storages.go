// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-pass-vault/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		VaultRepository: NewVaultRepository(db, logger),
	}
}
