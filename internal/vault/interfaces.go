// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore is the remote Storage API as the vault sees it.
// adapter.ServerAdapter satisfies it.
type RecordStore interface {
	ListRecords(ctx context.Context) ([]models.VaultRecord, error)
	CreateRecord(ctx context.Context, req models.RecordRequest) (models.VaultRecord, error)
	UpdateRecord(ctx context.Context, id string, req models.RecordRequest) (models.VaultRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}
