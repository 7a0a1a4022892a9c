// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultServiceWrapper decorates a VaultService with extra behavior.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// vaultValidationService rejects requests with a missing owner, id or
// ciphertext before the inner service, and so the store, is reached.
type vaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

// NewVaultValidationService returns the decorator that rejects anonymous
// callers with ErrUnauthorized and malformed requests with
// ErrInvalidDataProvided.
//
// Example usage:
//
//	vault := service.NewVaultValidationService().Wrap(service.NewVaultService(repo, log))
func NewVaultValidationService() VaultServiceWrapper {
	return &vaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *vaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func (v *vaultValidationService) List(ctx context.Context, userID int64) ([]models.VaultRecord, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}

	return v.inner.List(ctx, userID)
}

func (v *vaultValidationService) Create(ctx context.Context, userID int64, request models.RecordRequest) (models.VaultRecord, error) {
	if userID <= 0 {
		return models.VaultRecord{}, ErrUnauthorized
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, userID, request)
}

func (v *vaultValidationService) Update(ctx context.Context, userID int64, id string, request models.RecordRequest) (models.VaultRecord, error) {
	if userID <= 0 {
		return models.VaultRecord{}, ErrUnauthorized
	}
	if strings.TrimSpace(id) == "" {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidRecordID)
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, userID, id, request)
}

func (v *vaultValidationService) Delete(ctx context.Context, userID int64, id string) error {
	if userID <= 0 {
		return ErrUnauthorized
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidRecordID)
	}

	return v.inner.Delete(ctx, userID, id)
}
