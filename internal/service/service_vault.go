// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type idGenerator interface {
	Generate() string
}

type vaultService struct {
	vaultRepository store.VaultRepository

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewVaultService returns the store-backed VaultService. It trusts its input;
// wrap it with NewVaultValidationService().Wrap before exposing it to handlers.
func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

func (s *vaultService) List(ctx context.Context, userID int64) ([]models.VaultRecord, error) {
	records, err := s.vaultRepository.ListRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing vault records: %w", err)
	}
	if records == nil {
		records = []models.VaultRecord{}
	}

	return records, nil
}

// Create stores request as a new record owned by userID.
//
// Parameters:
//
//	ctx     - request context; its logger receives the debug event
//	userID  - authenticated owner, taken from the session, never the body
//	request - the three ciphertexts, already validated
//
// Returns:
//
//	models.VaultRecord - the record with a fresh UUIDv7 id and equal
//	                     CreatedAt and UpdatedAt in UTC
//	error              - wraps the store error
//
// Example usage:
//
//	record, err := services.VaultService.Create(r.Context(), userID, request)
//	if err != nil {
//		return err
//	}
func (s *vaultService) Create(ctx context.Context, userID int64, request models.RecordRequest) (models.VaultRecord, error) {
	now := s.now().UTC()
	record := models.VaultRecord{
		ID:            s.ids.Generate(),
		UserID:        userID,
		Title:         request.Title,
		Username:      request.Username,
		EncryptedData: request.EncryptedData,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.vaultRepository.CreateRecord(ctx, record)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("error creating vault record: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", userID).
		Str("record_id", created.ID).
		Msg("vault record created")
	return created, nil
}

// Update overwrites the ciphertexts of a record owned by userID. CreatedAt is
// kept. Returns ErrRecordNotFound when id does not exist or belongs to another
// user.
func (s *vaultService) Update(ctx context.Context, userID int64, id string, request models.RecordRequest) (models.VaultRecord, error) {
	record := models.VaultRecord{
		ID:            id,
		UserID:        userID,
		Title:         request.Title,
		Username:      request.Username,
		EncryptedData: request.EncryptedData,
		UpdatedAt:     s.now().UTC(),
	}

	updated, err := s.vaultRepository.UpdateRecord(ctx, record)
	if err != nil {
		return models.VaultRecord{}, mapRecordError("error updating vault record", err)
	}

	return updated, nil
}

// Delete removes a record owned by userID, with the same ErrRecordNotFound
// rule as Update.
func (s *vaultService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.vaultRepository.DeleteRecord(ctx, id, userID); err != nil {
		return mapRecordError("error deleting vault record", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", userID).
		Str("record_id", id).
		Msg("vault record deleted")
	return nil
}

func mapRecordError(msg string, err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
