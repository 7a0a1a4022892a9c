// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Create encrypts rec and stores it as a new record. The local list and cache
// are left alone; the record shows up after the next Refresh.
//
// secret may be empty while Unlocked, in which case the held secret is used.
// A non-empty secret must match the one that opened the vault, or, while
// Locked, decrypt the newest fetched record.
func (v *Vault) Create(ctx context.Context, rec models.PlainRecord, secret []byte) (models.VaultRecord, error) {
	if err := validatePlain(rec); err != nil {
		return models.VaultRecord{}, err
	}

	req, err := v.encryptRecord(rec, secret)
	if err != nil {
		return models.VaultRecord{}, err
	}

	created, err := v.store.CreateRecord(ctx, req)
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.Create").Msg("error creating record")
		return models.VaultRecord{}, mapStoreError(err)
	}

	v.logger.Info().Str("func", "Vault.Create").Str("id", created.ID).Msg("record created")
	return created, nil
}

// Update re-encrypts all three fields of rec and replaces record id.
// On success the vault is locked regardless of its prior state, so the
// new plaintext is only seen after another Unlock. On failure nothing changes.
func (v *Vault) Update(ctx context.Context, id string, rec models.PlainRecord, secret []byte) (models.VaultRecord, error) {
	if strings.TrimSpace(id) == "" {
		return models.VaultRecord{}, fmt.Errorf("%w: record id is required", ErrValidation)
	}
	if err := validatePlain(rec); err != nil {
		return models.VaultRecord{}, err
	}

	req, err := v.encryptRecord(rec, secret)
	if err != nil {
		return models.VaultRecord{}, err
	}

	updated, err := v.store.UpdateRecord(ctx, id, req)
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.Update").Str("id", id).Msg("error updating record")
		return models.VaultRecord{}, mapStoreError(err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if idx := v.indexOf(id); idx >= 0 {
		v.records[idx] = updated
	}
	v.seq.Add(1)
	v.discardLocked()

	v.logger.Info().Str("func", "Vault.Update").Str("id", id).Msg("record updated, vault locked")
	return updated, nil
}

// Delete removes record id on the server and then from the local list and
// cache. If the server call fails the record stays visible.
func (v *Vault) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: record id is required", ErrValidation)
	}

	if err := v.store.DeleteRecord(ctx, id); err != nil {
		v.logger.Err(err).Str("func", "Vault.Delete").Str("id", id).Msg("error deleting record")
		return mapStoreError(err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// a fetch issued before the delete may still list the record
	v.seq.Add(1)
	if idx := v.indexOf(id); idx >= 0 {
		v.records = append(v.records[:idx:idx], v.records[idx+1:]...)
	}
	delete(v.cache, id)

	v.logger.Info().Str("func", "Vault.Delete").Str("id", id).Msg("record deleted")
	return nil
}

func validatePlain(rec models.PlainRecord) error {
	if strings.TrimSpace(rec.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if rec.Payload.Password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	return nil
}

// encryptRecord resolves the secret to encrypt with and produces the wire
// request. It holds v.mu so a concurrent Lock cannot wipe the secret mid-way.
func (v *Vault) encryptRecord(rec models.PlainRecord, secret []byte) (models.RecordRequest, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(secret) > 0 {
		if err := v.verifySecret(secret); err != nil {
			return models.RecordRequest{}, err
		}
		return v.encryptWith(rec, secret)
	}

	var req models.RecordRequest
	err := v.secret.With(func(held []byte) error {
		var err error
		req, err = v.encryptWith(rec, held)
		return err
	})
	if errors.Is(err, ErrLocked) {
		return models.RecordRequest{}, fmt.Errorf("%w: master password is required", ErrValidation)
	}
	return req, err
}

// verifySecret rejects a secret that would make the vault impossible to
// unlock as a whole. Callers hold v.mu.
func (v *Vault) verifySecret(secret []byte) error {
	if v.secret.Held() {
		if !v.secret.Matches(secret) {
			return ErrInvalidMasterSecret
		}
		return nil
	}
	if len(v.records) == 0 {
		return nil
	}
	if _, err := v.codec.DecryptField(v.records[0].Title, secret); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMasterSecret, err)
	}
	return nil
}

func (v *Vault) encryptWith(rec models.PlainRecord, secret []byte) (models.RecordRequest, error) {
	title, err := v.codec.EncryptField(strings.TrimSpace(rec.Title), secret)
	if err != nil {
		return models.RecordRequest{}, fmt.Errorf("encrypt title: %w", err)
	}
	username, err := v.codec.EncryptField(rec.Username, secret)
	if err != nil {
		return models.RecordRequest{}, fmt.Errorf("encrypt username: %w", err)
	}
	payload, err := v.codec.EncryptPayload(rec.Payload, secret)
	if err != nil {
		return models.RecordRequest{}, fmt.Errorf("encrypt payload: %w", err)
	}

	return models.RecordRequest{
		Title:         title,
		Username:      username,
		EncryptedData: payload,
	}, nil
}
