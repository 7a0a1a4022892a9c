// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Entries returns the decrypted title and username of every visible record,
// in fetch order. Payloads are left zero.
func (v *Vault) Entries() ([]models.DecryptedView, error) {
	return v.Filter("")
}

// Filter returns the entries whose title or username contains query,
// compared case-insensitively. An empty query matches everything. Filtering
// only reads the cache; it never decrypts.
func (v *Vault) Filter(query string) ([]models.DecryptedView, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.State() != Unlocked {
		return nil, ErrLocked
	}

	needle := v.fold.String(strings.TrimSpace(query))
	views := make([]models.DecryptedView, 0, len(v.records))
	for _, r := range v.records {
		entry, ok := v.cache[r.ID]
		if !ok || !entry.matches(r) {
			continue
		}
		if needle == "" || strings.Contains(entry.foldTitle, needle) || strings.Contains(entry.foldUsername, needle) {
			views = append(views, entry.view)
		}
	}

	return views, nil
}

// View decrypts the payload of one record with the held secret. The result
// is not cached. A failure leaves the lock state as it was.
func (v *Vault) View(id string) (models.DecryptedView, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.State() != Unlocked {
		return models.DecryptedView{}, ErrLocked
	}

	idx := v.indexOf(id)
	if idx < 0 {
		return models.DecryptedView{}, ErrNotFoundOrUnauthorized
	}
	r := v.records[idx]

	entry, ok := v.cache[id]
	if !ok || !entry.matches(r) {
		return models.DecryptedView{}, fmt.Errorf("record %s: %w", id, ErrDecryptionFailure)
	}

	view := entry.view
	err := v.secret.With(func(secret []byte) error {
		payload, err := v.codec.DecryptPayload(r.EncryptedData, secret)
		if err != nil {
			return err
		}
		view.Payload = payload
		return nil
	})
	if err != nil {
		v.logger.Warn().Str("func", "Vault.View").Str("id", id).Msg("payload did not decrypt")
		return models.DecryptedView{}, fmt.Errorf("record %s payload: %w", id, err)
	}

	return view, nil
}

func (v *Vault) indexOf(id string) int {
	for i, r := range v.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
