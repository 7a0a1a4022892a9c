// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultRecord is the stored, over-the-wire form of a vault entry.
// Every user-supplied field is a [Ciphertext]; plaintext never appears here.
type VaultRecord struct {
	// ID is assigned by the server on creation and never changes.
	ID string `json:"id"`

	// UserID is the owner of the record. It is set from the authenticated
	// session, never from the request body.
	UserID int64 `json:"userId"`

	// Title is the encrypted entry title.
	Title Ciphertext `json:"title"`

	// Username is the encrypted login name.
	Username Ciphertext `json:"username"`

	// EncryptedData is the encrypted JSON form of [RecordPayload].
	EncryptedData Ciphertext `json:"encryptedData"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the VaultRecord model.
func (r VaultRecord) TableName() string {
	return "vault_records"
}

// RecordRequest is the body of create and update calls.
// It can only be built from ciphertext, so a decrypted value cannot be
// handed to storage by accident.
type RecordRequest struct {
	Title         Ciphertext `json:"title"`
	Username      Ciphertext `json:"username"`
	EncryptedData Ciphertext `json:"encryptedData"`
}

// VaultListResponse is returned by the list endpoint.
type VaultListResponse struct {
	// Records are ordered newest first.
	Records []VaultRecord `json:"data"`

	// Length is len(Records).
	Length int `json:"length"`
}
